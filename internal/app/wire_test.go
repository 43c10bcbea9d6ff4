package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/app"
	"solkit/internal/domain"
)

func TestNewWire_Local(t *testing.T) {
	w, err := app.NewWire(app.Config{Entropy: bytes.NewReader(bytes.Repeat([]byte{5}, 64))})
	require.NoError(t, err)
	assert.Nil(t, w.Remote)
	require.NotNil(t, w.Handler())

	a, err := w.Keypairs.GenerateKeypair(context.Background())
	require.NoError(t, err)
	b, err := w.Keypairs.GenerateKeypair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b, "same entropy bytes must give the same keypair")
}

func TestNewWire_Remote(t *testing.T) {
	w, err := app.NewWire(app.Config{ServerURL: "http://127.0.0.1:3000"})
	require.NoError(t, err)
	require.NotNil(t, w.Remote)
	assert.Same(t, w.Remote, w.Keypairs)
}

func TestNewWire_BadURL(t *testing.T) {
	_, err := app.NewWire(app.Config{ServerURL: "not a url"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
