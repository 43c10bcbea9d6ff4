package crypto_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"solkit/internal/codec"
	"solkit/internal/crypto"
	"solkit/internal/domain"
)

type deterministicReader struct{ b byte }

func (r *deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	return b
}

// RFC 8032 section 7.1, TEST 1.
const (
	rfcSeed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfcPub  = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfcSig  = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func TestDeriveFromSecret_RFC8032Vector(t *testing.T) {
	km, err := crypto.DeriveFromSecret(mustHex(t, rfcSeed))
	if err != nil {
		t.Fatalf("DeriveFromSecret: %v", err)
	}
	if !bytes.Equal(km.Public[:], mustHex(t, rfcPub)) {
		t.Fatalf("public key mismatch: got %x", km.Public)
	}

	sig := crypto.Sign(nil, km)
	if !bytes.Equal(sig[:], mustHex(t, rfcSig)) {
		t.Fatalf("signature mismatch: got %x", sig)
	}
}

func TestDeriveFromSecret_ExpandedUsesSeedHalfOnly(t *testing.T) {
	seed := mustHex(t, rfcSeed)

	fromSeed, err := crypto.DeriveFromSecret(seed)
	if err != nil {
		t.Fatalf("DeriveFromSecret(seed): %v", err)
	}

	tails := [][]byte{
		mustHex(t, rfcPub),
		bytes.Repeat([]byte{0xff}, 32),
		make([]byte, 32),
	}
	for _, tail := range tails {
		secret := append(append([]byte{}, seed...), tail...)
		km, err := crypto.DeriveFromSecret(secret)
		if err != nil {
			t.Fatalf("DeriveFromSecret(expanded): %v", err)
		}
		if km != fromSeed {
			t.Fatalf("tail %x changed derived key material", tail[:4])
		}
	}
}

func TestDeriveFromSecret_RejectsOtherLengths(t *testing.T) {
	for _, n := range []int{0, 1, 31, 33, 63, 65, 128} {
		_, err := crypto.DeriveFromSecret(make([]byte, n))
		if !errors.Is(err, domain.ErrInvalidKey) {
			t.Fatalf("len %d: want ErrInvalidKey, got %v", n, err)
		}
	}
}

func TestGenerateKeypair_DeterministicReader(t *testing.T) {
	a, err := crypto.GenerateKeypair(&deterministicReader{})
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	b, err := crypto.GenerateKeypair(&deterministicReader{})
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	if a != b {
		t.Fatalf("same entropy must yield same key material")
	}

	again, err := crypto.DeriveFromSecret(a.Seed[:])
	if err != nil {
		t.Fatalf("DeriveFromSecret: %v", err)
	}
	if again.Public != a.Public {
		t.Fatalf("public key is not a pure function of the seed")
	}
}

func TestGenerateKeypair_DistinctAndRoundTrip(t *testing.T) {
	a, err := crypto.GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	b, err := crypto.GenerateKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	if a.Public == b.Public {
		t.Fatalf("two generated keypairs share a public key")
	}

	for _, km := range []domain.KeyMaterial{a, b} {
		raw, err := codec.DecodeBase58(km.Public.String())
		if err != nil {
			t.Fatalf("DecodeBase58: %v", err)
		}
		if len(raw) != domain.PublicKeySize || !bytes.Equal(raw, km.Public[:]) {
			t.Fatalf("public key did not round-trip through base58")
		}
	}
}

func TestGenerateKeypair_EntropyFailure(t *testing.T) {
	if _, err := crypto.GenerateKeypair(failingReader{}); err == nil {
		t.Fatal("expected error from failing entropy source")
	}
}

func TestGenerateKeypair_Concurrent(t *testing.T) {
	const n = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[domain.PublicKey]bool, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km, err := crypto.GenerateKeypair(nil)
			if err != nil {
				t.Errorf("GenerateKeypair: %v", err)
				return
			}
			mu.Lock()
			seen[km.Public] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	if len(seen) != n {
		t.Fatalf("want %d distinct keys, got %d", n, len(seen))
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	km, err := crypto.GenerateKeypair(&deterministicReader{b: 7})
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}

	messages := [][]byte{
		{},
		[]byte("Hello, Solana!"),
		bytes.Repeat([]byte{0xab}, 1024),
	}
	for _, msg := range messages {
		sig := crypto.Sign(msg, km)
		if again := crypto.Sign(msg, km); again != sig {
			t.Fatalf("signing is not deterministic")
		}
		ok, err := crypto.Verify(msg, sig[:], km.Public)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !ok {
			t.Fatalf("signature over %d-byte message did not verify", len(msg))
		}
	}
}

func TestVerify_SingleByteMutationsFail(t *testing.T) {
	km, err := crypto.GenerateKeypair(&deterministicReader{b: 42})
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	msg := []byte("transfer 5 tokens")
	sig := crypto.Sign(msg, km)

	for i := range msg {
		mutated := append([]byte{}, msg...)
		mutated[i] ^= 0x01
		ok, err := crypto.Verify(mutated, sig[:], km.Public)
		if err != nil || ok {
			t.Fatalf("message byte %d: want (false, nil), got (%v, %v)", i, ok, err)
		}
	}

	for i := range sig {
		mutated := sig
		mutated[i] ^= 0x80
		ok, err := crypto.Verify(msg, mutated[:], km.Public)
		if err != nil || ok {
			t.Fatalf("signature byte %d: want (false, nil), got (%v, %v)", i, ok, err)
		}
	}

	for i := range km.Public {
		mutated := km.Public
		mutated[i] ^= 0x01
		ok, err := crypto.Verify(msg, sig[:], mutated)
		if err != nil || ok {
			t.Fatalf("public key byte %d: want (false, nil), got (%v, %v)", i, ok, err)
		}
	}
}

func TestVerify_MalformedSignature(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65} {
		ok, err := crypto.Verify([]byte("m"), make([]byte, n), domain.PublicKey{})
		if ok || !errors.Is(err, domain.ErrVerificationFailed) {
			t.Fatalf("len %d: want ErrVerificationFailed, got (%v, %v)", n, ok, err)
		}
	}
}

func TestWipe(t *testing.T) {
	km, err := crypto.GenerateKeypair(&deterministicReader{b: 1})
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	crypto.WipeKey(&km)
	if km.Seed != (domain.Seed{}) {
		t.Fatalf("seed not wiped")
	}
	crypto.WipeKey(nil)
}

func TestFingerprint(t *testing.T) {
	fp := crypto.Fingerprint(domain.PublicKey{1})
	if len(fp) != 16 {
		t.Fatalf("want 16 hex chars, got %q", fp)
	}
	if fp == crypto.Fingerprint(domain.PublicKey{2}) {
		t.Fatalf("distinct keys share a fingerprint")
	}
}
