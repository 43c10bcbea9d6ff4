package crypto

import (
	"runtime"

	"solkit/internal/domain"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}

// WipeKey zeroes the seed held by km.
func WipeKey(km *domain.KeyMaterial) {
	if km == nil {
		return
	}
	Wipe(km.Seed[:])
}
