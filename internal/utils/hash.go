package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// hashKeyInfo binds derived keys to the body-integrity use.
const hashKeyInfo = "ledger-sync request integrity v1"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// DeriveHashKey stretches the configured shared secret into a 32-byte HMAC
// key with HKDF-SHA256. Both devices derive the same key from the same
// secret, so the raw secret never keys the MAC directly.
func DeriveHashKey(secret string) []byte {
	key := make([]byte, sha256.Size)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(hashKeyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		// hkdf only fails past 255*32 bytes of output
		panic(err)
	}
	return key
}

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// the HKDF-derived form of hashKey.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	key := DeriveHashKey(hashKey)
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the global pool.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex, the HashSHA256 header format.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// VerifyHash reports whether signature is the hex HMAC of data. The
// comparison runs in constant time.
func VerifyHash(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, Hash(data))
}

// HashString computes a one-off hex HMAC-SHA256 of data keyed with the
// derived form of hashKey. It does not touch the pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, DeriveHashKey(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
