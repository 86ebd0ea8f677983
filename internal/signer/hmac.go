package signer

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
	"sync"

	"golang.org/x/crypto/sha3"
)

var ErrInvalidKey = errors.New("invalid hmac key")

var algorithms = map[string]func() hash.Hash{
	"SHA1":    sha1.New,
	"SHA256":  sha256.New,
	"SHA384":  sha512.New384,
	"SHA512":  sha512.New,
	"SHA3256": sha3.New256,
	"SHA3512": sha3.New512,
}

// HMAC signs and verifies UTF-8 messages with a shared secret and returns
// lowercase hex digests. It is safe for concurrent use.
type HMAC struct {
	newHash func() hash.Hash
	secret  []byte

	once sync.Once
	pool sync.Pool
}

// NewHMAC returns a signer for the given algorithm ("SHA-256", "sha512",
// "SHA3-256", ...). The keyed MAC state is built on first use.
func NewHMAC(alg, secret string) (*HMAC, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidKey)
	}

	name := strings.ToUpper(strings.ReplaceAll(alg, "-", ""))
	h, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidKey, alg)
	}

	return &HMAC{
		newHash: h,
		secret:  []byte(secret),
	}, nil
}

func (s *HMAC) init() {
	s.pool.New = func() any {
		return hmac.New(s.newHash, s.secret)
	}
}

func (s *HMAC) digest(message string) []byte {
	s.once.Do(s.init)

	mac := s.pool.Get().(hash.Hash)
	defer func() {
		mac.Reset()
		s.pool.Put(mac)
	}()

	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// Sign returns the hex encoded HMAC of message.
func (s *HMAC) Sign(message string) string {
	return ToHex(s.digest(message))
}

// Verify reports whether signature is the hex encoded HMAC of message.
// Malformed or truncated signatures are reported as a mismatch.
func (s *HMAC) Verify(message, signature string) bool {
	got, err := FromHex(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.digest(message))
}
