package signer

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrMalformedHex = errors.New("malformed hex")

// ToHex encodes b as lowercase hex. An empty slice gives an empty string.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string. Unlike a lenient decoder it rejects empty
// input, odd lengths and any non-hex character instead of skipping them.
func FromHex(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedHex)
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHex, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}
