package msclient

import (
	"encoding/json"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// ErrorKeyLoad indicates a key file that is missing, unreadable or not
// a valid JSON byte array. Key loading never recovers; the error is
// fatal to the caller.
var ErrorKeyLoad = errors.New("failed to load key material")

const keypairLength = 64 // ed25519 seed plus public key, as solana-keygen writes it

// LoadKeypair reads a signing identity from a solana-keygen style file:
// a JSON array of 64 byte values. The path is explicit configuration;
// nothing is resolved from the environment.
func LoadKeypair(path string) (solana.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrorKeyLoad, "read %s: %v", path, err)
	}

	var values []int
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrapf(ErrorKeyLoad, "parse %s: %v", path, err)
	}
	if len(values) != keypairLength {
		return nil, errors.Wrapf(ErrorKeyLoad, "%s holds %d bytes, want %d", path, len(values), keypairLength)
	}

	key := make(solana.PrivateKey, keypairLength)
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, errors.Wrapf(ErrorKeyLoad, "%s: value %d at index %d is not a byte", path, v, i)
		}
		key[i] = byte(v)
	}
	return key, nil
}
