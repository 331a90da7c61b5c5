//
// keyschedule.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm4

import (
	"errors"
	"fmt"

	"github.com/markkurossi/gmsm/pkg/words"
)

// KeySize is the SM4 key size in bytes.
const KeySize = 16

// Rounds is the number of cipher and key schedule rounds.
const Rounds = 32

var (
	// ErrorInvalidKeyLength is returned if the master key is not
	// KeySize bytes long.
	ErrorInvalidKeyLength = errors.New("invalid key length")
)

// RoundKeys holds the 32 round keys in the order they are applied.
type RoundKeys [Rounds]uint32

// ExpandKey derives the encryption round keys from the master key.
func ExpandKey(key []byte) (RoundKeys, error) {
	var rk RoundKeys
	if len(key) != KeySize {
		return rk, fmt.Errorf("sm4: %w: %d bytes", ErrorInvalidKeyLength,
			len(key))
	}
	var k [Rounds + 4]uint32
	for i := 0; i < 4; i++ {
		k[i] = words.Load(key[i*4:]) ^ fk[i]
	}
	for i := 0; i < Rounds; i++ {
		k[i+4] = k[i] ^ mixKey(k[i+1]^k[i+2]^k[i+3]^ck[i])
		rk[i] = k[i+4]
	}
	return rk, nil
}

// Reverse returns the round keys in reverse order. The reversed keys
// of the encryption keys are the decryption keys.
func (rk RoundKeys) Reverse() RoundKeys {
	var result RoundKeys
	for i, k := range rk {
		result[Rounds-1-i] = k
	}
	return result
}

// mixKey is the key schedule mixer T' = L'(tau(x)).
func mixKey(x uint32) uint32 {
	return linearKey(tau(x))
}

// linearKey is the key schedule linear transform L'.
func linearKey(b uint32) uint32 {
	return b ^ words.Rotl(b, 13) ^ words.Rotl(b, 23)
}
