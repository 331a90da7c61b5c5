//
// cipher.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gmsm implements the SM3 hash function and the SM4 block
// cipher with ECB and CBC modes.
//
// The Cipher type is a configured SM4 cipher which encrypts strings
// into base64 or raw byte strings and decrypts them back:
//
//	c, err := gmsm.New(gmsm.Config{
//		Key: []byte("0123456789abcdef"),
//		IV:  []byte("fedcba9876543210"),
//	})
//	ct, err := c.Encrypt("hello, world")
//	pt, err := c.Decrypt(ct)
package gmsm

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/markkurossi/gmsm/codec"
	"github.com/markkurossi/gmsm/modes"
	"github.com/markkurossi/gmsm/padding"
	"github.com/markkurossi/gmsm/sm4"
)

var (
	// ErrorInvalidKeyLength is returned if the key is not 16 bytes
	// long.
	ErrorInvalidKeyLength = sm4.ErrorInvalidKeyLength

	// ErrorInvalidIV is returned if the CBC mode is used without a
	// 16-byte IV.
	ErrorInvalidIV = modes.ErrorInvalidIV

	// ErrorInvalidPadding is returned by strict decryption if the
	// padding is malformed.
	ErrorInvalidPadding = padding.ErrorInvalidPadding

	// ErrorInvalidCiphertext is returned if the ciphertext can't be
	// decoded or its length is not a multiple of the block size.
	ErrorInvalidCiphertext = errors.New("invalid ciphertext")
)

// Cipher implements SM4 encryption and decryption with the configured
// mode, padding, and output form. The round keys are computed once in
// New. A Cipher is safe for concurrent use.
type Cipher struct {
	config Config
	block  *sm4.Cipher
}

// New creates a new cipher for the configuration. The function
// returns ErrorInvalidKeyLength if the key is not 16 bytes long. The
// IV is validated when it is used.
func New(config Config) (*Cipher, error) {
	block, err := sm4.NewCipher(config.Key)
	if err != nil {
		return nil, err
	}
	switch config.Mode {
	case ModeCBC, ModeECB:
	default:
		return nil, fmt.Errorf("invalid cipher mode %v", config.Mode)
	}
	switch config.Output {
	case OutputBase64, OutputText:
	default:
		return nil, fmt.Errorf("invalid output form %v", config.Output)
	}

	config.Key = append([]byte(nil), config.Key...)
	if config.IV != nil {
		config.IV = append([]byte(nil), config.IV...)
	}

	return &Cipher{
		config: config,
		block:  block,
	}, nil
}

// Mode returns the cipher mode.
func (c *Cipher) Mode() Mode {
	return c.config.Mode
}

// Output returns the ciphertext output form.
func (c *Cipher) Output() Output {
	return c.config.Output
}

// Encrypt encrypts the plaintext string and returns the ciphertext in
// the configured output form.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	ct, err := c.EncryptBytes(codec.TextToBytes(plaintext))
	if err != nil {
		return "", err
	}
	switch c.config.Output {
	case OutputText:
		return codec.BytesToText(ct), nil
	default:
		return codec.BytesToBase64(ct), nil
	}
}

// Decrypt decrypts the ciphertext, given in the configured output
// form, and returns the plaintext string.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	var ct []byte
	var err error

	switch c.config.Output {
	case OutputText:
		ct = codec.TextToBytes(ciphertext)
	default:
		ct, err = codec.Base64ToBytes(ciphertext)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrorInvalidCiphertext, err)
		}
	}
	pt, err := c.DecryptBytes(ct)
	if err != nil {
		return "", err
	}
	return codec.BytesToText(pt), nil
}

// EncryptBytes pads and encrypts the plaintext.
func (c *Cipher) EncryptBytes(plaintext []byte) ([]byte, error) {
	mode, err := c.blockMode(true)
	if err != nil {
		return nil, err
	}
	data := padding.Pad(plaintext, sm4.BlockSize)
	mode.CryptBlocks(data, data)
	return data, nil
}

// DecryptBytes decrypts the ciphertext and removes its padding.
func (c *Cipher) DecryptBytes(ciphertext []byte) ([]byte, error) {
	mode, err := c.blockMode(false)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%sm4.BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrorInvalidCiphertext, len(ciphertext), sm4.BlockSize)
	}
	data := make([]byte, len(ciphertext))
	mode.CryptBlocks(data, ciphertext)

	if c.config.Strict {
		return padding.UnpadStrict(data, sm4.BlockSize)
	}
	return padding.Unpad(data), nil
}

func (c *Cipher) blockMode(encrypt bool) (cipher.BlockMode, error) {
	switch c.config.Mode {
	case ModeECB:
		if encrypt {
			return modes.NewECBEncrypter(c.block), nil
		}
		return modes.NewECBDecrypter(c.block), nil

	default:
		if encrypt {
			return modes.NewCBCEncrypter(c.block, c.config.IV)
		}
		return modes.NewCBCDecrypter(c.block, c.config.IV)
	}
}
