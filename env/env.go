//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the SM3 and SM4
// tools.
package env

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/markkurossi/gmsm/sm4"
)

// Config defines the global tool configuration. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	Rand io.Reader
}

// GetRandom returns the source of entropy for key and IV generation.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GenerateKey creates a new random SM4 key.
func (config *Config) GenerateKey() ([]byte, error) {
	return config.random(sm4.KeySize)
}

// GenerateIV creates a new random initialization vector.
func (config *Config) GenerateIV() ([]byte, error) {
	return config.random(sm4.BlockSize)
}

func (config *Config) random(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(config.GetRandom(), buf)
	if err != nil {
		return nil, fmt.Errorf("env: failed to read random: %w", err)
	}
	return buf, nil
}
