//
// config.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmsm

import (
	"fmt"
)

// Mode specifies the block cipher mode of operation.
type Mode int

// Cipher modes. The zero value is CBC.
const (
	ModeCBC Mode = iota
	ModeECB
)

var modeNames = map[Mode]string{
	ModeCBC: "cbc",
	ModeECB: "ecb",
}

func (m Mode) String() string {
	name, ok := modeNames[m]
	if ok {
		return name
	}
	return fmt.Sprintf("{Mode %d}", m)
}

// ParseMode parses the mode name. The empty name selects the default
// mode ModeCBC.
func ParseMode(name string) (Mode, error) {
	if len(name) == 0 {
		return ModeCBC, nil
	}
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeCBC, fmt.Errorf("unknown cipher mode '%s'", name)
}

// Output specifies the ciphertext representation.
type Output int

// Ciphertext representations. The zero value is base64.
const (
	OutputBase64 Output = iota
	OutputText
)

var outputNames = map[Output]string{
	OutputBase64: "base64",
	OutputText:   "text",
}

func (o Output) String() string {
	name, ok := outputNames[o]
	if ok {
		return name
	}
	return fmt.Sprintf("{Output %d}", o)
}

// ParseOutput parses the output name. The empty name selects the
// default output OutputBase64.
func ParseOutput(name string) (Output, error) {
	if len(name) == 0 {
		return OutputBase64, nil
	}
	for o, n := range outputNames {
		if n == name {
			return o, nil
		}
	}
	return OutputBase64, fmt.Errorf("unknown output form '%s'", name)
}

// Config defines the cipher configuration. A Config is copied by New
// and it is not referenced afterwards.
type Config struct {
	// Key is the 16-byte master key.
	Key []byte

	// IV is the 16-byte initialization vector. It is required by the
	// CBC mode and ignored by the ECB mode.
	IV []byte

	// Mode specifies the mode of operation.
	Mode Mode

	// Output specifies the ciphertext representation used by Encrypt
	// and Decrypt.
	Output Output

	// Strict enables padding validation in decryption. By default,
	// the padding is removed without validation: the last byte
	// specifies how many bytes are truncated.
	Strict bool
}
