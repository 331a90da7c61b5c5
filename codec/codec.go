//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package codec implements the text and base64 conversions used at the
// boundary of the cipher API.
package codec

import (
	"encoding/base64"
	"fmt"
)

// TextToBytes returns the UTF-8 encoding of the string.
func TextToBytes(s string) []byte {
	return []byte(s)
}

// BytesToText returns the bytes as string. Invalid UTF-8 sequences are
// kept as-is so arbitrary binary data survives the round trip.
func BytesToText(b []byte) string {
	return string(b)
}

// BytesToBase64 encodes the bytes with the standard padded base64
// alphabet.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes the standard padded base64 string.
func Base64ToBytes(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return data, nil
}
