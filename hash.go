//
// hash.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gmsm

import (
	"github.com/markkurossi/gmsm/sm3"
)

// Digest computes the SM3 checksum of the message and returns it in
// the requested encoding: 64 lowercase hexadecimal characters for
// sm3.Hex and the 32 checksum bytes, held in the string as-is, for
// sm3.Raw. Use DigestBytes for the checksum as byte array.
func Digest(message []byte, enc sm3.Encoding) string {
	if message == nil {
		message = []byte{}
	}
	return sm3.New().DigestEncoded(message, enc)
}

// DigestString is like Digest but takes the message as string.
func DigestString(message string, enc sm3.Encoding) string {
	return Digest([]byte(message), enc)
}

// DigestBytes returns the SM3 checksum of the message as byte array.
func DigestBytes(message []byte) [sm3.Size]byte {
	return sm3.Sum(message)
}
