//
// pkcs7.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//
// PKCS #7 style block padding, RFC 5652 section 6.3.

package padding

import (
	"errors"
	"fmt"
)

var (
	// ErrorInvalidPadding error is returned by UnpadStrict if the
	// padding is malformed.
	ErrorInvalidPadding = errors.New("invalid padding")
)

// Pad pads data to a multiple of blockSize. The function appends N
// bytes of value N where N = blockSize - len(data) % blockSize. The
// padding is always added: if the data is already a multiple of
// blockSize, a full block of padding is appended. The blockSize must
// be in the range [1, 255]. The argument data is not modified.
func Pad(data []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize > 255 {
		panic(fmt.Sprintf("padding: invalid block size %d", blockSize))
	}
	padLen := blockSize - len(data)%blockSize

	result := make([]byte, len(data)+padLen)
	copy(result, data)
	for i := len(data); i < len(result); i++ {
		result[i] = byte(padLen)
	}
	return result
}

// Unpad removes the padding from data. The padding length N is read
// from the last byte and N bytes are truncated from the end of the
// data. The padding bytes are not validated: malformed input silently
// truncates the amount its last byte says. If N is larger than the
// data, the result is empty. Empty data is returned as-is.
func Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	padLen := int(data[len(data)-1])
	if padLen > len(data) {
		return data[:0]
	}
	return data[:len(data)-padLen]
}

// UnpadStrict removes the padding from data like Unpad but returns
// ErrorInvalidPadding if the data is not a non-empty multiple of
// blockSize, or if the padding length is not in the range
// [1, blockSize], or if any of the padding bytes differs from the
// padding length.
func UnpadStrict(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: data length %d", ErrorInvalidPadding,
			len(data))
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: padding length %d", ErrorInvalidPadding,
			padLen)
	}
	for i := len(data) - padLen; i < len(data); i++ {
		if data[i] != byte(padLen) {
			return nil, ErrorInvalidPadding
		}
	}
	return data[:len(data)-padLen], nil
}
