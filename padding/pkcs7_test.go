//
// pkcs7_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package padding

import (
	"bytes"
	"errors"
	"testing"
)

const blockSize = 16

func data(n int) []byte {
	result := make([]byte, n)
	for i := range result {
		result[i] = byte(i)
	}
	return result
}

func TestPadRoundTrip(t *testing.T) {
	for l := 0; l <= 200; l++ {
		in := data(l)
		padded := Pad(in, blockSize)
		if len(padded)%blockSize != 0 {
			t.Fatalf("len %d: padded length %d", l, len(padded))
		}
		padLen := len(padded) - l
		if padLen < 1 || padLen > blockSize {
			t.Fatalf("len %d: padding length %d", l, padLen)
		}
		if l%blockSize == 0 && padLen != blockSize {
			t.Fatalf("len %d: expected full padding block, got %d",
				l, padLen)
		}
		for _, b := range padded[l:] {
			if int(b) != padLen {
				t.Fatalf("len %d: padding byte %d, expected %d", l, b, padLen)
			}
		}
		if !bytes.Equal(Unpad(padded), in) {
			t.Fatalf("len %d: Unpad mismatch", l)
		}
		strict, err := UnpadStrict(padded, blockSize)
		if err != nil {
			t.Fatalf("len %d: UnpadStrict failed: %s", l, err)
		}
		if !bytes.Equal(strict, in) {
			t.Fatalf("len %d: UnpadStrict mismatch", l)
		}
	}
}

func TestPadDoesNotModifyInput(t *testing.T) {
	in := make([]byte, 3, 16)
	Pad(in, blockSize)
	if in[:4][3] != 0 {
		t.Errorf("Pad wrote into the input buffer")
	}
}

func TestUnpadLegacy(t *testing.T) {
	tests := []struct {
		in  []byte
		out []byte
	}{
		{
			in:  []byte{},
			out: []byte{},
		},
		{
			// Inconsistent padding bytes are not checked.
			in:  []byte{'a', 'b', 'c', 9, 2},
			out: []byte{'a', 'b', 'c'},
		},
		{
			in:  []byte{'a', 'b', 0},
			out: []byte{'a', 'b', 0},
		},
		{
			in:  []byte{'a', 'b', 200},
			out: []byte{},
		},
	}
	for idx, test := range tests {
		if got := Unpad(test.in); !bytes.Equal(got, test.out) {
			t.Errorf("test %d: Unpad(%x)=%x, expected %x",
				idx, test.in, got, test.out)
		}
	}
}

func TestUnpadStrict(t *testing.T) {
	bad := [][]byte{
		{},
		data(15),
		append(data(15), 0),
		append(data(15), 17),
		append(data(14), 1, 2),
		append(data(12), 3, 4, 4, 4),
	}
	for idx, in := range bad {
		_, err := UnpadStrict(in, blockSize)
		if !errors.Is(err, ErrorInvalidPadding) {
			t.Errorf("test %d: UnpadStrict(%x): unexpected error %v",
				idx, in, err)
		}
	}
}
