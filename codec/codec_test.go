//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package codec

import (
	"bytes"
	"testing"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		data []byte
		enc  string
	}{
		{[]byte{}, ""},
		{[]byte("f"), "Zg=="},
		{[]byte("fo"), "Zm8="},
		{[]byte("foo"), "Zm9v"},
		{[]byte{0xff, 0xfe, 0x00}, "//4A"},
	}
	for _, test := range tests {
		if got := BytesToBase64(test.data); got != test.enc {
			t.Errorf("BytesToBase64(%x)=%q, expected %q",
				test.data, got, test.enc)
		}
		data, err := Base64ToBytes(test.enc)
		if err != nil {
			t.Fatalf("Base64ToBytes(%q) failed: %s", test.enc, err)
		}
		if !bytes.Equal(data, test.data) {
			t.Errorf("Base64ToBytes(%q)=%x, expected %x",
				test.enc, data, test.data)
		}
	}
	if _, err := Base64ToBytes("Zg="); err == nil {
		t.Errorf("Base64ToBytes accepted truncated input")
	}
}

func TestText(t *testing.T) {
	binary := []byte{0xc3, 0x28, 0x00, 0xff}
	if got := TextToBytes(BytesToText(binary)); !bytes.Equal(got, binary) {
		t.Errorf("binary round trip: got %x, expected %x", got, binary)
	}
	if got := TextToBytes("ä"); !bytes.Equal(got, []byte{0xc3, 0xa4}) {
		t.Errorf("TextToBytes: got %x", got)
	}
}
