//
// selftest.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/gmsm/modes"
	"github.com/markkurossi/gmsm/sm3"
	"github.com/markkurossi/gmsm/sm4"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Known answer tests from GB/T 32905-2016 and GB/T 32907-2016.
type kat struct {
	label    string
	expected string
	run      func() (string, error)
}

const (
	sm4Key   = "0123456789abcdeffedcba9876543210"
	sm4Iters = 1000000
)

var kats = []kat{
	{
		label:    "SM3(\"\")",
		expected: "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b",
		run: func() (string, error) {
			return sm3.SumHex(nil), nil
		},
	},
	{
		label:    "SM3(\"abc\")",
		expected: "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
		run: func() (string, error) {
			return sm3.SumHex([]byte("abc")), nil
		},
	},
	{
		label:    "SM3(\"abcd\"" + superscript.Itoa(16) + ")",
		expected: "debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732",
		run: func() (string, error) {
			return sm3.SumHex([]byte(strings.Repeat("abcd", 16))), nil
		},
	},
	{
		label:    "SM4 E(P)",
		expected: "681edf34d206965e86b3e94f536e4246",
		run: func() (string, error) {
			return sm4Iterate(1)
		},
	},
	{
		label:    "SM4 E" + superscript.Itoa(sm4Iters) + "(P)",
		expected: "595298c7c6fd271f0402f804c33d3f66",
		run: func() (string, error) {
			return sm4Iterate(sm4Iters)
		},
	},
	{
		label:    "SM4-CBC D(E(P))",
		expected: "ok",
		run:      cbcRoundTrip,
	},
}

func sm4Iterate(n int) (string, error) {
	key, err := hex.DecodeString(sm4Key)
	if err != nil {
		return "", err
	}
	c, err := sm4.NewCipher(key)
	if err != nil {
		return "", err
	}
	buf := append([]byte(nil), key...)
	for i := 0; i < n; i++ {
		c.Encrypt(buf, buf)
	}
	return hex.EncodeToString(buf), nil
}

func cbcRoundTrip() (string, error) {
	key, err := hex.DecodeString(sm4Key)
	if err != nil {
		return "", err
	}
	c, err := sm4.NewCipher(key)
	if err != nil {
		return "", err
	}
	iv := make([]byte, sm4.BlockSize)
	pt := bytes.Repeat(key, 4)
	ct := make([]byte, len(pt))

	enc, err := modes.NewCBCEncrypter(c, iv)
	if err != nil {
		return "", err
	}
	enc.CryptBlocks(ct, pt)

	dec, err := modes.NewCBCDecrypter(c, iv)
	if err != nil {
		return "", err
	}
	dec.CryptBlocks(ct, ct)
	if !bytes.Equal(ct, pt) {
		return hex.EncodeToString(ct), nil
	}
	return "ok", nil
}

func selfTest(out io.Writer) error {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Test").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.ML)
	tab.Header("Status").SetAlign(tabulate.MC)

	var failed int
	for _, test := range kats {
		row := tab.Row()
		row.Column(test.label)

		result, err := test.run()
		if err != nil {
			result = err.Error()
		}
		row.Column(result)
		if err == nil && result == test.expected {
			row.Column("OK")
		} else {
			row.Column("FAILED").SetFormat(tabulate.FmtBold)
			failed++
		}
	}
	tab.Print(out)

	if failed > 0 {
		return fmt.Errorf("%w: %d/%d tests", errSelfTest, failed, len(kats))
	}
	return nil
}
