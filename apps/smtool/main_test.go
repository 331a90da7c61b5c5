//
// main_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCrypt(t *testing.T) {
	for _, params := range []Params{
		{
			Key: "0123456789abcdef",
			IV:  "fedcba9876543210",
		},
		{
			Key:    "0123456789abcdeffedcba9876543210",
			Hex:    true,
			Mode:   "ecb",
			Output: "text",
		},
	} {
		c, err := newCipher(params)
		if err != nil {
			t.Fatalf("newCipher failed: %s", err)
		}
		var ct, pt bytes.Buffer
		msg := "The hunter will softly and suddenly vanish away."
		if err := crypt(c, true, strings.NewReader(msg), &ct); err != nil {
			t.Fatalf("encrypt failed: %s", err)
		}
		if err := crypt(c, false, &ct, &pt); err != nil {
			t.Fatalf("decrypt failed: %s", err)
		}
		if pt.String() != msg {
			t.Errorf("got %q, expected %q", pt.String(), msg)
		}
	}
}

func TestNewCipherErrors(t *testing.T) {
	bad := []Params{
		{Key: "short"},
		{Key: "zz", Hex: true},
		{Key: "0123456789abcdef", Mode: "ofb"},
		{Key: "0123456789abcdef", Output: "hex"},
	}
	for _, params := range bad {
		if _, err := newCipher(params); err == nil {
			t.Errorf("newCipher(%+v) succeeded", params)
		}
	}
}

func TestDigestFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "abc.txt")
	if err := os.WriteFile(file, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := digest(&out, []string{file, file}); err != nil {
		t.Fatalf("digest failed: %s", err)
	}
	line := "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0  " +
		file + "\n"
	if out.String() != line+line {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestGenerate(t *testing.T) {
	var out bytes.Buffer
	if err := generate(&out); err != nil {
		t.Fatalf("generate failed: %s", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || len(lines[0]) != len("SM4_KEY=")+32 {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSelfTest(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping known-answer tests in short mode")
	}
	var out bytes.Buffer
	if err := selfTest(&out); err != nil {
		t.Fatalf("selfTest failed: %s\n%s", err, out.String())
	}
}
