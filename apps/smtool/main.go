//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/markkurossi/gmsm"
	"github.com/markkurossi/gmsm/env"
	"github.com/markkurossi/gmsm/sm3"
)

func main() {
	fSM3 := flag.Bool("sm3", false, "compute SM3 digests of files or stdin")
	encrypt := flag.Bool("e", false, "encrypt stdin with SM4")
	decrypt := flag.Bool("d", false, "decrypt stdin with SM4")
	key := flag.String("key", "", "SM4 key (16 bytes)")
	iv := flag.String("iv", "", "SM4 IV (16 bytes)")
	hexArgs := flag.Bool("x", false, "key and IV are hex encoded")
	mode := flag.String("mode", "", "cipher mode: cbc or ecb")
	output := flag.String("out", "", "ciphertext form: base64 or text")
	strict := flag.Bool("strict", false, "validate padding on decrypt")
	selftest := flag.Bool("selftest", false, "run known-answer tests")
	benchMB := flag.Int("bench", 0, "run benchmarks with `MB` of data")
	genkey := flag.Bool("genkey", false, "generate random key and IV")
	envFile := flag.String("env", "", "load SM4_* defaults from dotenv `file`")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if len(*envFile) > 0 {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("failed to load '%s': %s", *envFile, err)
		}
	}

	var err error
	switch {
	case *selftest:
		err = selfTest(os.Stdout)

	case *benchMB > 0:
		err = benchmark(os.Stdout, *benchMB)

	case *genkey:
		err = generate(os.Stdout)

	case *fSM3:
		err = digest(os.Stdout, flag.Args())

	case *encrypt || *decrypt:
		var c *gmsm.Cipher
		c, err = newCipher(Params{
			Key:    withDefault(*key, "SM4_KEY"),
			IV:     withDefault(*iv, "SM4_IV"),
			Hex:    *hexArgs,
			Mode:   withDefault(*mode, "SM4_MODE"),
			Output: withDefault(*output, "SM4_OUTPUT"),
			Strict: *strict,
		})
		if err == nil {
			err = crypt(c, *encrypt, os.Stdin, os.Stdout)
		}

	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func withDefault(value, name string) string {
	if len(value) > 0 {
		return value
	}
	return os.Getenv(name)
}

// Params define the cipher parameters given on the command line.
type Params struct {
	Key    string
	IV     string
	Hex    bool
	Mode   string
	Output string
	Strict bool
}

func newCipher(params Params) (*gmsm.Cipher, error) {
	mode, err := gmsm.ParseMode(params.Mode)
	if err != nil {
		return nil, err
	}
	output, err := gmsm.ParseOutput(params.Output)
	if err != nil {
		return nil, err
	}
	key, err := decodeParam("key", params.Key, params.Hex)
	if err != nil {
		return nil, err
	}
	iv, err := decodeParam("IV", params.IV, params.Hex)
	if err != nil {
		return nil, err
	}
	return gmsm.New(gmsm.Config{
		Key:    key,
		IV:     iv,
		Mode:   mode,
		Output: output,
		Strict: params.Strict,
	})
}

func decodeParam(name, value string, isHex bool) ([]byte, error) {
	if len(value) == 0 {
		return nil, nil
	}
	if !isHex {
		return []byte(value), nil
	}
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", name, err)
	}
	return data, nil
}

func crypt(c *gmsm.Cipher, encrypt bool, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	var result string
	if encrypt {
		result, err = c.Encrypt(string(data))
	} else {
		input := string(data)
		if c.Output() == gmsm.OutputBase64 {
			input = strings.TrimSpace(input)
		}
		result, err = c.Decrypt(input)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, result)
	if err == nil && encrypt && c.Output() == gmsm.OutputBase64 {
		_, err = io.WriteString(out, "\n")
	}
	return err
}

func digest(out io.Writer, files []string) error {
	state := sm3.New()
	if len(files) == 0 {
		if _, err := io.Copy(state, bufio.NewReader(os.Stdin)); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  -\n", state.DigestHex(nil))
		return nil
	}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		_, err = io.Copy(state, bufio.NewReader(f))
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read '%s': %w", file, err)
		}
		fmt.Fprintf(out, "%s  %s\n", state.DigestHex(nil), file)
	}
	return nil
}

func generate(out io.Writer) error {
	config := new(env.Config)
	key, err := config.GenerateKey()
	if err != nil {
		return err
	}
	iv, err := config.GenerateIV()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "SM4_KEY=%x\nSM4_IV=%x\n", key, iv)
	return nil
}

var errSelfTest = errors.New("self-test failed")
