//
// bench.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"io"

	"github.com/markkurossi/gmsm/bench"
	"github.com/markkurossi/gmsm/modes"
	"github.com/markkurossi/gmsm/sm3"
	"github.com/markkurossi/gmsm/sm4"
)

func benchmark(out io.Writer, mb int) error {
	prg := bench.NewPRG([]byte("smtool benchmark"))
	data := prg.Bytes(mb * 1024 * 1024)
	key := prg.Bytes(sm4.KeySize)
	iv := prg.Bytes(sm4.BlockSize)
	size := uint64(len(data))

	c, err := sm4.NewCipher(key)
	if err != nil {
		return err
	}

	timing := bench.NewTiming()

	sm3.Sum(data)
	timing.Sample("SM3", size)

	modes.NewECBEncrypter(c).CryptBlocks(data, data)
	timing.Sample("SM4-ECB encrypt", size)

	modes.NewECBDecrypter(c).CryptBlocks(data, data)
	timing.Sample("SM4-ECB decrypt", size)

	enc, err := modes.NewCBCEncrypter(c, iv)
	if err != nil {
		return err
	}
	timing.Reset()
	enc.CryptBlocks(data, data)
	timing.Sample("SM4-CBC encrypt", size)

	dec, err := modes.NewCBCDecrypter(c, iv)
	if err != nil {
		return err
	}
	timing.Reset()
	dec.CryptBlocks(data, data)
	timing.Sample("SM4-CBC decrypt", size)

	timing.Print(out)
	return nil
}
