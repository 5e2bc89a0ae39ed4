package xtea_test

import (
	"testing"

	"github.com/sxdium/xtea"
)

var lengths = []struct {
	name string
	n    int
}{
	{"8B", 8},
	{"64B", 64},
	{"256B", 256},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
	{"1MiB", 1024 * 1024},
}

func BenchmarkEncrypt(b *testing.B) {
	key := make([]byte, xtea.KeySize)

	for _, variant := range []xtea.Variant{xtea.XTEA, xtea.TEA} {
		c, err := xtea.New(variant, xtea.DefaultRounds)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(variant.String(), func(b *testing.B) {
			for _, length := range lengths {
				b.Run(length.name, func(b *testing.B) {
					data := make([]byte, length.n)
					b.ReportAllocs()
					b.SetBytes(int64(len(data)))
					for b.Loop() {
						if err := c.Encrypt(data, key); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

func BenchmarkDecrypt(b *testing.B) {
	key := make([]byte, xtea.KeySize)

	for _, variant := range []xtea.Variant{xtea.XTEA, xtea.TEA} {
		c, err := xtea.New(variant, xtea.DefaultRounds)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(variant.String(), func(b *testing.B) {
			for _, length := range lengths {
				b.Run(length.name, func(b *testing.B) {
					data := make([]byte, length.n)
					b.ReportAllocs()
					b.SetBytes(int64(len(data)))
					for b.Loop() {
						if err := c.Decrypt(data, key); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

func BenchmarkEncipherBlock(b *testing.B) {
	key := [4]uint32{0, 1, 2, 3}

	for _, variant := range []xtea.Variant{xtea.XTEA, xtea.TEA} {
		c, err := xtea.New(variant, xtea.DefaultRounds)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(variant.String(), func(b *testing.B) {
			var block [2]uint32
			b.ReportAllocs()
			b.SetBytes(xtea.BlockSize)
			for b.Loop() {
				c.EncipherBlock(&block, &key)
			}
		})
	}
}
