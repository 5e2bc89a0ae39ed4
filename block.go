package xtea

import (
	"crypto/cipher"
	"encoding/binary"
)

// NewBlock returns a [crypto/cipher.Block] using the cipher's variant and
// round count with the given key, suitable for use with the standard
// library's mode-of-operation constructors. Unlike Encrypt and Decrypt, the
// returned Block retains a copy of the key for its lifetime, per the
// crypto/cipher contract.
func (c *Cipher) NewBlock(key []byte) (cipher.Block, error) {
	k, err := loadKey(key)
	if err != nil {
		return nil, err
	}
	return &block{cipher: *c, key: k}, nil
}

type block struct {
	cipher Cipher
	key    [4]uint32
}

func (b *block) BlockSize() int {
	return BlockSize
}

func (b *block) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("xtea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("xtea: output not full block")
	}

	var v [2]uint32
	v[0] = binary.BigEndian.Uint32(src)
	v[1] = binary.BigEndian.Uint32(src[4:])
	b.cipher.EncipherBlock(&v, &b.key)
	binary.BigEndian.PutUint32(dst, v[0])
	binary.BigEndian.PutUint32(dst[4:], v[1])
}

func (b *block) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("xtea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("xtea: output not full block")
	}

	var v [2]uint32
	v[0] = binary.BigEndian.Uint32(src)
	v[1] = binary.BigEndian.Uint32(src[4:])
	b.cipher.DecipherBlock(&v, &b.key)
	binary.BigEndian.PutUint32(dst, v[0])
	binary.BigEndian.PutUint32(dst[4:], v[1])
}
