// Package xtea implements the TEA family of 64-bit block ciphers: the classic
// [TEA] Feistel schedule and the [XTEA] permuted schedule, keyed by a 128-bit
// key and applied to buffers block by block with no chaining between blocks.
//
// The byte-level operations read and write 32-bit words in big-endian order,
// matching the published XTEA test vectors. Both schedules run a fixed number
// of rounds with control flow independent of key and data bits.
//
// The cipher provides no authentication: identical plaintext blocks produce
// identical ciphertext blocks under the same key, and deciphering with a
// wrong key or round count yields well-formed garbage rather than an error.
// Callers needing integrity must layer a MAC on top.
//
// [TEA]: https://www.cl.cam.ac.uk/ftp/papers/djw-rmn/djw-rmn-tea.html
// [XTEA]: https://www.cix.co.uk/~klockstone/xtea.pdf
package xtea

import (
	"encoding/binary"
	"errors"

	"github.com/sxdium/xtea/internal/rounds"
)

const (
	// BlockSize is the cipher's block size in bytes.
	BlockSize = 8

	// KeySize is the cipher's key size in bytes.
	KeySize = 16

	// DefaultRounds is the round count used by the package-level Encrypt and
	// Decrypt functions.
	DefaultRounds = 32
)

var (
	// ErrInvalidKeyLength is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("xtea: key must be exactly 16 bytes")

	// ErrInvalidLength is returned when a buffer's length is not a multiple of
	// BlockSize.
	ErrInvalidLength = errors.New("xtea: data length must be a multiple of the block size")

	// ErrInvalidRounds is returned when the round count is zero.
	ErrInvalidRounds = errors.New("xtea: round count must be at least 1")

	// ErrInvalidVariant is returned when the variant is not TEA or XTEA.
	ErrInvalidVariant = errors.New("xtea: unknown variant")
)

// A Variant selects one of the two round schedules. The choice is fixed per
// Cipher; a buffer enciphered with one variant cannot be deciphered with the
// other.
type Variant uint8

const (
	// XTEA is the permuted schedule with the sum-indexed key schedule.
	XTEA Variant = iota

	// TEA is the classic Feistel schedule.
	TEA
)

func (v Variant) String() string {
	switch v {
	case XTEA:
		return "XTEA"
	case TEA:
		return "TEA"
	default:
		return "unknown"
	}
}

// A Cipher is a variant and a round count. It holds no key material; keys are
// passed per call and never retained. Cipher values are safe for concurrent
// use provided concurrent calls operate on disjoint buffers.
type Cipher struct {
	variant Variant
	rounds  uint32
}

// New returns a Cipher using the given variant and round count. The same
// round count used to encipher must be used to decipher; the algorithm cannot
// detect a mismatch.
func New(variant Variant, numRounds uint32) (*Cipher, error) {
	if variant != XTEA && variant != TEA {
		return nil, ErrInvalidVariant
	}
	if numRounds == 0 {
		return nil, ErrInvalidRounds
	}
	return &Cipher{variant: variant, rounds: numRounds}, nil
}

// Variant returns the cipher's round schedule.
func (c *Cipher) Variant() Variant {
	return c.variant
}

// Rounds returns the cipher's round count.
func (c *Cipher) Rounds() uint32 {
	return c.rounds
}

// EncipherBlock transforms a single block in place under key.
func (c *Cipher) EncipherBlock(block *[2]uint32, key *[4]uint32) {
	if c.variant == TEA {
		rounds.TEAEncipher(block, key, c.rounds)
	} else {
		rounds.XTEAEncipher(block, key, c.rounds)
	}
}

// DecipherBlock inverts EncipherBlock for the same key.
func (c *Cipher) DecipherBlock(block *[2]uint32, key *[4]uint32) {
	if c.variant == TEA {
		rounds.TEADecipher(block, key, c.rounds)
	} else {
		rounds.XTEADecipher(block, key, c.rounds)
	}
}

// Encrypt enciphers data in place, block by block, each block independently.
// data must be a multiple of BlockSize bytes and key exactly KeySize bytes;
// both are checked before any block is touched, so a failed call leaves data
// unmodified. A zero-length buffer is a no-op.
func (c *Cipher) Encrypt(data, key []byte) error {
	k, err := loadKey(key)
	if err != nil {
		return err
	}
	if len(data)%BlockSize != 0 {
		return ErrInvalidLength
	}

	for off := 0; off < len(data); off += BlockSize {
		var v [2]uint32
		v[0] = binary.BigEndian.Uint32(data[off:])
		v[1] = binary.BigEndian.Uint32(data[off+4:])
		c.EncipherBlock(&v, &k)
		binary.BigEndian.PutUint32(data[off:], v[0])
		binary.BigEndian.PutUint32(data[off+4:], v[1])
	}
	return nil
}

// Decrypt inverts Encrypt for the same key, with the same validation.
func (c *Cipher) Decrypt(data, key []byte) error {
	k, err := loadKey(key)
	if err != nil {
		return err
	}
	if len(data)%BlockSize != 0 {
		return ErrInvalidLength
	}

	for off := 0; off < len(data); off += BlockSize {
		var v [2]uint32
		v[0] = binary.BigEndian.Uint32(data[off:])
		v[1] = binary.BigEndian.Uint32(data[off+4:])
		c.DecipherBlock(&v, &k)
		binary.BigEndian.PutUint32(data[off:], v[0])
		binary.BigEndian.PutUint32(data[off+4:], v[1])
	}
	return nil
}

// Encrypt enciphers data in place with the XTEA schedule and DefaultRounds.
func Encrypt(data, key []byte) error {
	c := Cipher{variant: XTEA, rounds: DefaultRounds}
	return c.Encrypt(data, key)
}

// Decrypt deciphers data in place with the XTEA schedule and DefaultRounds.
func Decrypt(data, key []byte) error {
	c := Cipher{variant: XTEA, rounds: DefaultRounds}
	return c.Decrypt(data, key)
}

func loadKey(key []byte) ([4]uint32, error) {
	var k [4]uint32
	if len(key) != KeySize {
		return k, ErrInvalidKeyLength
	}
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[i*4:])
	}
	return k, nil
}
