// Package present provides an ergonomic, single-block entry point to the
// PRESENT cipher core, mirroring the teacher's StdEncrypter/StdDecrypter
// convention (crypto/sm4.StdEncrypter, crypto/tea.StdEncrypter): a small
// struct holding a configured cipher and an Error field set at
// construction time, so a caller who misconfigures the cipher learns
// about it before ever calling Encrypt or Decrypt.
//
// PRESENT operates on exactly one 8-byte block per call (spec.md §6); this
// package deliberately does not chunk longer inputs into independent
// blocks, which would silently reimplement ECB mode — an explicit
// Non-goal (spec.md §1, §9).
package present

import (
	"github.com/dromara/present/cipher"
	"github.com/dromara/present/core"
)

// BlockSize is the PRESENT block size in bytes.
const BlockSize = core.BlockSize

// StdEncrypter encrypts a single PRESENT block.
type StdEncrypter struct {
	cipher *core.Cipher
	Error  error
}

// NewStdEncrypter builds a StdEncrypter from the given configuration.
// Key-size, round-count, and variant validation all happen here; a
// misconfigured cipher is reported via the Error field rather than a
// panic from Encrypt.
func NewStdEncrypter(c *cipher.PresentCipher) *StdEncrypter {
	e := &StdEncrypter{}
	e.cipher, e.Error = newCore(c)
	return e
}

// Encrypt encrypts src, which must be exactly BlockSize bytes, and
// returns the ciphertext. src is not modified.
func (e *StdEncrypter) Encrypt(src []byte) (dst []byte, err error) {
	if e.Error != nil {
		return nil, e.Error
	}
	if len(src) != BlockSize {
		return nil, InvalidDataSizeError{Size: len(src)}
	}

	dst = make([]byte, BlockSize)
	e.cipher.Encrypt(dst, src)
	return dst, nil
}

// StdDecrypter decrypts a single PRESENT block.
type StdDecrypter struct {
	cipher *core.Cipher
	Error  error
}

// NewStdDecrypter builds a StdDecrypter from the given configuration.
func NewStdDecrypter(c *cipher.PresentCipher) *StdDecrypter {
	d := &StdDecrypter{}
	d.cipher, d.Error = newCore(c)
	return d
}

// Decrypt decrypts src, which must be exactly BlockSize bytes, and
// returns the plaintext. src is not modified.
func (d *StdDecrypter) Decrypt(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		return nil, d.Error
	}
	if len(src) != BlockSize {
		return nil, InvalidDataSizeError{Size: len(src)}
	}

	dst = make([]byte, BlockSize)
	d.cipher.Decrypt(dst, src)
	return dst, nil
}

// newCore translates a cipher.PresentCipher configuration into a
// core.Cipher, wrapping any construction error so callers see it through
// the Std*.Error field rather than a raw core error.
func newCore(c *cipher.PresentCipher) (*core.Cipher, error) {
	var variant core.Variant
	switch c.Variant {
	case cipher.Variant80:
		variant = core.Variant80
	case cipher.Variant128:
		variant = core.Variant128
	default:
		// Not a recognised variant: core.NewCipher rejects it.
		variant = core.Variant(c.Variant)
	}

	cc, err := core.NewCipher(variant, c.Key, c.Rounds)
	if err != nil {
		return nil, ConfigError{Err: err}
	}
	return cc, nil
}
