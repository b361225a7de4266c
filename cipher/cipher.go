// Package cipher provides the PRESENT cipher's construction-time
// configuration: the master key, the key-register variant, and the round
// count. It mirrors the teacher's crypto/cipher.TeaCipher /
// crypto/cipher.XteaCipher config-struct pattern, without the mode and
// padding machinery those carry — PRESENT is a raw block primitive
// (spec.md §1), so this package has no BlockMode or PaddingMode fields.
package cipher

// Variant selects the PRESENT key-register width. It mirrors
// core.Variant; PresentCipher holds its own copy so that callers needn't
// import the core package directly to build one.
type Variant int

const (
	// Variant80 selects the 80-bit key variant.
	Variant80 Variant = iota
	// Variant128 selects the 128-bit key variant.
	Variant128
)

// PresentCipher defines the configuration for a PRESENT cipher instance:
// the master key, the key-register variant, and the round count.
type PresentCipher struct {
	Key     []byte
	Variant Variant
	Rounds  int
}

// NewPresentCipher returns a new PresentCipher configured for the given
// variant, with the default round count (31).
func NewPresentCipher(variant Variant) *PresentCipher {
	return &PresentCipher{
		Variant: variant,
		Rounds:  31,
	}
}

// SetKey sets the master key.
func (c *PresentCipher) SetKey(key []byte) {
	c.Key = key
}

// SetVariant sets the key-register variant.
func (c *PresentCipher) SetVariant(variant Variant) {
	c.Variant = variant
}

// SetRounds sets the number of SPN rounds.
func (c *PresentCipher) SetRounds(rounds int) {
	c.Rounds = rounds
}
