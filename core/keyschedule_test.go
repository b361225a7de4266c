package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateBitsRoundTrip(t *testing.T) {
	key := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99}
	orig := append([]byte(nil), key...)

	rotateLeftBits(key, 61)
	assert.NotEqual(t, orig, key)

	rotateRightBits(key, 61)
	assert.Equal(t, orig, key)
}

func TestRotateLeftBitsZero(t *testing.T) {
	key := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	orig := append([]byte(nil), key...)
	rotateLeftBits(key, 0)
	assert.Equal(t, orig, key)

	rotateLeftBits(key, 32) // full width, also a no-op
	assert.Equal(t, orig, key)
}

func TestUpdateKey80RoundTrip(t *testing.T) {
	key := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99}
	orig := append([]byte(nil), key...)

	for r := 1; r <= 31; r++ {
		updateKey80(key, r, true)
	}
	assert.NotEqual(t, orig, key)

	for r := 31; r >= 1; r-- {
		updateKey80(key, r, false)
	}
	assert.Equal(t, orig, key)
}

func TestUpdateKey128RoundTrip(t *testing.T) {
	key := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}
	orig := append([]byte(nil), key...)

	for r := 1; r <= 31; r++ {
		updateKey128(key, r, true)
	}
	assert.NotEqual(t, orig, key)

	for r := 31; r >= 1; r-- {
		updateKey128(key, r, false)
	}
	assert.Equal(t, orig, key)
}
