package payment

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestSignatureIsPlainConcatenation(t *testing.T) {
	expected := sha512Hex("TRX-1" + "200" + "1000" + "secret")

	assert.Equal(t, expected, Signature("TRX-1", "200", "1000", "secret"))
	assert.Equal(t, strings.ToLower(expected), expected)
	assert.Len(t, expected, 128)
}

func TestVerifySignature(t *testing.T) {
	valid := Signature("TRX-1", "200", "1000.00", "secret")

	assert.True(t, VerifySignature("TRX-1", "200", "1000.00", "secret", valid))
	assert.False(t, VerifySignature("TRX-1", "200", "1000.00", "secret", strings.ToUpper(valid)))
	assert.False(t, VerifySignature("TRX-1", "200", "1000.00", "secret", ""))
}

func TestVerifySignatureSingleCharacterMutation(t *testing.T) {
	fields := []string{"TRX-1", "200", "1000.00", "secret"}
	valid := Signature(fields[0], fields[1], fields[2], fields[3])

	for i := range fields {
		mutated := append([]string(nil), fields...)
		mutated[i] = mutated[i] + "x"
		assert.False(t, VerifySignature(mutated[0], mutated[1], mutated[2], mutated[3], valid), "field %d", i)

		last := []rune(fields[i])
		last[len(last)-1]++
		mutated[i] = string(last)
		assert.False(t, VerifySignature(mutated[0], mutated[1], mutated[2], mutated[3], valid), "field %d", i)
	}

	tampered := []byte(valid)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, VerifySignature(fields[0], fields[1], fields[2], fields[3], string(tampered)))
}

func TestSignatureHasNoDelimiters(t *testing.T) {
	// Moving a character across a field boundary yields the same digest.
	assert.Equal(t, Signature("TRX-12", "00", "1000", "k"), Signature("TRX-1", "200", "1000", "k"))
}
