package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateSecureID returns an identifier of the form "<prefix>_<random>",
// where the random part is length characters drawn from [0-9a-z] using
// crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("idgen: prefix must not be empty")
	}
	if length <= 0 {
		return "", fmt.Errorf("idgen: length must be positive, got %d", length)
	}

	var builder strings.Builder
	builder.Grow(len(prefix) + 1 + length)
	builder.WriteString(prefix)
	builder.WriteByte('_')

	alphabetSize := big.NewInt(int64(len(idAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("idgen: read random: %w", err)
		}
		builder.WriteByte(idAlphabet[n.Int64()])
	}

	return builder.String(), nil
}
