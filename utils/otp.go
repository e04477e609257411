package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateNumericCode returns a random code of length decimal digits.
// Leading zeros are kept, so "0042" is a valid 4 digit code.
func GenerateNumericCode(length int) (string, error) {
	const digits = "0123456789"

	result := make([]byte, length)
	for i := range result {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		result[i] = digits[num.Int64()]
	}

	return string(result), nil
}
