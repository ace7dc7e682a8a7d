package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomDigits returns a uniformly random decimal string of exactly n digits,
// left padded with zeros. The full range 0 .. 10^n-1 is reachable.
func RandomDigits(n int) (string, error) {
	if n <= 0 || n > 18 {
		return "", fmt.Errorf("%w: digit count must be within 1..18", ErrorValidation)
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("random source: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v.Int64()), nil
}
