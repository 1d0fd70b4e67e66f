package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
)

const (
	MinLength = 1
	MaxLength = 1024

	MinBatchCount = 1
	MaxBatchCount = 100
)

var (
	ErrInvalidLength = errors.New("password length must be at least 1")
	ErrLengthTooLong = errors.New("password length must be at most 1024")
	ErrInvalidCount  = errors.New("batch count must be a number between 1 and 100")
)

// Generate creates a cryptographically secure random password. Every character
// is drawn independently and uniformly from the pool built for opts.
func Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrInvalidLength
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pool, err := BuildPool(opts)
	if err != nil {
		return "", err
	}

	result := make([]rune, opts.Length)
	for i := range result {
		ch, err := randRune(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// GenerateBatch creates count passwords. The count is validated before any
// generation happens, and the first failure discards the whole batch.
func GenerateBatch(opts Options, count int) ([]string, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}

	return passwords, nil
}

// ValidateCount checks that count lies in [MinBatchCount, MaxBatchCount].
func ValidateCount(count int) error {
	if count < MinBatchCount || count > MaxBatchCount {
		return ErrInvalidCount
	}
	return nil
}

// ParseCount parses a user-entered batch count.
func ParseCount(text string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrInvalidCount
	}
	if err := ValidateCount(count); err != nil {
		return 0, err
	}
	return count, nil
}

// randRune picks a random rune from pool using crypto/rand.
func randRune(pool CharPool) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, err
	}
	return pool[n.Int64()], nil
}
