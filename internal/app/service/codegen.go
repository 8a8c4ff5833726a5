// Package service implements the short-code generator and the shortener
// service that orchestrates URL deduplication, collision-safe code minting
// and redirect resolution.
package service

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// DefaultCodeLength is the length of system-generated short codes.
const DefaultCodeLength = 6

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var alphabetSize = big.NewInt(int64(len(alphabet)))

// ErrInvalidLength reports a non-positive code length, a caller programming
// error.
var ErrInvalidLength = errors.New("code length must be positive")

// CodeGenerator produces random candidate short codes. Generated codes are
// not guaranteed unique; uniqueness is enforced by the storage constraint
// plus the caller's retry loop.
type CodeGenerator struct {
	length int
}

func NewCodeGenerator(length int) (*CodeGenerator, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return &CodeGenerator{length: length}, nil
}

// Generate returns a code of exactly the configured length, each character
// drawn uniformly and independently from the 62-symbol alphanumeric alphabet.
func (g *CodeGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}

// Alphabet exposes the code alphabet.
func Alphabet() string { return alphabet }
