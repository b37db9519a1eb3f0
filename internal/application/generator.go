package application

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

// Length bounds enforced by the generator. The ceiling only guards against
// absurd requests; interfaces may cap lower.
const (
	MinGeneratedLength = 6
	MaxGeneratedLength = 4096
)

// Character classes available to the generator, concatenated in this order.
const (
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	DecimalDigits    = "0123456789"
)

// Sentinel errors returned by PasswordGenerator.Generate.
var (
	// ErrLengthTooShort indicates the requested length is below MinGeneratedLength.
	ErrLengthTooShort = errors.New("password length should be at least 6 characters")

	// ErrLengthTooLong indicates the requested length is above MaxGeneratedLength.
	ErrLengthTooLong = errors.New("password length should be at most 4096 characters")

	// ErrNoCharacterClassSelected indicates all four character classes were deselected.
	ErrNoCharacterClassSelected = errors.New("please select at least one character type")
)

// PasswordGenerator builds random passwords from a selectable character pool.
type PasswordGenerator struct {
	random io.Reader
}

// NewPasswordGenerator creates a PasswordGenerator reading randomness from src.
// A nil src selects crypto/rand.Reader.
func NewPasswordGenerator(src io.Reader) *PasswordGenerator {
	if src == nil {
		src = rand.Reader
	}
	return &PasswordGenerator{random: src}
}

// Generate returns a password of cfg.Length characters, each drawn uniformly
// and independently from Alphabet(cfg). A selected class is not guaranteed to
// appear in the result.
//
// Validation stops at the first failure: a length outside
// [MinGeneratedLength, MaxGeneratedLength] is reported before an empty class
// selection.
func (g *PasswordGenerator) Generate(cfg model.GenerationConfig) (string, error) {
	if cfg.Length < MinGeneratedLength {
		return "", ErrLengthTooShort
	}
	if cfg.Length > MaxGeneratedLength {
		return "", ErrLengthTooLong
	}
	if !cfg.HasCharacterClass() {
		return "", ErrNoCharacterClassSelected
	}

	alphabet := Alphabet(cfg)
	size := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	sb.Grow(cfg.Length)

	for i := 0; i < cfg.Length; i++ {
		idx, err := rand.Int(g.random, size)
		if err != nil {
			return "", fmt.Errorf("draw random index: %w", err)
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}

	return sb.String(), nil
}

// Alphabet returns the candidate characters for cfg: the selected classes
// concatenated as uppercase, lowercase, digits, special.
func Alphabet(cfg model.GenerationConfig) string {
	var sb strings.Builder
	if cfg.IncludeUpper {
		sb.WriteString(UppercaseLetters)
	}
	if cfg.IncludeLower {
		sb.WriteString(LowercaseLetters)
	}
	if cfg.IncludeDigits {
		sb.WriteString(DecimalDigits)
	}
	if cfg.IncludeSpecial {
		sb.WriteString(SpecialCharacters)
	}
	return sb.String()
}
