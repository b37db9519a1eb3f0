package application

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

// zeroReader always yields zero bytes, so every draw selects index 0.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func allClasses(length int) model.GenerationConfig {
	return model.GenerationConfig{
		Length:         length,
		IncludeUpper:   true,
		IncludeLower:   true,
		IncludeDigits:  true,
		IncludeSpecial: true,
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	_, err := gen.Generate(allClasses(4))
	assert.ErrorIs(t, err, ErrLengthTooShort)
}

func TestGenerate_LengthCheckedBeforeClasses(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	_, err := gen.Generate(model.GenerationConfig{Length: 2})
	assert.ErrorIs(t, err, ErrLengthTooShort)
}

func TestGenerate_NoCharacterClassSelected(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	_, err := gen.Generate(model.GenerationConfig{Length: 8})
	assert.ErrorIs(t, err, ErrNoCharacterClassSelected)
}

func TestGenerate_DigitsOnly(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	got, err := gen.Generate(model.GenerationConfig{Length: 12, IncludeDigits: true})
	require.NoError(t, err)
	assert.Len(t, got, 12)
	for _, c := range got {
		assert.True(t, c >= '0' && c <= '9', "unexpected character %q", c)
	}
}

func TestGenerate_MinimumLength(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	got, err := gen.Generate(allClasses(MinGeneratedLength))
	require.NoError(t, err)
	assert.Len(t, got, MinGeneratedLength)
}

func TestGenerate_LongPasswordsAllowed(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	got, err := gen.Generate(allClasses(MaxGeneratedLength))
	require.NoError(t, err)
	assert.Len(t, got, MaxGeneratedLength)
}

func TestGenerate_LengthTooLong(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	for _, length := range []int{MaxGeneratedLength + 1, math.MaxInt} {
		_, err := gen.Generate(allClasses(length))
		assert.ErrorIs(t, err, ErrLengthTooLong, "length %d", length)
	}

	_, err := gen.Generate(model.GenerationConfig{Length: MaxGeneratedLength + 1})
	assert.ErrorIs(t, err, ErrLengthTooLong, "length checked before classes")
}

func TestGenerate_DrawsOnlyFromAlphabet(t *testing.T) {
	gen := NewPasswordGenerator(nil)

	configs := []model.GenerationConfig{
		{Length: 64, IncludeUpper: true},
		{Length: 64, IncludeLower: true},
		{Length: 64, IncludeSpecial: true},
		{Length: 64, IncludeUpper: true, IncludeDigits: true},
		allClasses(64),
	}

	for _, cfg := range configs {
		alphabet := Alphabet(cfg)
		got, err := gen.Generate(cfg)
		require.NoError(t, err)
		for _, c := range got {
			assert.True(t, strings.ContainsRune(alphabet, c), "character %q not in %q", c, alphabet)
		}
	}
}

func TestGenerate_UsesInjectedSource(t *testing.T) {
	gen := NewPasswordGenerator(zeroReader{})

	got, err := gen.Generate(model.GenerationConfig{Length: 6, IncludeLower: true, IncludeDigits: true})
	require.NoError(t, err)
	assert.Equal(t, "aaaaaa", got)
}

func TestGenerate_SourceFailure(t *testing.T) {
	gen := NewPasswordGenerator(failingReader{})

	_, err := gen.Generate(allClasses(8))
	assert.Error(t, err)
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.GenerationConfig
		want string
	}{
		{
			name: "nothing selected",
			cfg:  model.GenerationConfig{},
			want: "",
		},
		{
			name: "all classes in fixed order",
			cfg:  allClasses(12),
			want: UppercaseLetters + LowercaseLetters + DecimalDigits + SpecialCharacters,
		},
		{
			name: "digits and special",
			cfg:  model.GenerationConfig{IncludeDigits: true, IncludeSpecial: true},
			want: "0123456789" + `!@#$%^&*(),.?":{}|<>`,
		},
		{
			name: "upper and lower",
			cfg:  model.GenerationConfig{IncludeUpper: true, IncludeLower: true},
			want: UppercaseLetters + LowercaseLetters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Alphabet(tt.cfg))
		})
	}
}
