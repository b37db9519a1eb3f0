package model

// GenerationConfig selects the length and character classes for a generated
// password.
type GenerationConfig struct {
	Length         int
	IncludeUpper   bool
	IncludeLower   bool
	IncludeDigits  bool
	IncludeSpecial bool
}

// HasCharacterClass reports whether at least one character class is selected.
func (c GenerationConfig) HasCharacterClass() bool {
	return c.IncludeUpper || c.IncludeLower || c.IncludeDigits || c.IncludeSpecial
}
