package model

// Strength is the classification derived from a StrengthResult score.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// MaxStrengthScore is the number of strength rules; a password satisfying all of
// them scores this value.
const MaxStrengthScore = 5

// StrengthResult holds the outcome of scoring a password. Score is the count of
// satisfied rules. Tips has one entry per failed rule, in rule order.
type StrengthResult struct {
	Score int
	Tips  []string
}

// Strength classifies the result's score.
func (r StrengthResult) Strength() Strength {
	return ClassifyStrength(r.Score)
}

// ClassifyStrength maps a score to its classification: a perfect score is
// strong, 3 or more is medium, anything lower is weak.
func ClassifyStrength(score int) Strength {
	switch {
	case score >= MaxStrengthScore:
		return StrengthStrong
	case score >= 3:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}
