package application

import (
	"strings"
	"unicode/utf8"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

// MinStrongLength is the length a password needs to satisfy the length rule.
const MinStrongLength = 8

// SpecialCharacters is the set of characters that satisfy the special-character
// rule. The generator draws from the same set.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Remediation tips, one per rule, in evaluation order.
const (
	TipLength    = "increase length to at least 8"
	TipUppercase = "add an uppercase letter"
	TipLowercase = "add a lowercase letter"
	TipDigit     = "add a digit"
	TipSpecial   = "add a special character"
)

// strengthRule is one boolean predicate contributing at most one point.
type strengthRule struct {
	satisfied func(password string) bool
	tip       string
}

// strengthRules are evaluated in this order; the order of tips follows it.
var strengthRules = []strengthRule{
	{satisfied: func(p string) bool { return utf8.RuneCountInString(p) >= MinStrongLength }, tip: TipLength},
	{satisfied: func(p string) bool { return containsInRange(p, 'A', 'Z') }, tip: TipUppercase},
	{satisfied: func(p string) bool { return containsInRange(p, 'a', 'z') }, tip: TipLowercase},
	{satisfied: func(p string) bool { return containsInRange(p, '0', '9') }, tip: TipDigit},
	{satisfied: func(p string) bool { return strings.ContainsAny(p, SpecialCharacters) }, tip: TipSpecial},
}

// EvaluateStrength scores password against the five strength rules. The score
// is the number of satisfied rules; every failed rule contributes one tip.
// Any input, including the empty string, yields a valid result.
func EvaluateStrength(password string) model.StrengthResult {
	result := model.StrengthResult{Tips: []string{}}

	for _, rule := range strengthRules {
		if rule.satisfied(password) {
			result.Score++
			continue
		}
		result.Tips = append(result.Tips, rule.tip)
	}

	return result
}

// containsInRange reports whether s contains a byte in [lo, hi]. Only ASCII
// ranges are passed, so multi-byte runes never match.
func containsInRange(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			return true
		}
	}
	return false
}
