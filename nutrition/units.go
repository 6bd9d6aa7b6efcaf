package nutrition

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Unit is the measurement a user enters an ingredient amount in.
type Unit string

const (
	UnitGrams       Unit = "g"
	UnitTablespoons Unit = "tbsp"
	UnitNatural     Unit = "natural"
)

// GramsPerTablespoon is a fixed approximation used regardless of ingredient
// density. Good enough for spoonable ingredients; not a physical constant.
const GramsPerTablespoon = 15.0

// ErrServingSizeRequired is returned when a natural-unit conversion is
// attempted for an ingredient with no known serving size. The caller must
// fall back to grams or reject the input upstream.
var ErrServingSizeRequired = errors.New("natural unit conversion requires a serving size in grams")

// ToGrams converts an amount in the given unit to grams. A servingSizeGrams
// of zero or less means "no serving size known".
func ToGrams(amount float64, unit Unit, servingSizeGrams float64) (float64, error) {
	switch unit {
	case UnitGrams:
		return amount, nil
	case UnitTablespoons:
		return amount * GramsPerTablespoon, nil
	case UnitNatural:
		if servingSizeGrams <= 0 {
			return 0, ErrServingSizeRequired
		}
		return amount * servingSizeGrams, nil
	default:
		return 0, fmt.Errorf("unsupported unit %q", unit)
	}
}

// FromGrams is the exact inverse of ToGrams for each unit.
func FromGrams(grams float64, unit Unit, servingSizeGrams float64) (float64, error) {
	switch unit {
	case UnitGrams:
		return grams, nil
	case UnitTablespoons:
		return grams / GramsPerTablespoon, nil
	case UnitNatural:
		if servingSizeGrams <= 0 {
			return 0, ErrServingSizeRequired
		}
		return grams / servingSizeGrams, nil
	default:
		return 0, fmt.Errorf("unsupported unit %q", unit)
	}
}

// Vocabulary is the set of nouns treated as natural countable units. It is
// explicit data passed to IsCountable rather than a hidden global, so tests
// and callers can substitute their own word lists.
type Vocabulary map[string]struct{}

func NewVocabulary(words ...string) Vocabulary {
	v := make(Vocabulary, len(words))
	for _, w := range words {
		v[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return v
}

// DefaultVocabulary covers the countable nouns the upstream food database
// commonly emits as serving units.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(
		"egg", "slice", "piece", "unit", "item",
		"patty", "fillet", "stick", "bar", "wrap",
	)
}

// IsCountable reports whether a serving-unit label names a discrete item
// ("egg", "slices") rather than a weight or volume. Matching is
// case-insensitive substring containment, so plurals and composites like
// "large egg" match without extra vocabulary entries.
func (v Vocabulary) IsCountable(label string) bool {
	l := strings.ToLower(label)
	for word := range v {
		if strings.Contains(l, word) {
			return true
		}
	}
	return false
}

// placeholderTokens are upstream filler words that carry no unit meaning.
var placeholderTokens = map[string]struct{}{
	"undetermined": {},
	"unknown":      {},
	"serving":      {},
	"servings":     {},
	"sample":       {},
	"other":        {},
}

// SanitizeServingUnitLabel normalizes a free-text unit label from the
// ingredient database: placeholder tokens and trailing numeric codes are
// stripped, simple plurals of known countable nouns are singularized, and
// the result is title-cased. Returns ok=false when nothing meaningful
// remains.
func SanitizeServingUnitLabel(raw string, vocab Vocabulary) (string, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",.;:()")
		if f == "" || isNumeric(f) {
			continue
		}
		if _, skip := placeholderTokens[f]; skip {
			continue
		}
		if singular := strings.TrimSuffix(f, "s"); singular != f {
			if _, known := vocab[singular]; known {
				f = singular
			}
		}
		kept = append(kept, titleWord(f))
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, " "), true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func titleWord(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
