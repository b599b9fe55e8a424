package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator censors configured words in message text.
// Matching runs over a normalized view of the text (lowercased, leet
// speak folded, punctuation and spacing stripped) so that obfuscated
// spellings are still caught, while the replacement preserves the
// original spacing.
type Moderator struct {
	matcher         *goahocorasick.Machine
	hasPatterns     bool
	replacementChar rune
	log             *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton from the normalized
// word list. Words that normalize to nothing (pure punctuation) are
// skipped so they cannot match everywhere.
func NewModerator(censoredWords []string, replacementChar rune, log *slog.Logger) (Moderator, error) {
	var patterns [][]rune
	for _, word := range censoredWords {
		p := normalizeRunes([]rune(word))
		if len(p) == 0 {
			continue
		}
		patterns = append(patterns, p)
	}

	m := new(goahocorasick.Machine)
	if len(patterns) > 0 {
		if err := m.Build(patterns); err != nil {
			return Moderator{}, err
		}
	}
	return Moderator{
		matcher:         m,
		hasPatterns:     len(patterns) > 0,
		replacementChar: replacementChar,
		log:             log,
	}, nil
}

// Censor replaces every span matching a censored word with the
// replacement character and returns the list of matched words.
// Text without matches is returned untouched.
func (m *Moderator) Censor(original string) (string, []string) {
	if !m.hasPatterns {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		words = append(words, string(span.Word))

		// Map the normalized span back to the original rune range.
		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.replacementChar
		}
	}

	if len(words) > 0 && m.log != nil {
		m.log.Debug("Censored message content", "words", len(words))
	}
	return string(origRunes), words
}

// normalize builds the searchable view of the input and records where
// each kept rune sits in the original text.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune folds common leet speak characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during pattern matching.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
