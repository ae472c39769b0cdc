package dialogue

import (
	"regexp"
	"strconv"
	"strings"
)

// Detection and mapping of utterances that refer back to previously
// offered suggestions ("le point 2", "les 3 points", "oui ces idées").
// Detection upgrades the classified intent to validates_suggestions;
// mapping turns the reference into the value stored for the field.

var ordinalWords = map[string]int{
	"premier": 1, "première": 1, "first": 1,
	"deuxième": 2, "second": 2, "seconde": 2,
	"troisième": 3, "third": 3,
	"quatrième": 4, "fourth": 4,
	"cinquième": 5, "fifth": 5,
}

var referenceMarkers = []string{
	"point", "points", "option", "options", "exemple", "exemples",
	"suggestion", "suggestions", "idée", "idées", "proposition", "propositions",
	"idea", "ideas", "example", "examples",
}

var acceptAllMarkers = []string{
	"tous", "toutes", "les trois", "les deux", "all of them", "all three",
	"ceux-là", "celles-là", "ces idées", "those ideas",
}

var digitRe = regexp.MustCompile(`\b\d+\b`)

// "les 3 points", "all 3 ideas": a count preceded by a plural article
// refers to the whole list, not to an index.
var countRefRe = regexp.MustCompile(`\b(?:les|tous les|toutes les|all)\s+(\d+)\b`)

// ReferencesSuggestions reports whether an utterance refers to the
// suggestions currently on the table. Only meaningful while help is
// open; callers must check that first.
func ReferencesSuggestions(utterance string) bool {
	text := strings.ToLower(utterance)

	for _, marker := range acceptAllMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	hasMarker := false
	for _, marker := range referenceMarkers {
		if containsWord(text, marker) {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		return false
	}

	if digitRe.MatchString(text) {
		return true
	}
	for word := range ordinalWords {
		if containsWord(text, word) {
			return true
		}
	}
	for _, w := range []string{"le", "la", "les", "ce", "ces", "cette", "the", "this", "these"} {
		if containsWord(text, w) {
			return true
		}
	}

	return false
}

// SelectSuggestions maps the reference onto the offered list. Explicit
// indices ("le point 2", "la première") pick those entries; a bare
// validation with no usable index accepts everything offered. The
// result preserves presentation order.
func SelectSuggestions(utterance string, offered []string) []string {
	if len(offered) == 0 {
		return nil
	}

	picked := make(map[int]bool)
	text := strings.ToLower(utterance)

	if m := countRefRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n == len(offered) {
			return offered
		}
	}

	for _, match := range digitRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(match)
		if err == nil && n >= 1 && n <= len(offered) {
			picked[n-1] = true
		}
	}
	for word, n := range ordinalWords {
		if containsWord(text, word) && n <= len(offered) {
			picked[n-1] = true
		}
	}

	if len(picked) == 0 {
		return offered
	}

	var selected []string
	for i := range offered {
		if picked[i] {
			selected = append(selected, offered[i])
		}
	}
	return selected
}

func containsWord(text, word string) bool {
	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	}) {
		if token == word {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '-' || r == '\'' ||
		(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r >= 0x80
}
