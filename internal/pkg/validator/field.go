package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ouvrio/intake-backend/internal/entity"
)

// affirmative and negative are the accepted boolean answers. The
// platform's users mostly write French, so both languages pass.
var affirmative = map[string]bool{
	"oui": true, "yes": true, "true": true, "ok": true, "d'accord": true,
}

var negative = map[string]bool{
	"non": true, "no": true, "false": true,
}

// ValidateFieldValue checks a raw utterance against a field definition.
// The returned error wraps entity.ErrInvalidFieldValue and carries the
// specific constraint, so the policy can re-ask the same field with a
// clarification instead of advancing.
func ValidateFieldValue(def entity.FieldDefinition, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s: une réponse est nécessaire", entity.ErrInvalidFieldValue, def.ID)
	}

	switch def.Type {
	case entity.FieldTypeNumber:
		return validateNumber(def, value)
	case entity.FieldTypeSelect:
		return validateSelect(def, value)
	case entity.FieldTypeMultiselect:
		return validateMultiselect(def, value)
	case entity.FieldTypeBoolean:
		return validateBoolean(def, value)
	case entity.FieldTypeText:
		return validateText(def, value)
	case entity.FieldTypePhotos, entity.FieldTypeLocation:
		// The engine only records that these were satisfied; upload and
		// geocoding live with their own collaborators.
		return nil
	default:
		return fmt.Errorf("%w: %s: type de champ inconnu", entity.ErrInvalidFieldValue, def.ID)
	}
}

// NormalizeFieldValue returns the canonical form of an already valid
// value (trimmed, numbers without surrounding text, booleans as
// oui/non).
func NormalizeFieldValue(def entity.FieldDefinition, value string) string {
	value = strings.TrimSpace(value)
	switch def.Type {
	case entity.FieldTypeNumber:
		if n, ok := extractNumber(value); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	case entity.FieldTypeBoolean:
		if affirmative[strings.ToLower(value)] {
			return "oui"
		}
		if negative[strings.ToLower(value)] {
			return "non"
		}
	case entity.FieldTypeSelect:
		for _, opt := range def.Options {
			if strings.EqualFold(opt, value) {
				return opt
			}
		}
	}
	return value
}

var numberRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// extractNumber pulls the first numeric token out of an utterance like
// "environ 25 m²".
func extractNumber(value string) (float64, bool) {
	token := numberRe.FindString(value)
	if token == "" {
		return 0, false
	}
	token = strings.ReplaceAll(token, ",", ".")
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func validateNumber(def entity.FieldDefinition, value string) error {
	n, ok := extractNumber(value)
	if !ok {
		return fmt.Errorf("%w: %s: une valeur numérique est attendue", entity.ErrInvalidFieldValue, def.ID)
	}
	if v := def.Validation; v != nil {
		if v.Min != nil && n < *v.Min {
			return fmt.Errorf("%w: %s: la valeur doit être au moins %g", entity.ErrInvalidFieldValue, def.ID, *v.Min)
		}
		if v.Max != nil && n > *v.Max {
			return fmt.Errorf("%w: %s: la valeur doit être au plus %g", entity.ErrInvalidFieldValue, def.ID, *v.Max)
		}
	}
	return nil
}

func validateSelect(def entity.FieldDefinition, value string) error {
	if len(def.Options) == 0 {
		return nil
	}
	for _, opt := range def.Options {
		if strings.EqualFold(opt, value) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: choisissez parmi %s",
		entity.ErrInvalidFieldValue, def.ID, strings.Join(def.Options, ", "))
}

func validateMultiselect(def entity.FieldDefinition, value string) error {
	if len(def.Options) == 0 {
		return nil
	}
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		found := false
		for _, opt := range def.Options {
			if strings.EqualFold(opt, part) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s: %q ne fait pas partie des choix %s",
				entity.ErrInvalidFieldValue, def.ID, part, strings.Join(def.Options, ", "))
		}
	}
	return nil
}

func validateBoolean(def entity.FieldDefinition, value string) error {
	lower := strings.ToLower(value)
	if affirmative[lower] || negative[lower] {
		return nil
	}
	return fmt.Errorf("%w: %s: répondez par oui ou par non", entity.ErrInvalidFieldValue, def.ID)
}

func validateText(def entity.FieldDefinition, value string) error {
	v := def.Validation
	if v == nil {
		return nil
	}
	if v.MinLen > 0 && len([]rune(value)) < v.MinLen {
		return fmt.Errorf("%w: %s: au moins %d caractères sont attendus", entity.ErrInvalidFieldValue, def.ID, v.MinLen)
	}
	if v.MaxLen > 0 && len([]rune(value)) > v.MaxLen {
		return fmt.Errorf("%w: %s: au plus %d caractères sont autorisés", entity.ErrInvalidFieldValue, def.ID, v.MaxLen)
	}
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return nil
		}
		if !re.MatchString(value) {
			return fmt.Errorf("%w: %s: le format attendu n'est pas respecté", entity.ErrInvalidFieldValue, def.ID)
		}
	}
	return nil
}

// ConstraintMessage extracts the user-facing constraint from a
// validation error, for building the clarification turn.
func ConstraintMessage(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
