package catalog

import (
	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

// head and tail are the fixed parts of every resolved field list; the
// category only contributes the extras in between.
var head = []string{
	entity.FieldProjectCategory,
	entity.FieldServiceType,
	entity.FieldProjectDescription,
}

var tail = []string{
	entity.FieldPhotosUploaded,
	entity.FieldProjectLocation,
}

// Resolve computes the ordered, deduplicated field list required for a
// category. An unknown or empty category is never an error: it degrades
// to the five fixed fields, logged as a catalog maintenance signal.
func (c *Catalog) Resolve(category string) []string {
	extras, known := c.categories[category]
	if category != "" && !known {
		c.logger.Warn("category has no field set, resolving without extras",
			zap.String("category", category),
		)
	}

	ids := make([]string, 0, len(head)+len(extras)+len(tail))
	seen := make(map[string]bool, len(head)+len(extras)+len(tail))

	// The tail always closes the list; extras listing a tail field must
	// not hoist it out of the fixed suffix.
	for _, id := range tail {
		seen[id] = true
	}

	for _, group := range [][]string{head, extras} {
		for _, id := range group {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return append(ids, tail...)
}

// MissingFields walks the resolved list for a category and returns, in
// order, every applicable field without a collected value. Collected
// values are assumed validated; resolution is a pure function of the
// inputs, so two consecutive calls against the same values agree.
func (c *Catalog) MissingFields(category string, values map[string]string) []string {
	var missing []string
	for _, id := range c.Resolve(category) {
		def, ok := c.fields[id]
		if !ok {
			continue
		}
		if !c.Applicable(def, values) {
			continue
		}
		if v, collected := values[id]; !collected || v == "" {
			missing = append(missing, id)
		}
	}
	return missing
}

// NextMissing returns the first applicable field without a collected
// value, or false when the draft satisfies every applicable field.
func (c *Catalog) NextMissing(category string, values map[string]string) (string, bool) {
	missing := c.MissingFields(category, values)
	if len(missing) == 0 {
		return "", false
	}
	return missing[0], true
}
