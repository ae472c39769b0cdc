package entity

// FieldType enumerates the kinds of values a field can hold
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeNumber      FieldType = "number"
	FieldTypePhotos      FieldType = "photos"
	FieldTypeLocation    FieldType = "location"
	FieldTypeBoolean     FieldType = "boolean"
)

// ValidFieldTypes is the canonical set of accepted field type strings.
var ValidFieldTypes = map[FieldType]bool{
	FieldTypeText:        true,
	FieldTypeSelect:      true,
	FieldTypeMultiselect: true,
	FieldTypeNumber:      true,
	FieldTypePhotos:      true,
	FieldTypeLocation:    true,
	FieldTypeBoolean:     true,
}

// Condition is an applicability predicate evaluated against already
// collected values: the referenced field must hold one of the listed
// values for the dependent field to apply.
type Condition struct {
	Field string   `json:"field"`
	AnyOf []string `json:"any_of"`
}

// Validation holds the optional value constraints of a field.
// Min/Max apply to number fields, MinLen/MaxLen and Pattern to text.
type Validation struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	MinLen  int      `json:"min_len,omitempty"`
	MaxLen  int      `json:"max_len,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

// FieldDefinition describes one collectible piece of structured
// information about a service request. Definitions are immutable and
// loaded once from the field catalog.
type FieldDefinition struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Type        FieldType   `json:"type"`
	Required    bool        `json:"required"`
	Prompt      string      `json:"prompt"` // deterministic fallback question
	Examples    []string    `json:"examples,omitempty"`
	Options     []string    `json:"options,omitempty"`
	DependsOn   string      `json:"depends_on,omitempty"`
	AppliesIf   *Condition  `json:"applies_if,omitempty"`
	Validation  *Validation `json:"validation,omitempty"`
}
