package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

// Catalog holds the immutable field definitions and the category →
// extra-fields mapping. It is loaded once per process and shared
// read-only across all dialogue sessions.
type Catalog struct {
	fields     map[string]entity.FieldDefinition
	categories map[string][]string
	logger     *zap.Logger
}

// catalogFile is the on-disk shape of a field catalog.
type catalogFile struct {
	Fields     []entity.FieldDefinition `json:"fields"`
	Categories map[string][]string      `json:"categories"`
}

// New builds a catalog from explicit definitions, validating the
// cross-references between categories, dependsOn targets and
// applicability conditions.
func New(fields []entity.FieldDefinition, categories map[string][]string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	byID := make(map[string]entity.FieldDefinition, len(fields))
	for _, def := range fields {
		if def.ID == "" {
			return nil, fmt.Errorf("field definition without id")
		}
		if _, exists := byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate field definition: %s", def.ID)
		}
		if !entity.ValidFieldTypes[def.Type] {
			return nil, fmt.Errorf("field %s: unknown type %q", def.ID, def.Type)
		}
		byID[def.ID] = def
	}

	for _, id := range []string{
		entity.FieldProjectCategory,
		entity.FieldServiceType,
		entity.FieldProjectDescription,
		entity.FieldPhotosUploaded,
		entity.FieldProjectLocation,
	} {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("catalog is missing the fixed field %s", id)
		}
	}

	for _, def := range byID {
		if def.DependsOn != "" {
			if _, ok := byID[def.DependsOn]; !ok {
				return nil, fmt.Errorf("field %s depends on unknown field %s", def.ID, def.DependsOn)
			}
		}
		if def.AppliesIf != nil {
			if _, ok := byID[def.AppliesIf.Field]; !ok {
				return nil, fmt.Errorf("field %s: applicability references unknown field %s", def.ID, def.AppliesIf.Field)
			}
		}
	}

	for category, extras := range categories {
		for _, id := range extras {
			if _, ok := byID[id]; !ok {
				return nil, fmt.Errorf("category %s references unknown field %s", category, id)
			}
		}
	}

	return &Catalog{
		fields:     byID,
		categories: categories,
		logger:     logger,
	}, nil
}

// Load reads a catalog from a JSON file. A missing path falls back to
// the embedded defaults; a present but broken file is an error, since a
// half-loaded catalog would silently drop required fields.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	if path == "" {
		return Default(logger)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("field catalog file not found, using embedded defaults",
				zap.String("path", path),
			)
			return Default(logger)
		}
		return nil, fmt.Errorf("read field catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse field catalog JSON: %w", err)
	}
	if len(file.Fields) == 0 {
		return nil, fmt.Errorf("field catalog %s contains no field definitions", path)
	}

	cat, err := New(file.Fields, file.Categories, logger)
	if err != nil {
		return nil, fmt.Errorf("validate field catalog %s: %w", path, err)
	}

	logger.Info("field catalog loaded",
		zap.String("path", path),
		zap.Int("fields", len(file.Fields)),
		zap.Int("categories", len(file.Categories)),
	)
	return cat, nil
}

// Field returns the definition of a field id.
func (c *Catalog) Field(id string) (entity.FieldDefinition, bool) {
	def, ok := c.fields[id]
	return def, ok
}

// Categories returns the known category names. Order is unspecified.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	return names
}

// Applicable reports whether a field applies given the currently
// collected values. A dependsOn target without a collected value or a
// failing applies_if condition excludes the field; applicability always
// overrides raw requiredness.
func (c *Catalog) Applicable(def entity.FieldDefinition, values map[string]string) bool {
	if def.DependsOn != "" {
		if v, ok := values[def.DependsOn]; !ok || v == "" {
			return false
		}
	}
	if def.AppliesIf != nil {
		current, ok := values[def.AppliesIf.Field]
		if !ok {
			return false
		}
		for _, candidate := range def.AppliesIf.AnyOf {
			if current == candidate {
				return true
			}
		}
		return false
	}
	return true
}
