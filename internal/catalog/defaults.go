package catalog

import (
	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

func f64(v float64) *float64 { return &v }

// defaultFields is the embedded field catalog used when no catalog file
// is configured. Prompts double as the deterministic fallback questions
// shown when the text-generation collaborator is unavailable.
var defaultFields = []entity.FieldDefinition{
	{
		ID:          entity.FieldProjectCategory,
		DisplayName: "Catégorie du projet",
		Type:        entity.FieldTypeSelect,
		Required:    true,
		Prompt:      "Quelle est la catégorie de votre projet ?",
		Options: []string{
			"Peinture", "Plomberie", "Électricité", "Jardinage",
			"Ménage", "Menuiserie", "Autre",
		},
	},
	{
		ID:          entity.FieldServiceType,
		DisplayName: "Type de prestation",
		Type:        entity.FieldTypeText,
		Required:    true,
		Prompt:      "Quel type de prestation recherchez-vous exactement ?",
		Examples:    []string{"Rénovation complète", "Réparation ponctuelle", "Entretien régulier"},
	},
	{
		ID:          entity.FieldProjectDescription,
		DisplayName: "Description du projet",
		Type:        entity.FieldTypeText,
		Required:    true,
		Prompt:      "Décrivez votre projet en quelques phrases.",
		Validation:  &entity.Validation{MinLen: 10, MaxLen: 2000},
	},
	{
		ID:          entity.FieldPhotosUploaded,
		DisplayName: "Photos",
		Type:        entity.FieldTypePhotos,
		Required:    true,
		Prompt:      "Avez-vous ajouté des photos pour illustrer votre projet ?",
	},
	{
		ID:          entity.FieldProjectLocation,
		DisplayName: "Lieu du projet",
		Type:        entity.FieldTypeLocation,
		Required:    true,
		Prompt:      "Où le projet doit-il être réalisé (ville ou code postal) ?",
	},

	// Peinture
	{
		ID:          "surface_area",
		DisplayName: "Surface à traiter",
		Type:        entity.FieldTypeNumber,
		Required:    true,
		Prompt:      "Quelle est la surface concernée, en mètres carrés ?",
		Validation:  &entity.Validation{Min: f64(1), Max: f64(10000)},
	},
	{
		ID:          "room_type",
		DisplayName: "Type de pièce",
		Type:        entity.FieldTypeSelect,
		Required:    true,
		Prompt:      "Quelle pièce est concernée par les travaux ?",
		Options:     []string{"cuisine", "salon", "chambre", "salle de bain", "extérieur", "autre"},
		AppliesIf: &entity.Condition{
			Field: entity.FieldProjectCategory,
			AnyOf: []string{"Peinture", "Ménage"},
		},
	},
	{
		ID:          "current_state",
		DisplayName: "État actuel",
		Type:        entity.FieldTypeText,
		Required:    true,
		Prompt:      "Dans quel état se trouve la surface actuellement ?",
		Examples:    []string{"Murs neufs à peindre", "Ancienne peinture écaillée", "Papier peint à retirer"},
	},
	{
		ID:          "materials_preferences",
		DisplayName: "Préférences de matériaux",
		Type:        entity.FieldTypeText,
		Required:    true,
		Prompt:      "Avez-vous des préférences de peinture ou de matériaux ?",
		Examples: []string{
			"Peinture acrylique mate",
			"Peinture glycéro satinée",
			"Peinture biosourcée",
		},
		DependsOn: "current_state",
	},

	// Plomberie
	{
		ID:          "urgency_level",
		DisplayName: "Niveau d'urgence",
		Type:        entity.FieldTypeSelect,
		Required:    true,
		Prompt:      "Quelle est l'urgence de l'intervention ?",
		Options:     []string{"immédiate", "cette semaine", "flexible"},
	},
	{
		ID:          "issue_location",
		DisplayName: "Localisation du problème",
		Type:        entity.FieldTypeText,
		Required:    true,
		Prompt:      "Où se situe le problème dans le logement ?",
		Examples:    []string{"Fuite sous l'évier de la cuisine", "Chauffe-eau de la salle de bain"},
	},

	// Électricité
	{
		ID:          "installation_age",
		DisplayName: "Âge de l'installation",
		Type:        entity.FieldTypeNumber,
		Required:    true,
		Prompt:      "Quel âge a l'installation électrique, en années ?",
		Validation:  &entity.Validation{Min: f64(0), Max: f64(150)},
	},
	{
		ID:          "compliance_check_needed",
		DisplayName: "Mise aux normes",
		Type:        entity.FieldTypeBoolean,
		Required:    true,
		Prompt:      "Souhaitez-vous un contrôle de conformité aux normes ?",
	},

	// Jardinage
	{
		ID:          "garden_area",
		DisplayName: "Surface du jardin",
		Type:        entity.FieldTypeNumber,
		Required:    true,
		Prompt:      "Quelle est la surface du jardin, en mètres carrés ?",
		Validation:  &entity.Validation{Min: f64(1), Max: f64(100000)},
	},
	{
		ID:          "equipment_available",
		DisplayName: "Matériel disponible",
		Type:        entity.FieldTypeBoolean,
		Required:    true,
		Prompt:      "Disposez-vous du matériel de jardinage sur place ?",
		DependsOn:   "garden_area",
	},

	// Ménage
	{
		ID:          "frequency",
		DisplayName: "Fréquence",
		Type:        entity.FieldTypeSelect,
		Required:    true,
		Prompt:      "À quelle fréquence souhaitez-vous la prestation ?",
		Options:     []string{"ponctuel", "hebdomadaire", "bimensuel", "mensuel"},
	},

	// Menuiserie
	{
		ID:          "wood_type",
		DisplayName: "Essence de bois",
		Type:        entity.FieldTypeText,
		Required:    true,
		Prompt:      "Quelle essence de bois souhaitez-vous utiliser ?",
		Examples:    []string{"Chêne massif", "Pin", "Hêtre"},
	},
	{
		ID:          "measurements_taken",
		DisplayName: "Prise de mesures",
		Type:        entity.FieldTypeBoolean,
		Required:    true,
		Prompt:      "Avez-vous déjà pris les mesures exactes ?",
	},
}

// defaultCategories maps each category to its ordered extra fields.
// Categories absent from this map resolve to no extras; this is a
// deliberate, visible no-op rather than an error.
var defaultCategories = map[string][]string{
	"Peinture":    {"surface_area", "room_type", "current_state", "materials_preferences"},
	"Plomberie":   {"urgency_level", "issue_location"},
	"Électricité": {"installation_age", "compliance_check_needed"},
	"Jardinage":   {"garden_area", "equipment_available"},
	"Ménage":      {"surface_area", "room_type", "frequency"},
	"Menuiserie":  {"wood_type", "measurements_taken"},
}

// Default returns the embedded catalog.
func Default(logger *zap.Logger) (*Catalog, error) {
	return New(defaultFields, defaultCategories, logger)
}
