package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubGenerator struct {
	text        string
	suggestions []string
	err         error
}

func (s *stubGenerator) GenerateQuestion(context.Context, *entity.GenerateQuestionRequest) (string, error) {
	return s.text, s.err
}

func (s *stubGenerator) GenerateSuggestions(context.Context, *entity.GenerateSuggestionsRequest) ([]string, error) {
	return s.suggestions, s.err
}

func (s *stubGenerator) GenerateAnswer(context.Context, *entity.GenerateAnswerRequest) (string, error) {
	return s.text, s.err
}

var testField = entity.FieldDefinition{
	ID:          "current_state",
	DisplayName: "État actuel",
	Type:        entity.FieldTypeText,
	Prompt:      "Dans quel état se trouve la surface actuellement ?",
	Examples:    []string{"Murs neufs à peindre", "Ancienne peinture écaillée"},
}

func newTestResponder(stub *stubGenerator) *Responder {
	return NewResponder(stub, time.Second, 200, zap.NewNop())
}

// slowGenerator honors context cancellation but never answers in time.
type slowGenerator struct {
	delay time.Duration
}

func (s *slowGenerator) GenerateQuestion(ctx context.Context, _ *entity.GenerateQuestionRequest) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay):
		return "trop tard", nil
	}
}

func (s *slowGenerator) GenerateSuggestions(ctx context.Context, _ *entity.GenerateSuggestionsRequest) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
		return []string{"trop tard"}, nil
	}
}

func (s *slowGenerator) GenerateAnswer(ctx context.Context, _ *entity.GenerateAnswerRequest) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay):
		return "trop tard", nil
	}
}

func TestQuestion_SlowCollaboratorFallsBackWithinTimeout(t *testing.T) {
	r := NewResponder(&slowGenerator{delay: 10 * time.Second}, 50*time.Millisecond, 200, zap.NewNop())

	start := time.Now()
	result := r.Question(context.Background(), testField, nil, "")

	assert.Equal(t, testField.Prompt, result.Text)
	assert.True(t, result.Fallback)
	assert.Less(t, time.Since(start), time.Second, "call must be bounded by the configured timeout")
}

func TestQuestion_GeneratedText(t *testing.T) {
	r := newTestResponder(&stubGenerator{text: "Parlez-moi de l'état de vos murs ?"})

	result := r.Question(context.Background(), testField, nil, "")

	assert.Equal(t, "Parlez-moi de l'état de vos murs ?", result.Text)
	assert.False(t, result.Fallback)
}

func TestQuestion_FallbackOnError(t *testing.T) {
	r := newTestResponder(&stubGenerator{err: errors.New("timeout")})

	result := r.Question(context.Background(), testField, nil, "")

	assert.Equal(t, testField.Prompt, result.Text)
	assert.True(t, result.Fallback)
}

func TestQuestion_FallbackOnEmptyText(t *testing.T) {
	r := newTestResponder(&stubGenerator{text: "   "})

	result := r.Question(context.Background(), testField, nil, "")

	assert.Equal(t, testField.Prompt, result.Text)
	assert.True(t, result.Fallback)
}

func TestQuestion_FallbackOnOversizedText(t *testing.T) {
	r := newTestResponder(&stubGenerator{text: strings.Repeat("a", 500)})

	result := r.Question(context.Background(), testField, nil, "")

	assert.Equal(t, testField.Prompt, result.Text)
	assert.True(t, result.Fallback)
}

func TestQuestion_FallbackAcknowledgesStoredValue(t *testing.T) {
	r := newTestResponder(&stubGenerator{err: errors.New("down")})

	result := r.Question(context.Background(), testField, nil, "25")

	assert.Equal(t, "C'est noté. "+testField.Prompt, result.Text)
}

func TestSuggestions_Generated(t *testing.T) {
	r := newTestResponder(&stubGenerator{
		suggestions: []string{"Option A", "Option B", "Option C", "Option D"},
	})

	result := r.Suggestions(context.Background(), testField, nil)

	assert.Equal(t, []string{"Option A", "Option B", "Option C"}, result.Suggestions)
	assert.Contains(t, result.Text, "1. Option A")
	assert.Contains(t, result.Text, "3. Option C")
	assert.False(t, result.Fallback)
}

func TestSuggestions_FallbackToCatalogExamples(t *testing.T) {
	r := newTestResponder(&stubGenerator{err: errors.New("down")})

	result := r.Suggestions(context.Background(), testField, nil)

	assert.Equal(t, testField.Examples, result.Suggestions)
	assert.True(t, result.Fallback)
}

func TestSuggestions_FallbackToOptionsWhenNoExamples(t *testing.T) {
	def := entity.FieldDefinition{
		ID:      "room_type",
		Type:    entity.FieldTypeSelect,
		Prompt:  "Quelle pièce ?",
		Options: []string{"cuisine", "salon", "chambre", "salle de bain"},
	}
	r := newTestResponder(&stubGenerator{suggestions: nil})

	result := r.Suggestions(context.Background(), def, nil)

	assert.Equal(t, []string{"cuisine", "salon", "chambre"}, result.Suggestions)
	assert.True(t, result.Fallback)
}

func TestAnswer_FallbackMentionsPrompt(t *testing.T) {
	r := newTestResponder(&stubGenerator{err: errors.New("down")})

	result := r.Answer(context.Background(), testField, "pourquoi cette question ?", nil)

	assert.Contains(t, result.Text, testField.Prompt)
	assert.True(t, result.Fallback)
}
