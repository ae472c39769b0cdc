package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

const suggestionCount = 3

// Responder wraps the external generation collaborator with the
// deterministic fallbacks the dialogue depends on: every field can be
// asked about, suggested for, and explained without the collaborator
// being reachable. Generated text is untrusted and length-checked
// before display.
type Responder struct {
	connector TextGenerator
	timeout   time.Duration
	maxLength int
	logger    *zap.Logger
}

func NewResponder(connector TextGenerator, timeout time.Duration, maxLength int, logger *zap.Logger) *Responder {
	return &Responder{
		connector: connector,
		timeout:   timeout,
		maxLength: maxLength,
		logger:    logger,
	}
}

// Question produces the next question to ask for a field. acknowledge
// carries the value just stored when the question should open with a
// short acknowledgment of the previous answer.
func (r *Responder) Question(ctx context.Context, def entity.FieldDefinition, summary []entity.CollectedField, acknowledge string) entity.GenerationResult {
	req := &entity.GenerateQuestionRequest{
		Field:        toFieldContext(def),
		DraftSummary: summary,
		Acknowledge:  acknowledge,
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.connector.GenerateQuestion(callCtx, req)
	if !r.usable(ctx, text, err) {
		fallback := def.Prompt
		if acknowledge != "" {
			fallback = "C'est noté. " + fallback
		}
		return entity.GenerationResult{Text: fallback, Fallback: true}
	}

	return entity.GenerationResult{Text: text}
}

// Suggestions produces 2-3 candidate values for a field the user is
// stuck on. The fallback is the catalog's own examples or options.
func (r *Responder) Suggestions(ctx context.Context, def entity.FieldDefinition, summary []entity.CollectedField) entity.GenerationResult {
	req := &entity.GenerateSuggestionsRequest{
		Field:        toFieldContext(def),
		DraftSummary: summary,
		Count:        suggestionCount,
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	suggestions, err := r.connector.GenerateSuggestions(callCtx, req)
	fallback := err != nil || len(suggestions) == 0 || !r.allUsable(ctx, suggestions)
	if fallback {
		if err != nil {
			ctxzap.Warn(ctx, "suggestion generation failed, using catalog examples", zap.Error(err))
		}
		suggestions = fallbackSuggestions(def)
	}

	if len(suggestions) > suggestionCount {
		suggestions = suggestions[:suggestionCount]
	}

	return entity.GenerationResult{
		Text:        renderSuggestions(def, suggestions),
		Suggestions: suggestions,
		Fallback:    fallback,
	}
}

// Answer responds to a meta-question without consuming a field.
func (r *Responder) Answer(ctx context.Context, def entity.FieldDefinition, question string, summary []entity.CollectedField) entity.GenerationResult {
	req := &entity.GenerateAnswerRequest{
		Field:        toFieldContext(def),
		Question:     question,
		DraftSummary: summary,
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.connector.GenerateAnswer(callCtx, req)
	if !r.usable(ctx, text, err) {
		fallback := fmt.Sprintf(
			"Cette information nous aide à mieux cerner votre projet. %s", def.Prompt,
		)
		return entity.GenerationResult{Text: fallback, Fallback: true}
	}

	return entity.GenerationResult{Text: text}
}

// usable rejects errored, empty, or oversized generations.
func (r *Responder) usable(ctx context.Context, text string, err error) bool {
	if err != nil {
		ctxzap.Warn(ctx, "text generation failed, using fallback prompt", zap.Error(err))
		return false
	}
	if strings.TrimSpace(text) == "" {
		ctxzap.Warn(ctx, "text generation returned empty text, using fallback prompt")
		return false
	}
	if utf8.RuneCountInString(text) > r.maxLength {
		ctxzap.Warn(ctx, "generated text exceeds display limit, using fallback prompt",
			zap.Int("length", utf8.RuneCountInString(text)))
		return false
	}
	return true
}

func (r *Responder) allUsable(ctx context.Context, suggestions []string) bool {
	for _, s := range suggestions {
		if strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) > r.maxLength {
			ctxzap.Warn(ctx, "generated suggestion rejected, using catalog examples")
			return false
		}
	}
	return true
}

func fallbackSuggestions(def entity.FieldDefinition) []string {
	if len(def.Examples) > 0 {
		return def.Examples
	}
	if len(def.Options) > 0 {
		return def.Options
	}
	return []string{def.Prompt}
}

func renderSuggestions(def entity.FieldDefinition, suggestions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Voici quelques pistes pour « %s » :\n", def.DisplayName)
	for i, s := range suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("Est-ce que l'une de ces propositions vous convient ?")
	return b.String()
}

func toFieldContext(def entity.FieldDefinition) entity.FieldContext {
	return entity.FieldContext{
		ID:          def.ID,
		DisplayName: def.DisplayName,
		Prompt:      def.Prompt,
		Examples:    def.Examples,
		Options:     def.Options,
	}
}
