package dialogue

import (
	"sync"

	"github.com/ouvrio/intake-backend/internal/catalog"
	"github.com/ouvrio/intake-backend/internal/entity"
)

// draftLocks serializes turns per dialogue: one user turn is fully
// resolved before the next is accepted. Sessions stay independent.
// Entries are reference counted and removed when the last holder
// releases, so two turns for the same id can never hold two different
// mutexes.
type draftLocks struct {
	mu    sync.Mutex
	locks map[string]*draftLock
}

type draftLock struct {
	sync.Mutex
	refs int
}

func newDraftLocks() *draftLocks {
	return &draftLocks{locks: make(map[string]*draftLock)}
}

func (l *draftLocks) lock(id string) *draftLock {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &draftLock{}
		l.locks[id] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return m
}

func (l *draftLocks) unlock(id string, m *draftLock) {
	m.Unlock()

	l.mu.Lock()
	m.refs--
	if m.refs == 0 {
		delete(l.locks, id)
	}
	l.mu.Unlock()
}

// draftSummary condenses collected values for the generation
// collaborator, in resolver order so the phrasing stays stable.
func draftSummary(cat *catalog.Catalog, draft *entity.Draft) []entity.CollectedField {
	var summary []entity.CollectedField
	for _, fieldID := range cat.Resolve(draft.Category) {
		value, ok := draft.Value(fieldID)
		if !ok {
			continue
		}
		name := fieldID
		if def, found := cat.Field(fieldID); found {
			name = def.DisplayName
		}
		summary = append(summary, entity.CollectedField{Field: name, Value: value})
	}
	return summary
}

// openFieldDescription is the short textual context the classifier gets
// about the question currently on the table.
func openFieldDescription(cat *catalog.Catalog, fieldID string) string {
	if fieldID == "" {
		return ""
	}
	def, ok := cat.Field(fieldID)
	if !ok {
		return fieldID
	}
	return def.DisplayName + " : " + def.Prompt
}
