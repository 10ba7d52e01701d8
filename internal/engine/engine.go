// Package engine is the validation and derived-computation core of the
// lending platform. It owns the per-entity field rules, the email
// uniqueness rule, the expectedCompletionDate derivation and the per-save
// decision of which of those must run. Persistence, transport and process
// lifecycle are collaborators injected through the unit of work.
package engine

import (
	"time"

	"cryptolend-backend/internal/domain/uow"
)

type Engine struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func New(u uow.UnitOfWork) *Engine {
	return &Engine{uow: u, now: time.Now}
}

// ChangeSet names the attributes a caller changed relative to the last
// persisted state. Save decisions are a pure function of the document and
// this set; there is no dirty-tracking inside the engine.
type ChangeSet map[string]struct{}

func NewChangeSet(fields ...string) ChangeSet {
	c := make(ChangeSet, len(fields))
	for _, f := range fields {
		c.Mark(f)
	}
	return c
}

func (c ChangeSet) Mark(field string) { c[field] = struct{}{} }

func (c ChangeSet) Has(field string) bool {
	_, ok := c[field]
	return ok
}
