package admin

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/core"
	"storefront/pkg/domain"
)

// Store is the admin container.
type Store struct {
	*core.Store[State]
}

// NewStore hydrates an admin store from the configured slot, falling back to
// DefaultState.
func NewStore(ctx context.Context, opts ...core.Option) *Store {
	return &Store{Store: core.NewStore(ctx, DefaultState(), Reduce, opts...)}
}

// AddCategory inserts a category with a generated id and returns that id.
// It returns "" when parentID names no existing node.
func (s *Store) AddCategory(ctx context.Context, name, parentID string) string {
	if parentID != "" {
		if _, ok := FindCategory(s.Snapshot().Categories, parentID); !ok {
			s.Logger().Warn("category parent not found", "parent", parentID)
			return ""
		}
	}
	id := uuid.NewString()
	s.Dispatch(ctx, AddCategory{ID: id, Name: name, ParentID: parentID})
	return id
}

// RecordAudit appends an audit entry stamped with the store clock.
func (s *Store) RecordAudit(ctx context.Context, actor, action, target string) domain.AuditLog {
	entry := domain.AuditLog{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Target:    target,
		Timestamp: s.Clock().Now(),
	}
	s.Dispatch(ctx, AppendAuditLog{Entry: entry})
	return entry
}

// SetDateRange selects r and reports whether it was accepted.
func (s *Store) SetDateRange(ctx context.Context, r domain.DateRange) bool {
	if !r.Valid() {
		s.Logger().Debug("ignoring date range", "range", r)
		return false
	}
	s.Dispatch(ctx, SetDateRange{Range: r})
	return true
}
