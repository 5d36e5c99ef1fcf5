package session

import (
	"context"

	"storefront/internal/core"
	"storefront/pkg/domain"
)

// Store is the session container. Construct one per application (or per test)
// and pass it to consumers; there is no package-level instance.
type Store struct {
	*core.Store[State]
}

// NewStore hydrates a session store from the configured slot, falling back to
// DefaultState.
func NewStore(ctx context.Context, opts ...core.Option) *Store {
	return &Store{Store: core.NewStore(ctx, DefaultState(), Reduce, opts...)}
}

// Login signs user in and switches the active role to the user's role.
func (s *Store) Login(ctx context.Context, user domain.User) {
	s.Dispatch(ctx, SetUser{User: &user})
	s.Dispatch(ctx, SetRole{Role: user.Role})
	s.Logger().Info("user signed in", "user", user.ID, "role", user.Role)
}

// Logout clears the user and the cart and returns to the guest role. The
// wishlist is kept.
func (s *Store) Logout(ctx context.Context) {
	s.Dispatch(ctx, SetUser{User: nil})
	s.Dispatch(ctx, SetRole{Role: domain.RoleGuest})
	s.Dispatch(ctx, ClearCart{})
	s.Logger().Info("user signed out")
}

// ApplyRoleOverride applies a role forced from outside (for example a query
// parameter) through the ordinary SetRole dispatch. Values outside the role
// set are dropped and reported as false.
func (s *Store) ApplyRoleOverride(ctx context.Context, raw string) bool {
	role, ok := domain.ParseRole(raw)
	if !ok {
		s.Logger().Debug("ignoring role override", "value", raw)
		return false
	}
	s.Dispatch(ctx, SetRole{Role: role})
	return true
}

// Total is the cart total of the current snapshot.
func (s *Store) Total() float64 { return Total(s.Snapshot()) }

// ItemCount is the cart item count of the current snapshot.
func (s *Store) ItemCount() int { return ItemCount(s.Snapshot()) }

// IsInWishlist tests wishlist membership in the current snapshot.
func (s *Store) IsInWishlist(id string) bool { return IsInWishlist(s.Snapshot(), id) }
