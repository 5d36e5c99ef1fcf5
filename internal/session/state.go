// Package session holds the shopper-facing state container: identity, active
// role, language, theme, cart and wishlist.
package session

import (
	"encoding/json"

	"storefront/internal/codec"
	"storefront/pkg/domain"
)

// SlotKey is the persistence slot the session snapshot is saved under.
const SlotKey = "storefront.session"

// State is an immutable session snapshot.
type State struct {
	User        *domain.User      `json:"user"`
	CurrentRole domain.Role       `json:"currentRole"`
	Language    domain.Language   `json:"language"`
	Theme       domain.Theme      `json:"theme"`
	Cart        []domain.CartItem `json:"cart"`
	Wishlist    []string          `json:"wishlist"`
}

// DefaultState is the state of a first visit: anonymous guest, English, light theme.
func DefaultState() State {
	return State{
		CurrentRole: domain.RoleGuest,
		Language:    domain.LanguageEnglish,
		Theme:       domain.ThemeLight,
		Cart:        []domain.CartItem{},
		Wishlist:    []string{},
	}
}

// IsRTL is derived from Language on every read.
func (s State) IsRTL() bool { return s.Language.IsRTL() }

// Clone implements core.State.
func (s State) Clone() State {
	cp := s
	if s.User != nil {
		u := s.User.Clone()
		cp.User = &u
	}
	cp.Cart = append([]domain.CartItem{}, s.Cart...)
	cp.Wishlist = append([]string{}, s.Wishlist...)
	return cp
}

// MergeJSON implements codec.Mergeable. Stored fields replace defaults one by
// one; enum values outside their closed set keep the default.
func (s State) MergeJSON(fields map[string]json.RawMessage) (State, error) {
	out := s.Clone()
	var (
		role     = string(out.CurrentRole)
		language = string(out.Language)
		theme    = string(out.Theme)
	)
	if err := codec.MergeField(fields, "user", &out.User); err != nil {
		return s, err
	}
	if err := codec.MergeField(fields, "currentRole", &role); err != nil {
		return s, err
	}
	if err := codec.MergeField(fields, "language", &language); err != nil {
		return s, err
	}
	if err := codec.MergeField(fields, "theme", &theme); err != nil {
		return s, err
	}
	if err := codec.MergeField(fields, "cart", &out.Cart); err != nil {
		return s, err
	}
	if err := codec.MergeField(fields, "wishlist", &out.Wishlist); err != nil {
		return s, err
	}
	if r, ok := domain.ParseRole(role); ok {
		out.CurrentRole = r
	}
	if l, ok := domain.ParseLanguage(language); ok {
		out.Language = l
	}
	if t, ok := domain.ParseTheme(theme); ok {
		out.Theme = t
	}
	return out, nil
}
