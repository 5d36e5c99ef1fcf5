package session

import (
	"storefront/internal/core"
	"storefront/pkg/domain"
)

// Reduce is the session reducer. Unknown actions and invalid enum payloads
// return the state unchanged.
func Reduce(state State, action core.Action) State {
	switch a := action.(type) {
	case SetUser:
		if a.User == nil {
			state.User = nil
			return state
		}
		u := a.User.Clone()
		state.User = &u
	case SetRole:
		if a.Role.Valid() {
			state.CurrentRole = a.Role
		}
	case SetLanguage:
		if a.Language.Valid() {
			state.Language = a.Language
		}
	case SetTheme:
		if a.Theme.Valid() {
			state.Theme = a.Theme
		}
	case AddToCart:
		state.Cart = addToCart(state.Cart, a.Item, a.Quantity)
	case RemoveFromCart:
		state.Cart = removeFromCart(state.Cart, a.ID)
	case UpdateCartQuantity:
		if a.Quantity <= 0 {
			state.Cart = removeFromCart(state.Cart, a.ID)
			return state
		}
		state.Cart = setQuantity(state.Cart, a.ID, a.Quantity)
	case ClearCart:
		state.Cart = []domain.CartItem{}
	case AddToWishlist:
		state.Wishlist = append(append([]string{}, state.Wishlist...), a.ID)
	case RemoveFromWishlist:
		state.Wishlist = removeString(state.Wishlist, a.ID)
	}
	return state
}

func addToCart(cart []domain.CartItem, item domain.CartItem, qty int) []domain.CartItem {
	if qty <= 0 {
		qty = 1
	}
	out := make([]domain.CartItem, 0, len(cart)+1)
	merged := false
	for _, line := range cart {
		if line.ID == item.ID && !merged {
			line.Quantity += qty
			merged = true
		}
		out = append(out, line)
	}
	if !merged {
		item.Quantity = qty
		out = append(out, item)
	}
	return out
}

func removeFromCart(cart []domain.CartItem, id string) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(cart))
	for _, line := range cart {
		if line.ID != id {
			out = append(out, line)
		}
	}
	return out
}

func setQuantity(cart []domain.CartItem, id string, qty int) []domain.CartItem {
	out := make([]domain.CartItem, len(cart))
	for i, line := range cart {
		if line.ID == id {
			line.Quantity = qty
		}
		out[i] = line
	}
	return out
}

func removeString(values []string, id string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
