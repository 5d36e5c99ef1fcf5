package session

import "storefront/pkg/domain"

// Action kinds.
const (
	KindSetUser            = "SET_USER"
	KindSetRole            = "SET_ROLE"
	KindSetLanguage        = "SET_LANGUAGE"
	KindSetTheme           = "SET_THEME"
	KindAddToCart          = "ADD_TO_CART"
	KindRemoveFromCart     = "REMOVE_FROM_CART"
	KindUpdateCartQuantity = "UPDATE_CART_QUANTITY"
	KindClearCart          = "CLEAR_CART"
	KindAddToWishlist      = "ADD_TO_WISHLIST"
	KindRemoveFromWishlist = "REMOVE_FROM_WISHLIST"
)

// SetUser replaces the signed-in user. A nil User signs out.
type SetUser struct{ User *domain.User }

// SetRole replaces the active role without touching the user.
type SetRole struct{ Role domain.Role }

// SetLanguage replaces the UI language.
type SetLanguage struct{ Language domain.Language }

// SetTheme replaces the colour scheme.
type SetTheme struct{ Theme domain.Theme }

// AddToCart merges Item into the cart. Quantity defaults to 1.
type AddToCart struct {
	Item     domain.CartItem
	Quantity int
}

// RemoveFromCart drops every line with ID.
type RemoveFromCart struct{ ID string }

// UpdateCartQuantity sets the quantity of line ID; a quantity of 0 or less removes it.
type UpdateCartQuantity struct {
	ID       string
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

// AddToWishlist appends ID to the wishlist.
type AddToWishlist struct{ ID string }

// RemoveFromWishlist removes every occurrence of ID.
type RemoveFromWishlist struct{ ID string }

func (SetUser) Kind() string            { return KindSetUser }
func (SetRole) Kind() string            { return KindSetRole }
func (SetLanguage) Kind() string        { return KindSetLanguage }
func (SetTheme) Kind() string           { return KindSetTheme }
func (AddToCart) Kind() string          { return KindAddToCart }
func (RemoveFromCart) Kind() string     { return KindRemoveFromCart }
func (UpdateCartQuantity) Kind() string { return KindUpdateCartQuantity }
func (ClearCart) Kind() string          { return KindClearCart }
func (AddToWishlist) Kind() string      { return KindAddToWishlist }
func (RemoveFromWishlist) Kind() string { return KindRemoveFromWishlist }
