package session

// Total is the sum of price times quantity over the cart.
func Total(s State) float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities over the cart.
func ItemCount(s State) int {
	var n int
	for _, line := range s.Cart {
		n += line.Quantity
	}
	return n
}

// IsInWishlist reports whether id is saved, however many times it was added.
func IsInWishlist(s State, id string) bool {
	for _, v := range s.Wishlist {
		if v == id {
			return true
		}
	}
	return false
}
