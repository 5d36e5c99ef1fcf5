package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"storefront/internal/session"
	"storefront/pkg/domain"
)

type sessionView struct {
	Session   session.State `json:"session"`
	IsRTL     bool          `json:"isRTL"`
	Total     float64       `json:"total"`
	ItemCount int           `json:"itemCount"`
}

func viewOf(s session.State) sessionView {
	return sessionView{Session: s, IsRTL: s.IsRTL(), Total: session.Total(s), ItemCount: session.ItemCount(s)}
}

// sessionRun wraps a session mutation and prints the resulting snapshot.
func sessionRun(a *app, fn func(cmd *cobra.Command, store *session.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := a.sessionStore(cmd.Context())
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(cmd, store, args); err != nil {
				return err
			}
		}
		return a.print(viewOf(store.Snapshot()))
	}
}

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "session", Short: "Identity, role, language and theme"}

	show := &cobra.Command{Use: "show", Short: "Print the session snapshot", Args: cobra.NoArgs, RunE: sessionRun(a, nil)}

	var name, email string
	login := &cobra.Command{
		Use:   "login <user-id> <role>",
		Short: "Sign a user in and switch to their role",
		Args:  cobra.ExactArgs(2),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			role, ok := domain.ParseRole(args[1])
			if !ok {
				return fmt.Errorf("unknown role %q", args[1])
			}
			store.Login(cmd.Context(), domain.User{ID: args[0], Name: name, Email: email, Role: role})
			return nil
		}),
	}
	login.Flags().StringVar(&name, "name", "", "display name")
	login.Flags().StringVar(&email, "email", "", "email address")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the cart",
		Args:  cobra.NoArgs,
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, _ []string) error {
			store.Logout(cmd.Context())
			return nil
		}),
	}

	role := &cobra.Command{
		Use:   "role <guest|buyer|seller|admin>",
		Short: "Switch the active role",
		Args:  cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			if !store.ApplyRoleOverride(cmd.Context(), args[0]) {
				return fmt.Errorf("unknown role %q", args[0])
			}
			return nil
		}),
	}

	lang := &cobra.Command{
		Use:   "lang <en|fr|ar>",
		Short: "Switch the UI language",
		Args:  cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			l, ok := domain.ParseLanguage(args[0])
			if !ok {
				return fmt.Errorf("unsupported language %q", args[0])
			}
			store.Dispatch(cmd.Context(), session.SetLanguage{Language: l})
			return nil
		}),
	}

	theme := &cobra.Command{
		Use:   "theme <light|dark>",
		Short: "Switch the colour scheme",
		Args:  cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			t, ok := domain.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unsupported theme %q", args[0])
			}
			store.Dispatch(cmd.Context(), session.SetTheme{Theme: t})
			return nil
		}),
	}

	cmd.AddCommand(show, login, logout, role, lang, theme)
	return cmd
}

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "cart", Short: "Cart line items"}

	var (
		title    string
		price    float64
		quantity int
		image    string
	)
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product, merging with an existing line",
		Args:  cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			if math.IsNaN(price) || math.IsInf(price, 0) {
				return fmt.Errorf("price must be a finite number")
			}
			if price < 0 {
				return fmt.Errorf("price must not be negative")
			}
			store.Dispatch(cmd.Context(), session.AddToCart{
				Item:     domain.CartItem{ID: args[0], Title: title, Price: price, Image: image},
				Quantity: quantity,
			})
			return nil
		}),
	}
	add.Flags().StringVar(&title, "title", "", "product title")
	add.Flags().Float64Var(&price, "price", 0, "unit price")
	add.Flags().IntVar(&quantity, "qty", 1, "quantity to add")
	add.Flags().StringVar(&image, "image", "", "image URL")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			store.Dispatch(cmd.Context(), session.RemoveFromCart{ID: args[0]})
			return nil
		}),
	}

	qty := &cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set a line quantity; 0 removes the line",
		Args:  cobra.ExactArgs(2),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity: %w", err)
			}
			store.Dispatch(cmd.Context(), session.UpdateCartQuantity{ID: args[0], Quantity: n})
			return nil
		}),
	}

	clearCart := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, _ []string) error {
			store.Dispatch(cmd.Context(), session.ClearCart{})
			return nil
		}),
	}

	cmd.AddCommand(add, remove, qty, clearCart)
	return cmd
}

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "wishlist", Short: "Saved products"}
	add := &cobra.Command{
		Use:  "add <product-id>",
		Args: cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			store.Dispatch(cmd.Context(), session.AddToWishlist{ID: args[0]})
			return nil
		}),
	}
	remove := &cobra.Command{
		Use:  "remove <product-id>",
		Args: cobra.ExactArgs(1),
		RunE: sessionRun(a, func(cmd *cobra.Command, store *session.Store, args []string) error {
			store.Dispatch(cmd.Context(), session.RemoveFromWishlist{ID: args[0]})
			return nil
		}),
	}
	cmd.AddCommand(add, remove)
	return cmd
}
