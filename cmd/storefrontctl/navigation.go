package main

import (
	"github.com/spf13/cobra"

	"storefront/internal/navigation"
	"storefront/pkg/domain"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [role]",
		Short: "Print the navigation menu for a role (defaults to the session role)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.print(navigation.MenuForRole(domain.Role(args[0])))
			}
			store, err := a.sessionStore(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(navigation.MenuForRole(store.Snapshot().CurrentRole))
		},
	}
}

func newBreadcrumbsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "breadcrumbs <path>",
		Short: "Print the breadcrumb trail of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.print(navigation.Breadcrumbs(args[0]))
		},
	}
}
