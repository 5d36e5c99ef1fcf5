package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"storefront/internal/admin"
	"storefront/internal/core"
	"storefront/pkg/domain"
)

// statusSetters builds the update action that moves one entity to a status.
var statusSetters = map[string]struct {
	allowed []string
	exists  func(s admin.State, id string) bool
	action  func(id, status string) core.Action
}{
	"approval": {
		allowed: []string{"pending", "approved", "rejected"},
		exists:  func(s admin.State, id string) bool { return hasID(s.ProductApprovals, id, func(v domain.ProductApproval) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.ApprovalStatus(status)
			return admin.UpdateProductApproval{ID: id, Patch: domain.ProductApprovalPatch{Status: &s}}
		},
	},
	"brand": {
		allowed: []string{"pending", "approved", "rejected"},
		exists:  func(s admin.State, id string) bool { return hasID(s.BrandRequests, id, func(v domain.BrandRequest) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.ApprovalStatus(status)
			return admin.UpdateBrandRequest{ID: id, Patch: domain.BrandRequestPatch{Status: &s}}
		},
	},
	"order": {
		allowed: []string{"pending", "confirmed", "shipped", "delivered", "cancelled", "returned"},
		exists:  func(s admin.State, id string) bool { return hasID(s.Orders, id, func(v domain.Order) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.OrderStatus(status)
			return admin.UpdateOrder{ID: id, Patch: domain.OrderPatch{Status: &s}}
		},
	},
	"return": {
		allowed: []string{"pending", "approved", "rejected", "refunded"},
		exists:  func(s admin.State, id string) bool { return hasID(s.Returns, id, func(v domain.ReturnRequest) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.ReturnStatus(status)
			return admin.UpdateReturn{ID: id, Patch: domain.ReturnRequestPatch{Status: &s}}
		},
	},
	"seller": {
		allowed: []string{"active", "pending", "suspended"},
		exists:  func(s admin.State, id string) bool { return hasID(s.Sellers, id, func(v domain.Seller) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.SellerStatus(status)
			return admin.UpdateSeller{ID: id, Patch: domain.SellerPatch{Status: &s}}
		},
	},
	"user": {
		allowed: []string{"active", "banned"},
		exists:  func(s admin.State, id string) bool { return hasID(s.Users, id, func(v domain.AdminUser) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.UserStatus(status)
			return admin.UpdateUser{ID: id, Patch: domain.AdminUserPatch{Status: &s}}
		},
	},
	"payout": {
		allowed: []string{"pending", "processing", "paid", "failed"},
		exists:  func(s admin.State, id string) bool { return hasID(s.Payouts, id, func(v domain.Payout) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.PayoutStatus(status)
			return admin.UpdatePayout{ID: id, Patch: domain.PayoutPatch{Status: &s}}
		},
	},
	"article": {
		allowed: []string{"draft", "published", "archived"},
		exists:  func(s admin.State, id string) bool { return hasID(s.Articles, id, func(v domain.Article) string { return v.ID }) },
		action: func(id, status string) core.Action {
			s := domain.ArticleStatus(status)
			return admin.UpdateArticle{ID: id, Patch: domain.ArticlePatch{Status: &s}}
		},
	},
}

func statusEntities() []string {
	names := make([]string, 0, len(statusSetters))
	for name := range statusSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasID[T any](items []T, id string, key func(T) string) bool {
	for _, item := range items {
		if key(item) == id {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func adminRun(a *app, fn func(cmd *cobra.Command, store *admin.Store, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := a.adminStore(cmd.Context())
		if err != nil {
			return err
		}
		var out any
		if fn != nil {
			if out, err = fn(cmd, store, args); err != nil {
				return err
			}
		}
		if out == nil {
			out = store.Snapshot()
		}
		return a.print(out)
	}
}

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "admin", Short: "Admin console entities and dashboard"}

	var section string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the admin snapshot",
		Args:  cobra.NoArgs,
		RunE: adminRun(a, func(_ *cobra.Command, store *admin.Store, _ []string) (any, error) {
			snap := store.Snapshot()
			switch section {
			case "":
				return snap, nil
			case "dashboard":
				return struct {
					DateRange domain.DateRange    `json:"dateRange"`
					KPIs      domain.KPISnapshot  `json:"kpis"`
					Trend     []domain.TrendPoint `json:"trend"`
				}{snap.DateRange, snap.KPIs, snap.Trend}, nil
			case "categories":
				return snap.Categories, nil
			case "audit":
				return snap.AuditLogs, nil
			default:
				return nil, fmt.Errorf("unknown section %q (dashboard, categories, audit)", section)
			}
		}),
	}
	show.Flags().StringVar(&section, "section", "", "print only dashboard, categories or audit")

	dateRange := &cobra.Command{
		Use:   "range <7d|30d>",
		Short: "Select the dashboard date range",
		Args:  cobra.ExactArgs(1),
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, args []string) (any, error) {
			if !store.SetDateRange(cmd.Context(), domain.DateRange(args[0])) {
				return nil, fmt.Errorf("unsupported date range %q", args[0])
			}
			snap := store.Snapshot()
			return struct {
				DateRange domain.DateRange   `json:"dateRange"`
				KPIs      domain.KPISnapshot `json:"kpis"`
			}{snap.DateRange, snap.KPIs}, nil
		}),
	}

	var actor string
	status := &cobra.Command{
		Use:   "status <entity> <id> <status>",
		Short: "Move an entity to a new status and audit the change",
		Long:  "Entities: " + strings.Join(statusEntities(), ", "),
		Args:  cobra.ExactArgs(3),
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, args []string) (any, error) {
			setter, ok := statusSetters[args[0]]
			if !ok {
				return nil, fmt.Errorf("unknown entity %q (%s)", args[0], strings.Join(statusEntities(), ", "))
			}
			if !contains(setter.allowed, args[2]) {
				return nil, fmt.Errorf("invalid %s status %q (%s)", args[0], args[2], strings.Join(setter.allowed, ", "))
			}
			if !setter.exists(store.Snapshot(), args[1]) {
				return nil, fmt.Errorf("%s %q not found", args[0], args[1])
			}
			store.Dispatch(cmd.Context(), setter.action(args[1], args[2]))
			store.RecordAudit(cmd.Context(), actor, args[0]+"."+args[2], args[1])
			return nil, nil
		}),
	}
	status.Flags().StringVar(&actor, "actor", "admin", "audit log actor")

	audit := &cobra.Command{
		Use:   "audit <action> <target>",
		Short: "Append an audit log entry",
		Args:  cobra.ExactArgs(2),
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, args []string) (any, error) {
			return store.RecordAudit(cmd.Context(), actor, args[0], args[1]), nil
		}),
	}
	audit.Flags().StringVar(&actor, "actor", "admin", "audit log actor")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the seeded admin dataset",
		Args:  cobra.NoArgs,
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, _ []string) (any, error) {
			store.Dispatch(cmd.Context(), admin.Reset{})
			return nil, nil
		}),
	}

	cmd.AddCommand(show, dateRange, status, audit, reset, newCategoryCmd(a))
	return cmd
}

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "category", Short: "Edit the category tree"}

	var parent string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category at top level or under --parent",
		Args:  cobra.ExactArgs(1),
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, args []string) (any, error) {
			id := store.AddCategory(cmd.Context(), args[0], parent)
			if id == "" {
				return nil, fmt.Errorf("parent category %q not found", parent)
			}
			node, _ := admin.FindCategory(store.Snapshot().Categories, id)
			return node, nil
		}),
	}
	add.Flags().StringVar(&parent, "parent", "", "parent category id")

	rename := &cobra.Command{
		Use:  "rename <id> <name>",
		Args: cobra.ExactArgs(2),
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, args []string) (any, error) {
			if _, ok := admin.FindCategory(store.Snapshot().Categories, args[0]); !ok {
				return nil, fmt.Errorf("category %q not found", args[0])
			}
			store.Dispatch(cmd.Context(), admin.RenameCategory{ID: args[0], Name: args[1]})
			return store.Snapshot().Categories, nil
		}),
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and its subtree",
		Args:  cobra.ExactArgs(1),
		RunE: adminRun(a, func(cmd *cobra.Command, store *admin.Store, args []string) (any, error) {
			store.Dispatch(cmd.Context(), admin.DeleteCategory{ID: args[0]})
			return store.Snapshot().Categories, nil
		}),
	}

	cmd.AddCommand(add, rename, remove)
	return cmd
}
