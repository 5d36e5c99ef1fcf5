// Package navigation holds pure projections used by the shells: the
// role-specific menu and the breadcrumb trail of a path.
package navigation

import "storefront/pkg/domain"

// MenuItem is one entry of a role menu.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var menus = map[domain.Role][]MenuItem{
	domain.RoleGuest: {
		{Label: "Home", Path: "/"},
		{Label: "Shop", Path: "/shop"},
		{Label: "Categories", Path: "/categories"},
		{Label: "Sign in", Path: "/login"},
	},
	domain.RoleBuyer: {
		{Label: "Home", Path: "/"},
		{Label: "Shop", Path: "/shop"},
		{Label: "Orders", Path: "/account/orders"},
		{Label: "Wishlist", Path: "/account/wishlist"},
		{Label: "Cart", Path: "/cart"},
		{Label: "Account", Path: "/account"},
	},
	domain.RoleSeller: {
		{Label: "Dashboard", Path: "/seller"},
		{Label: "Products", Path: "/seller/products"},
		{Label: "Orders", Path: "/seller/orders"},
		{Label: "Payouts", Path: "/seller/payouts"},
		{Label: "Store settings", Path: "/seller/settings"},
	},
	domain.RoleAdmin: {
		{Label: "Dashboard", Path: "/admin"},
		{Label: "Approvals", Path: "/admin/approvals"},
		{Label: "Orders", Path: "/admin/orders"},
		{Label: "Returns", Path: "/admin/returns"},
		{Label: "Sellers", Path: "/admin/sellers"},
		{Label: "Users", Path: "/admin/users"},
		{Label: "Payouts", Path: "/admin/payouts"},
		{Label: "Categories", Path: "/admin/categories"},
		{Label: "CMS", Path: "/admin/cms"},
		{Label: "Promotions", Path: "/admin/promotions"},
		{Label: "Audit log", Path: "/admin/audit"},
	},
}

// MenuForRole returns a copy of the menu for role. Unknown roles get the
// guest menu.
func MenuForRole(role domain.Role) []MenuItem {
	items, ok := menus[role]
	if !ok {
		items = menus[domain.RoleGuest]
	}
	return append([]MenuItem(nil), items...)
}
