package admin

import (
	"storefront/internal/core"
	"storefront/pkg/domain"
)

// Reduce is the admin reducer. Unknown actions return the state unchanged.
func Reduce(state State, action core.Action) State {
	switch a := action.(type) {
	case UpdateProductApproval:
		state.ProductApprovals = updateByID(state.ProductApprovals, a.ID,
			func(e domain.ProductApproval) string { return e.ID }, a.Patch.Apply)
	case UpdateBrandRequest:
		state.BrandRequests = updateByID(state.BrandRequests, a.ID,
			func(e domain.BrandRequest) string { return e.ID }, a.Patch.Apply)
	case UpdateOrder:
		state.Orders = updateByID(state.Orders, a.ID,
			func(e domain.Order) string { return e.ID }, a.Patch.Apply)
	case UpdateReturn:
		state.Returns = updateByID(state.Returns, a.ID,
			func(e domain.ReturnRequest) string { return e.ID }, a.Patch.Apply)
	case UpdateSeller:
		state.Sellers = updateByID(state.Sellers, a.ID,
			func(e domain.Seller) string { return e.ID }, a.Patch.Apply)
	case UpdateUser:
		state.Users = updateByID(state.Users, a.ID,
			func(e domain.AdminUser) string { return e.ID }, a.Patch.Apply)
	case UpdatePayout:
		state.Payouts = updateByID(state.Payouts, a.ID,
			func(e domain.Payout) string { return e.ID }, a.Patch.Apply)
	case UpdateCMSSlot:
		state.CMSSlots = updateByID(state.CMSSlots, a.ID,
			func(e domain.CMSSlot) string { return e.ID }, a.Patch.Apply)
	case UpdatePromotion:
		state.Promotions = updateByID(state.Promotions, a.ID,
			func(e domain.Promotion) string { return e.ID }, a.Patch.Apply)
	case UpdateArticle:
		state.Articles = updateByID(state.Articles, a.ID,
			func(e domain.Article) string { return e.ID }, a.Patch.Apply)
	case AppendAuditLog:
		logs := make([]domain.AuditLog, 0, len(state.AuditLogs)+1)
		state.AuditLogs = append(append(logs, a.Entry), state.AuditLogs...)
	case AddCategory:
		if a.ID == "" || containsCategory(state.Categories, a.ID) {
			return state
		}
		node := domain.CategoryNode{ID: a.ID, Name: a.Name}
		if a.ParentID == "" {
			state.Categories = append(domain.CloneCategories(state.Categories), node)
			return state
		}
		if next, ok := attachChild(state.Categories, a.ParentID, node); ok {
			state.Categories = next
		}
	case RenameCategory:
		if next, ok := renameNode(state.Categories, a.ID, a.Name); ok {
			state.Categories = next
		}
	case DeleteCategory:
		if next, ok := removeNode(state.Categories, a.ID); ok {
			state.Categories = next
		}
	case SetDateRange:
		if !a.Range.Valid() {
			return state
		}
		state.DateRange = a.Range
		state.Trend = Trend(a.Range)
		state.KPIs = KPIs(state, state.Trend)
	case Reset:
		return DefaultState()
	}
	return state
}

// updateByID returns items with every entry whose id matches replaced by
// apply(entry). When nothing matches the input slice is returned as is.
func updateByID[E any](items []E, id string, idOf func(E) string, apply func(E) E) []E {
	var out []E
	for i, item := range items {
		if idOf(item) != id {
			continue
		}
		if out == nil {
			out = append(make([]E, 0, len(items)), items...)
		}
		out[i] = apply(item)
	}
	if out == nil {
		return items
	}
	return out
}
