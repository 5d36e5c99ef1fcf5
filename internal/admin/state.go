// Package admin holds the admin console's entity container: moderation
// queues, orders, returns, sellers, users, payouts, CMS content, audit logs,
// the category tree and the dashboard analytics.
package admin

import (
	"encoding/json"

	"storefront/internal/codec"
	"storefront/pkg/domain"
)

// SlotKey is the persistence slot the admin snapshot is saved under.
const SlotKey = "storefront.admin"

// State is an immutable admin snapshot. It is owned independently of the
// session state and is never updated together with it.
type State struct {
	ProductApprovals []domain.ProductApproval `json:"productApprovals"`
	BrandRequests    []domain.BrandRequest    `json:"brandRequests"`
	Orders           []domain.Order           `json:"orders"`
	Returns          []domain.ReturnRequest   `json:"returns"`
	Sellers          []domain.Seller          `json:"sellers"`
	Users            []domain.AdminUser       `json:"users"`
	Payouts          []domain.Payout          `json:"payouts"`
	CMSSlots         []domain.CMSSlot         `json:"cmsSlots"`
	Promotions       []domain.Promotion       `json:"promotions"`
	Articles         []domain.Article         `json:"articles"`
	AuditLogs        []domain.AuditLog        `json:"auditLogs"`
	Categories       []domain.CategoryNode    `json:"categories"`
	DateRange        domain.DateRange         `json:"dateRange"`
	Trend            []domain.TrendPoint      `json:"trend"`
	KPIs             domain.KPISnapshot       `json:"kpis"`
}

// Clone implements core.State.
func (s State) Clone() State {
	cp := s
	cp.ProductApprovals = append([]domain.ProductApproval{}, s.ProductApprovals...)
	cp.BrandRequests = append([]domain.BrandRequest{}, s.BrandRequests...)
	cp.Orders = append([]domain.Order{}, s.Orders...)
	cp.Returns = append([]domain.ReturnRequest{}, s.Returns...)
	cp.Sellers = append([]domain.Seller{}, s.Sellers...)
	cp.Users = append([]domain.AdminUser{}, s.Users...)
	cp.Payouts = make([]domain.Payout, len(s.Payouts))
	for i, p := range s.Payouts {
		if p.ProcessedAt != nil {
			at := *p.ProcessedAt
			p.ProcessedAt = &at
		}
		cp.Payouts[i] = p
	}
	cp.CMSSlots = append([]domain.CMSSlot{}, s.CMSSlots...)
	cp.Promotions = append([]domain.Promotion{}, s.Promotions...)
	cp.Articles = append([]domain.Article{}, s.Articles...)
	cp.AuditLogs = append([]domain.AuditLog{}, s.AuditLogs...)
	cp.Categories = domain.CloneCategories(s.Categories)
	if cp.Categories == nil {
		cp.Categories = []domain.CategoryNode{}
	}
	cp.Trend = append([]domain.TrendPoint{}, s.Trend...)
	return cp
}

// MergeJSON implements codec.Mergeable.
//
//nolint:gocyclo // one guard per persisted collection
func (s State) MergeJSON(fields map[string]json.RawMessage) (State, error) {
	out := s.Clone()
	dateRange := string(out.DateRange)
	merges := []func() error{
		func() error { return codec.MergeField(fields, "productApprovals", &out.ProductApprovals) },
		func() error { return codec.MergeField(fields, "brandRequests", &out.BrandRequests) },
		func() error { return codec.MergeField(fields, "orders", &out.Orders) },
		func() error { return codec.MergeField(fields, "returns", &out.Returns) },
		func() error { return codec.MergeField(fields, "sellers", &out.Sellers) },
		func() error { return codec.MergeField(fields, "users", &out.Users) },
		func() error { return codec.MergeField(fields, "payouts", &out.Payouts) },
		func() error { return codec.MergeField(fields, "cmsSlots", &out.CMSSlots) },
		func() error { return codec.MergeField(fields, "promotions", &out.Promotions) },
		func() error { return codec.MergeField(fields, "articles", &out.Articles) },
		func() error { return codec.MergeField(fields, "auditLogs", &out.AuditLogs) },
		func() error { return codec.MergeField(fields, "categories", &out.Categories) },
		func() error { return codec.MergeField(fields, "dateRange", &dateRange) },
		func() error { return codec.MergeField(fields, "trend", &out.Trend) },
		func() error { return codec.MergeField(fields, "kpis", &out.KPIs) },
	}
	for _, merge := range merges {
		if err := merge(); err != nil {
			return s, err
		}
	}
	if r := domain.DateRange(dateRange); r.Valid() {
		out.DateRange = r
	}
	return out, nil
}
