package admin

import (
	"time"

	"storefront/pkg/domain"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 9, 0, 0, 0, time.UTC)
}

// DefaultState returns the fixed admin dataset with the 7 day analytics
// window selected. Every call builds fresh slices.
func DefaultState() State {
	s := State{
		ProductApprovals: []domain.ProductApproval{
			{ID: "pa-1", ProductName: "Handwoven Wool Rug", SellerName: "Atlas Crafts", Category: "home", Price: 189, Status: domain.ApprovalPending, SubmittedAt: day(time.March, 2)},
			{ID: "pa-2", ProductName: "Argan Oil 100ml", SellerName: "Souk Naturals", Category: "beauty", Price: 24.5, Status: domain.ApprovalPending, SubmittedAt: day(time.March, 3)},
			{ID: "pa-3", ProductName: "Leather Messenger Bag", SellerName: "Fes Leatherworks", Category: "fashion", Price: 129, Status: domain.ApprovalApproved, SubmittedAt: day(time.February, 26)},
			{ID: "pa-4", ProductName: "Replica Watch", SellerName: "QuickDeals", Category: "accessories", Price: 35, Status: domain.ApprovalRejected, SubmittedAt: day(time.February, 25), Notes: "counterfeit listing"},
		},
		BrandRequests: []domain.BrandRequest{
			{ID: "br-1", BrandName: "Atlas Crafts", SellerName: "Atlas Crafts", Website: "https://atlascrafts.example", Status: domain.ApprovalPending, SubmittedAt: day(time.March, 1)},
			{ID: "br-2", BrandName: "Souk Naturals", SellerName: "Souk Naturals", Status: domain.ApprovalApproved, SubmittedAt: day(time.February, 20)},
		},
		Orders: []domain.Order{
			{ID: "ord-1001", Customer: "Lina Haddad", SellerName: "Atlas Crafts", Items: 1, Total: 189, Status: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusPaid, CreatedAt: day(time.March, 4)},
			{ID: "ord-1002", Customer: "Marc Dubois", SellerName: "Souk Naturals", Items: 3, Total: 73.5, Status: domain.OrderStatusShipped, PaymentStatus: domain.PaymentStatusPaid, CreatedAt: day(time.March, 3)},
			{ID: "ord-1003", Customer: "Sara Benali", SellerName: "Fes Leatherworks", Items: 1, Total: 129, Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid, CreatedAt: day(time.February, 28)},
			{ID: "ord-1004", Customer: "Tom Becker", SellerName: "Fes Leatherworks", Items: 2, Total: 258, Status: domain.OrderStatusReturned, PaymentStatus: domain.PaymentStatusRefunded, CreatedAt: day(time.February, 22)},
		},
		Returns: []domain.ReturnRequest{
			{ID: "rma-1", OrderID: "ord-1003", Customer: "Sara Benali", Reason: "damaged strap", Amount: 129, Status: domain.ReturnPending, RequestedAt: day(time.March, 4)},
			{ID: "rma-2", OrderID: "ord-1002", Customer: "Marc Dubois", Reason: "wrong size", Amount: 24.5, Status: domain.ReturnApproved, RequestedAt: day(time.March, 3)},
			{ID: "rma-3", OrderID: "ord-1004", Customer: "Tom Becker", Reason: "not as described", Amount: 258, Status: domain.ReturnRefunded, RequestedAt: day(time.February, 24)},
		},
		Sellers: []domain.Seller{
			{ID: "s-1", StoreName: "Atlas Crafts", OwnerName: "Youssef Amrani", Email: "youssef@atlascrafts.example", Status: domain.SellerActive, Rating: 4.8, ProductCount: 42, CommissionRate: 0.1, JoinedAt: day(time.January, 8)},
			{ID: "s-2", StoreName: "Souk Naturals", OwnerName: "Nadia Karim", Email: "nadia@souk.example", Status: domain.SellerActive, Rating: 4.6, ProductCount: 18, CommissionRate: 0.12, JoinedAt: day(time.January, 15)},
			{ID: "s-3", StoreName: "Fes Leatherworks", OwnerName: "Omar Tazi", Email: "omar@fesleather.example", Status: domain.SellerPending, Rating: 0, ProductCount: 6, CommissionRate: 0.1, JoinedAt: day(time.February, 18)},
			{ID: "s-4", StoreName: "QuickDeals", OwnerName: "Alex Grant", Email: "alex@quickdeals.example", Status: domain.SellerSuspended, Rating: 2.1, ProductCount: 3, CommissionRate: 0.15, JoinedAt: day(time.February, 1)},
		},
		Users: []domain.AdminUser{
			{ID: "u-1", Name: "Lina Haddad", Email: "lina@example.com", Role: domain.RoleBuyer, Status: domain.UserActive, JoinedAt: day(time.January, 3)},
			{ID: "u-2", Name: "Youssef Amrani", Email: "youssef@atlascrafts.example", Role: domain.RoleSeller, Status: domain.UserActive, JoinedAt: day(time.January, 8)},
			{ID: "u-3", Name: "Alex Grant", Email: "alex@quickdeals.example", Role: domain.RoleSeller, Status: domain.UserBanned, JoinedAt: day(time.February, 1)},
			{ID: "u-4", Name: "Admin", Email: "admin@storefront.example", Role: domain.RoleAdmin, Status: domain.UserActive, JoinedAt: day(time.January, 1)},
		},
		Payouts: []domain.Payout{
			{ID: "po-1", SellerID: "s-1", SellerName: "Atlas Crafts", Amount: 1520.4, Status: domain.PayoutPending, RequestedAt: day(time.March, 1)},
			{ID: "po-2", SellerID: "s-2", SellerName: "Souk Naturals", Amount: 640, Status: domain.PayoutPaid, RequestedAt: day(time.February, 15), ProcessedAt: timePtr(day(time.February, 17))},
		},
		CMSSlots: []domain.CMSSlot{
			{ID: "cms-1", Name: "home-hero", Placement: domain.PlacementHero, Title: "Spring Market", ImageURL: "/media/hero-spring.jpg", LinkURL: "/collections/spring", StartsAt: day(time.March, 1), EndsAt: day(time.March, 31), Active: true},
			{ID: "cms-2", Name: "checkout-banner", Placement: domain.PlacementBanner, Title: "Free shipping over 50", ImageURL: "/media/banner-shipping.jpg", LinkURL: "/shipping", StartsAt: day(time.January, 1), EndsAt: day(time.December, 31), Active: false},
		},
		Promotions: []domain.Promotion{
			{ID: "promo-1", Code: "SPRING10", Description: "10% off spring collection", DiscountType: domain.DiscountPercent, Value: 10, StartsAt: day(time.March, 1), EndsAt: day(time.March, 31), Active: true, Redemptions: 37},
			{ID: "promo-2", Code: "WELCOME5", Description: "5 off first order", DiscountType: domain.DiscountFixed, Value: 5, StartsAt: day(time.January, 1), EndsAt: day(time.December, 31), Active: true, Redemptions: 212},
		},
		Articles: []domain.Article{
			{ID: "art-1", Title: "Caring for wool rugs", Slug: "caring-for-wool-rugs", Author: "Editorial", Status: domain.ArticlePublished, UpdatedAt: day(time.February, 10)},
			{ID: "art-2", Title: "Seller onboarding guide", Slug: "seller-onboarding-guide", Author: "Marketplace Ops", Status: domain.ArticleDraft, UpdatedAt: day(time.March, 2)},
		},
		AuditLogs: []domain.AuditLog{
			{ID: "log-1", Actor: "admin@storefront.example", Action: "seller.suspend", Target: "s-4", Timestamp: day(time.February, 27)},
		},
		Categories: []domain.CategoryNode{
			{ID: "cat-home", Name: "Home", Children: []domain.CategoryNode{
				{ID: "cat-rugs", Name: "Rugs"},
				{ID: "cat-lighting", Name: "Lighting"},
			}},
			{ID: "cat-fashion", Name: "Fashion", Children: []domain.CategoryNode{
				{ID: "cat-bags", Name: "Bags"},
			}},
			{ID: "cat-beauty", Name: "Beauty"},
		},
		DateRange: domain.Range7Days,
	}
	s.Trend = Trend(s.DateRange)
	s.KPIs = KPIs(s, s.Trend)
	return s
}

func timePtr(t time.Time) *time.Time { return &t }
