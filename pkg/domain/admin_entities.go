package domain

import "time"

// ApprovalStatus tracks moderation of seller submissions.
type ApprovalStatus string

// Moderation outcomes shared by product approvals and brand requests.
const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// OrderStatus enumerates the fulfilment flow of an order.
type OrderStatus string

// Order statuses (typical marketplace flow).
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

// PaymentStatus enumerates settlement states of an order.
type PaymentStatus string

// Payment statuses.
const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ReturnStatus enumerates RMA states.
type ReturnStatus string

// RMA statuses. Pending and approved returns are considered open.
const (
	ReturnPending  ReturnStatus = "pending"
	ReturnApproved ReturnStatus = "approved"
	ReturnRejected ReturnStatus = "rejected"
	ReturnRefunded ReturnStatus = "refunded"
)

// Open reports whether the return still needs action.
func (s ReturnStatus) Open() bool { return s == ReturnPending || s == ReturnApproved }

// SellerStatus enumerates seller account states.
type SellerStatus string

// Seller account states.
const (
	SellerActive    SellerStatus = "active"
	SellerPending   SellerStatus = "pending"
	SellerSuspended SellerStatus = "suspended"
)

// UserStatus enumerates marketplace user account states.
type UserStatus string

// User account states.
const (
	UserActive UserStatus = "active"
	UserBanned UserStatus = "banned"
)

// PayoutStatus enumerates seller payout states.
type PayoutStatus string

// Payout states.
const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutPaid       PayoutStatus = "paid"
	PayoutFailed     PayoutStatus = "failed"
)

// SlotPlacement names where a CMS slot renders.
type SlotPlacement string

// CMS placements.
const (
	PlacementHero     SlotPlacement = "hero"
	PlacementBanner   SlotPlacement = "banner"
	PlacementCarousel SlotPlacement = "carousel"
)

// DiscountType selects how a promotion value is applied.
type DiscountType string

// Discount types.
const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// ArticleStatus enumerates editorial states.
type ArticleStatus string

// Editorial states.
const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
	ArticleArchived  ArticleStatus = "archived"
)

// ProductApproval is a seller product awaiting moderation.
type ProductApproval struct {
	ID          string         `json:"id"`
	ProductName string         `json:"productName"`
	SellerName  string         `json:"sellerName"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	Status      ApprovalStatus `json:"status"`
	SubmittedAt time.Time      `json:"submittedAt"`
	Notes       string         `json:"notes,omitempty"`
}

// ProductApprovalPatch carries the fields to overwrite on a ProductApproval.
type ProductApprovalPatch struct {
	Status   *ApprovalStatus `json:"status,omitempty"`
	Category *string         `json:"category,omitempty"`
	Price    *float64        `json:"price,omitempty"`
	Notes    *string         `json:"notes,omitempty"`
}

// Apply returns p with the set patch fields overwritten.
func (patch ProductApprovalPatch) Apply(p ProductApproval) ProductApproval {
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	return p
}

// BrandRequest is a seller's request to register a brand.
type BrandRequest struct {
	ID          string         `json:"id"`
	BrandName   string         `json:"brandName"`
	SellerName  string         `json:"sellerName"`
	Website     string         `json:"website,omitempty"`
	Status      ApprovalStatus `json:"status"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// BrandRequestPatch carries the fields to overwrite on a BrandRequest.
type BrandRequestPatch struct {
	Status  *ApprovalStatus `json:"status,omitempty"`
	Website *string         `json:"website,omitempty"`
}

// Apply returns b with the set patch fields overwritten.
func (patch BrandRequestPatch) Apply(b BrandRequest) BrandRequest {
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.Website != nil {
		b.Website = *patch.Website
	}
	return b
}

// Order is a placed marketplace order.
type Order struct {
	ID            string        `json:"id"`
	Customer      string        `json:"customer"`
	SellerName    string        `json:"sellerName"`
	Items         int           `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// OrderPatch carries the fields to overwrite on an Order.
type OrderPatch struct {
	Status        *OrderStatus   `json:"status,omitempty"`
	PaymentStatus *PaymentStatus `json:"paymentStatus,omitempty"`
	Total         *float64       `json:"total,omitempty"`
}

// Apply returns o with the set patch fields overwritten.
func (patch OrderPatch) Apply(o Order) Order {
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		o.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Total != nil {
		o.Total = *patch.Total
	}
	return o
}

// ReturnRequest is a customer return (RMA).
type ReturnRequest struct {
	ID          string       `json:"id"`
	OrderID     string       `json:"orderId"`
	Customer    string       `json:"customer"`
	Reason      string       `json:"reason"`
	Amount      float64      `json:"amount"`
	Status      ReturnStatus `json:"status"`
	RequestedAt time.Time    `json:"requestedAt"`
}

// ReturnRequestPatch carries the fields to overwrite on a ReturnRequest.
type ReturnRequestPatch struct {
	Status *ReturnStatus `json:"status,omitempty"`
	Amount *float64      `json:"amount,omitempty"`
	Reason *string       `json:"reason,omitempty"`
}

// Apply returns r with the set patch fields overwritten.
func (patch ReturnRequestPatch) Apply(r ReturnRequest) ReturnRequest {
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.Amount != nil {
		r.Amount = *patch.Amount
	}
	if patch.Reason != nil {
		r.Reason = *patch.Reason
	}
	return r
}

// Seller is a marketplace seller account.
type Seller struct {
	ID             string       `json:"id"`
	StoreName      string       `json:"storeName"`
	OwnerName      string       `json:"ownerName"`
	Email          string       `json:"email"`
	Status         SellerStatus `json:"status"`
	Rating         float64      `json:"rating"`
	ProductCount   int          `json:"productCount"`
	CommissionRate float64      `json:"commissionRate"`
	JoinedAt       time.Time    `json:"joinedAt"`
}

// SellerPatch carries the fields to overwrite on a Seller.
type SellerPatch struct {
	Status         *SellerStatus `json:"status,omitempty"`
	Rating         *float64      `json:"rating,omitempty"`
	CommissionRate *float64      `json:"commissionRate,omitempty"`
}

// Apply returns s with the set patch fields overwritten.
func (patch SellerPatch) Apply(s Seller) Seller {
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	if patch.Rating != nil {
		s.Rating = *patch.Rating
	}
	if patch.CommissionRate != nil {
		s.CommissionRate = *patch.CommissionRate
	}
	return s
}

// AdminUser is a marketplace account as seen from the admin console.
type AdminUser struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     Role       `json:"role"`
	Status   UserStatus `json:"status"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// AdminUserPatch carries the fields to overwrite on an AdminUser.
type AdminUserPatch struct {
	Name   *string     `json:"name,omitempty"`
	Role   *Role       `json:"role,omitempty"`
	Status *UserStatus `json:"status,omitempty"`
}

// Apply returns u with the set patch fields overwritten.
func (patch AdminUserPatch) Apply(u AdminUser) AdminUser {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Status != nil {
		u.Status = *patch.Status
	}
	return u
}

// Payout is a transfer of settled funds to a seller.
type Payout struct {
	ID          string       `json:"id"`
	SellerID    string       `json:"sellerId"`
	SellerName  string       `json:"sellerName"`
	Amount      float64      `json:"amount"`
	Status      PayoutStatus `json:"status"`
	RequestedAt time.Time    `json:"requestedAt"`
	ProcessedAt *time.Time   `json:"processedAt,omitempty"`
}

// PayoutPatch carries the fields to overwrite on a Payout.
type PayoutPatch struct {
	Status      *PayoutStatus `json:"status,omitempty"`
	ProcessedAt *time.Time    `json:"processedAt,omitempty"`
}

// Apply returns p with the set patch fields overwritten.
func (patch PayoutPatch) Apply(p Payout) Payout {
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ProcessedAt != nil {
		at := *patch.ProcessedAt
		p.ProcessedAt = &at
	}
	return p
}

// CMSSlot is an admin-configured placement with a validity window.
type CMSSlot struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Placement SlotPlacement `json:"placement"`
	Title     string        `json:"title"`
	ImageURL  string        `json:"imageUrl"`
	LinkURL   string        `json:"linkUrl"`
	StartsAt  time.Time     `json:"startsAt"`
	EndsAt    time.Time     `json:"endsAt"`
	Active    bool          `json:"active"`
}

// LiveAt reports whether the slot is active and t falls inside its window.
func (s CMSSlot) LiveAt(t time.Time) bool {
	return s.Active && !t.Before(s.StartsAt) && t.Before(s.EndsAt)
}

// CMSSlotPatch carries the fields to overwrite on a CMSSlot.
type CMSSlotPatch struct {
	Title    *string    `json:"title,omitempty"`
	ImageURL *string    `json:"imageUrl,omitempty"`
	LinkURL  *string    `json:"linkUrl,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
	Active   *bool      `json:"active,omitempty"`
}

// Apply returns s with the set patch fields overwritten.
func (patch CMSSlotPatch) Apply(s CMSSlot) CMSSlot {
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.ImageURL != nil {
		s.ImageURL = *patch.ImageURL
	}
	if patch.LinkURL != nil {
		s.LinkURL = *patch.LinkURL
	}
	if patch.StartsAt != nil {
		s.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		s.EndsAt = *patch.EndsAt
	}
	if patch.Active != nil {
		s.Active = *patch.Active
	}
	return s
}

// Promotion is a discount code campaign.
type Promotion struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Description  string       `json:"description"`
	DiscountType DiscountType `json:"discountType"`
	Value        float64      `json:"value"`
	StartsAt     time.Time    `json:"startsAt"`
	EndsAt       time.Time    `json:"endsAt"`
	Active       bool         `json:"active"`
	Redemptions  int          `json:"redemptions"`
}

// PromotionPatch carries the fields to overwrite on a Promotion.
type PromotionPatch struct {
	Description *string    `json:"description,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// Apply returns p with the set patch fields overwritten.
func (patch PromotionPatch) Apply(p Promotion) Promotion {
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Value != nil {
		p.Value = *patch.Value
	}
	if patch.StartsAt != nil {
		p.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		p.EndsAt = *patch.EndsAt
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	return p
}

// Article is an editorial CMS article.
type Article struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Author    string        `json:"author"`
	Status    ArticleStatus `json:"status"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ArticlePatch carries the fields to overwrite on an Article.
type ArticlePatch struct {
	Title     *string        `json:"title,omitempty"`
	Status    *ArticleStatus `json:"status,omitempty"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
}

// Apply returns a with the set patch fields overwritten.
func (patch ArticlePatch) Apply(a Article) Article {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.UpdatedAt != nil {
		a.UpdatedAt = *patch.UpdatedAt
	}
	return a
}

// AuditLog is an append-only record of an admin action.
type AuditLog struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Timestamp time.Time `json:"timestamp"`
}
