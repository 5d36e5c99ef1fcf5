package admin

import "storefront/pkg/domain"

// Action kinds.
const (
	KindUpdateProductApproval = "UPDATE_PRODUCT_APPROVAL"
	KindUpdateBrandRequest    = "UPDATE_BRAND_REQUEST"
	KindUpdateOrder           = "UPDATE_ORDER"
	KindUpdateReturn          = "UPDATE_RETURN"
	KindUpdateSeller          = "UPDATE_SELLER"
	KindUpdateUser            = "UPDATE_USER"
	KindUpdatePayout          = "UPDATE_PAYOUT"
	KindUpdateCMSSlot         = "UPDATE_CMS_SLOT"
	KindUpdatePromotion       = "UPDATE_PROMOTION"
	KindUpdateArticle         = "UPDATE_ARTICLE"
	KindAppendAuditLog        = "APPEND_AUDIT_LOG"
	KindAddCategory           = "ADD_CATEGORY"
	KindRenameCategory        = "RENAME_CATEGORY"
	KindDeleteCategory        = "DELETE_CATEGORY"
	KindSetDateRange          = "SET_DATE_RANGE"
	KindReset                 = "RESET"
)

// Update actions shallow-merge Patch into the entity with ID. An unknown ID
// leaves the snapshot untouched.
type (
	UpdateProductApproval struct {
		ID    string
		Patch domain.ProductApprovalPatch
	}
	UpdateBrandRequest struct {
		ID    string
		Patch domain.BrandRequestPatch
	}
	UpdateOrder struct {
		ID    string
		Patch domain.OrderPatch
	}
	UpdateReturn struct {
		ID    string
		Patch domain.ReturnRequestPatch
	}
	UpdateSeller struct {
		ID    string
		Patch domain.SellerPatch
	}
	UpdateUser struct {
		ID    string
		Patch domain.AdminUserPatch
	}
	UpdatePayout struct {
		ID    string
		Patch domain.PayoutPatch
	}
	UpdateCMSSlot struct {
		ID    string
		Patch domain.CMSSlotPatch
	}
	UpdatePromotion struct {
		ID    string
		Patch domain.PromotionPatch
	}
	UpdateArticle struct {
		ID    string
		Patch domain.ArticlePatch
	}
)

// AppendAuditLog records Entry at the head of the audit log.
type AppendAuditLog struct{ Entry domain.AuditLog }

// AddCategory inserts a node under ParentID, or at the top level when
// ParentID is empty.
type AddCategory struct {
	ID       string
	Name     string
	ParentID string
}

// RenameCategory changes the display name of node ID.
type RenameCategory struct {
	ID   string
	Name string
}

// DeleteCategory removes node ID and its whole subtree.
type DeleteCategory struct{ ID string }

// SetDateRange selects the dashboard window and regenerates the analytics.
type SetDateRange struct{ Range domain.DateRange }

// Reset restores the default dataset.
type Reset struct{}

func (UpdateProductApproval) Kind() string { return KindUpdateProductApproval }
func (UpdateBrandRequest) Kind() string    { return KindUpdateBrandRequest }
func (UpdateOrder) Kind() string           { return KindUpdateOrder }
func (UpdateReturn) Kind() string          { return KindUpdateReturn }
func (UpdateSeller) Kind() string          { return KindUpdateSeller }
func (UpdateUser) Kind() string            { return KindUpdateUser }
func (UpdatePayout) Kind() string          { return KindUpdatePayout }
func (UpdateCMSSlot) Kind() string         { return KindUpdateCMSSlot }
func (UpdatePromotion) Kind() string       { return KindUpdatePromotion }
func (UpdateArticle) Kind() string         { return KindUpdateArticle }
func (AppendAuditLog) Kind() string        { return KindAppendAuditLog }
func (AddCategory) Kind() string           { return KindAddCategory }
func (RenameCategory) Kind() string        { return KindRenameCategory }
func (DeleteCategory) Kind() string        { return KindDeleteCategory }
func (SetDateRange) Kind() string          { return KindSetDateRange }
func (Reset) Kind() string                 { return KindReset }
