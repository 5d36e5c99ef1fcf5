package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseEnums(t *testing.T) {
	for _, r := range Roles() {
		if got, ok := ParseRole(string(r)); !ok || got != r {
			t.Fatalf("ParseRole(%q) = %q, %v", r, got, ok)
		}
	}
	if _, ok := ParseRole("Admin"); ok {
		t.Fatalf("role parsing must be exact")
	}
	if l, ok := ParseLanguage("ar"); !ok || !l.IsRTL() {
		t.Fatalf("arabic should parse and be right-to-left")
	}
	if _, ok := ParseLanguage("de"); ok {
		t.Fatalf("unsupported language accepted")
	}
	if LanguageFrench.IsRTL() || LanguageEnglish.IsRTL() {
		t.Fatalf("latin scripts are left-to-right")
	}
	if _, ok := ParseTheme("dark"); !ok {
		t.Fatalf("dark theme rejected")
	}
	if _, ok := ParseTheme("contrast"); ok {
		t.Fatalf("unsupported theme accepted")
	}
}

func TestUserCloneCopiesAvatar(t *testing.T) {
	avatar := "/a.png"
	u := User{ID: "u-1", Avatar: &avatar}
	cp := u.Clone()
	*cp.Avatar = "/b.png"
	if *u.Avatar != "/a.png" {
		t.Fatalf("clone shares the avatar pointer")
	}
	if (User{}).Clone().Avatar != nil {
		t.Fatalf("nil avatar should stay nil")
	}
}

func TestLineTotal(t *testing.T) {
	if got := (CartItem{Price: 12.5, Quantity: 4}).LineTotal(); got != 50 {
		t.Fatalf("LineTotal = %v", got)
	}
}

func TestCategoryClone(t *testing.T) {
	tree := []CategoryNode{{ID: "a", Children: []CategoryNode{{ID: "b"}}}}
	cp := CloneCategories(tree)
	cp[0].Children[0].Name = "changed"
	if tree[0].Children[0].Name != "" {
		t.Fatalf("clone shares children")
	}
	if CloneCategories(nil) != nil {
		t.Fatalf("nil forest should stay nil")
	}
}

func TestDateRangeDays(t *testing.T) {
	cases := map[DateRange]int{Range7Days: 7, Range30Days: 30, "90d": 0, "": 0}
	for r, want := range cases {
		if r.Days() != want || r.Valid() != (want > 0) {
			t.Fatalf("%q: Days=%d Valid=%v", r, r.Days(), r.Valid())
		}
	}
}

func TestReturnStatusOpen(t *testing.T) {
	open := map[ReturnStatus]bool{ReturnPending: true, ReturnApproved: true, ReturnRejected: false, ReturnRefunded: false}
	for s, want := range open {
		if s.Open() != want {
			t.Fatalf("%s.Open() = %v", s, s.Open())
		}
	}
}

func TestCMSSlotLiveAt(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	slot := CMSSlot{Active: true, StartsAt: start, EndsAt: start.Add(24 * time.Hour)}
	if !slot.LiveAt(start) || slot.LiveAt(start.Add(24*time.Hour)) || slot.LiveAt(start.Add(-time.Second)) {
		t.Fatalf("window bounds are start-inclusive and end-exclusive")
	}
	slot.Active = false
	if slot.LiveAt(start.Add(time.Hour)) {
		t.Fatalf("inactive slot reported live")
	}
}

func TestPatchesOverwriteOnlySetFields(t *testing.T) {
	status := OrderStatusShipped
	order := Order{ID: "ord-1", Customer: "Ana", Total: 40, Status: OrderStatusPending, PaymentStatus: PaymentStatusPaid}
	got := OrderPatch{Status: &status}.Apply(order)
	want := order
	want.Status = OrderStatusShipped
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order patch mismatch (-want +got):\n%s", diff)
	}

	active := false
	value := 15.0
	promo := Promotion{ID: "promo-1", Code: "SPRING10", Value: 10, Active: true}
	gotPromo := PromotionPatch{Active: &active, Value: &value}.Apply(promo)
	if gotPromo.Active || gotPromo.Value != 15 || gotPromo.Code != "SPRING10" {
		t.Fatalf("promotion patch %+v", gotPromo)
	}

	title := "Summer"
	slot := CMSSlotPatch{Title: &title}.Apply(CMSSlot{ID: "cms-1", Title: "Spring", Placement: PlacementHero})
	if slot.Title != "Summer" || slot.Placement != PlacementHero {
		t.Fatalf("cms patch %+v", slot)
	}

	if (AdminUserPatch{}).Apply(AdminUser{ID: "u-1", Status: UserActive}).Status != UserActive {
		t.Fatalf("empty patch changed the user")
	}
}
