// Package domain defines the value types shared by the storefront session and
// admin state containers and the persistence contract they are saved through.
package domain

// Role identifies which navigation shell and capabilities are active.
type Role string

// Supported roles. Any other string is rejected by ParseRole.
const (
	RoleGuest  Role = "guest"
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Roles returns the closed set of roles in display order.
func Roles() []Role {
	return []Role{RoleGuest, RoleBuyer, RoleSeller, RoleAdmin}
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// ParseRole validates raw against the closed role set.
func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// Language identifies the active UI language.
type Language string

// Supported languages.
const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageArabic  Language = "ar"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageFrench, LanguageArabic:
		return true
	}
	return false
}

// IsRTL reports whether the language is written right-to-left.
func (l Language) IsRTL() bool { return l == LanguageArabic }

// ParseLanguage validates raw against the supported languages.
func ParseLanguage(raw string) (Language, bool) {
	l := Language(raw)
	if !l.Valid() {
		return "", false
	}
	return l, true
}

// Theme selects the colour scheme.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// ParseTheme validates raw against the supported themes.
func ParseTheme(raw string) (Theme, bool) {
	t := Theme(raw)
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// User is the signed-in identity. Its Role is the identity's own role and may
// differ from the session's active role during role previews.
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   Role    `json:"role"`
	Avatar *string `json:"avatar,omitempty"`
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	cp := u
	if u.Avatar != nil {
		avatar := *u.Avatar
		cp.Avatar = &avatar
	}
	return cp
}

// CartItem is a single cart line. ID is unique within a cart.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// LineTotal returns price multiplied by quantity.
func (c CartItem) LineTotal() float64 { return c.Price * float64(c.Quantity) }
