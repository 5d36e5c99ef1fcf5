package domain

// CategoryNode is one node of the admin category tree. Node ids are unique
// across the whole tree.
type CategoryNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Children []CategoryNode `json:"children,omitempty"`
}

// Clone deep-copies the node and its subtree.
func (n CategoryNode) Clone() CategoryNode {
	cp := n
	cp.Children = CloneCategories(n.Children)
	return cp
}

// CloneCategories deep-copies a forest of category nodes. A nil input stays nil.
func CloneCategories(nodes []CategoryNode) []CategoryNode {
	if nodes == nil {
		return nil
	}
	out := make([]CategoryNode, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// DateRange selects the analytics window on the admin dashboard.
type DateRange string

// Supported analytics windows.
const (
	Range7Days  DateRange = "7d"
	Range30Days DateRange = "30d"
)

// Days returns the number of days covered, or 0 for an unsupported range.
func (r DateRange) Days() int {
	switch r {
	case Range7Days:
		return 7
	case Range30Days:
		return 30
	}
	return 0
}

// Valid reports whether r is a supported range.
func (r DateRange) Valid() bool { return r.Days() > 0 }

// TrendPoint is one day of the dashboard trend series.
type TrendPoint struct {
	Label   string  `json:"label"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// KPISnapshot summarises the dashboard for the selected range.
type KPISnapshot struct {
	GMV              float64 `json:"gmv"`
	Orders           int     `json:"orders"`
	AverageOrder     float64 `json:"averageOrder"`
	ActiveSellers    int     `json:"activeSellers"`
	PendingApprovals int     `json:"pendingApprovals"`
	OpenReturns      int     `json:"openReturns"`
}
