package admin

import (
	"fmt"
	"math"

	"storefront/pkg/domain"
)

// Trend generates the dashboard series for r, oldest day first. The series
// is a pure function of the range so repeated selections are identical.
func Trend(r domain.DateRange) []domain.TrendPoint {
	days := r.Days()
	points := make([]domain.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		orders := 40 + (i*7)%13 + days/7
		points = append(points, domain.TrendPoint{
			Label:   fmt.Sprintf("D-%d", days-i),
			Orders:  orders,
			Revenue: float64(orders * (55 + (i*3)%9)),
		})
	}
	return points
}

// KPIs summarises trend and the entity counts of s.
func KPIs(s State, trend []domain.TrendPoint) domain.KPISnapshot {
	var kpi domain.KPISnapshot
	for _, p := range trend {
		kpi.GMV += p.Revenue
		kpi.Orders += p.Orders
	}
	if kpi.Orders > 0 {
		kpi.AverageOrder = math.Round(kpi.GMV/float64(kpi.Orders)*100) / 100
	}
	for _, seller := range s.Sellers {
		if seller.Status == domain.SellerActive {
			kpi.ActiveSellers++
		}
	}
	for _, p := range s.ProductApprovals {
		if p.Status == domain.ApprovalPending {
			kpi.PendingApprovals++
		}
	}
	for _, r := range s.Returns {
		if r.Status.Open() {
			kpi.OpenReturns++
		}
	}
	return kpi
}
