package domain

import "github.com/shopspring/decimal"

// DashboardStats is a point-in-time snapshot for one account. The four
// figures are computed by independent queries; no cross-aggregate
// consistency is guaranteed.
type DashboardStats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	ActiveTrips       int64           `json:"activeTrips"`
	PendingPayments   decimal.Decimal `json:"pendingPayments"`
	AvailableVehicles int64           `json:"availableVehicles"`
	TotalVehicles     int64           `json:"totalVehicles"`
}
