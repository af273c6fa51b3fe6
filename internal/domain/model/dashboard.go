package model

// DashboardStats is a derived projection over the application and job
// position collections. It is computed at request time and never persisted.
type DashboardStats struct {
	TotalApplications     int `json:"totalApplications"`
	PendingApplications   int `json:"pendingApplications"`
	ActivePositions       int `json:"activePositions"`
	ApplicationsThisMonth int `json:"applicationsThisMonth"`
}
