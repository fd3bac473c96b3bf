package dto

// DashboardResponse is the global summary shown on the dashboard cards.
type DashboardResponse struct {
	Critical  int    `json:"critical"`
	Attention int    `json:"attention"`
	OnTime    int    `json:"onTime"`
	Date      string `json:"date"`
}
