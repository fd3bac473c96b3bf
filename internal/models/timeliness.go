package models

// Timeliness is the punctuality label derived for a post. It is never persisted.
type Timeliness string

const (
	TimelinessOnTime    Timeliness = "ON_TIME"
	TimelinessAttention Timeliness = "ATTENTION"
	TimelinessCritical  Timeliness = "CRITICAL"
	TimelinessPending   Timeliness = "PENDING"
)

var timelinessDisplay = map[Timeliness]string{
	TimelinessOnTime:    "EM DIA",
	TimelinessAttention: "ATENÇÃO",
	TimelinessCritical:  "ATRASADA",
	TimelinessPending:   "PENDENTE",
}

// DisplayName returns the label shown on the dashboard.
func (t Timeliness) DisplayName() string {
	if name, ok := timelinessDisplay[t]; ok {
		return name
	}
	return string(t)
}

// DashboardSummary holds the global post counts shown on the dashboard cards.
type DashboardSummary struct {
	Critical  int `db:"critical" json:"critical"`
	Attention int `db:"attention" json:"attention"`
	OnTime    int `db:"on_time" json:"onTime"`
}
