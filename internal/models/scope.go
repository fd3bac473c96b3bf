package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Scope is a recurring weekly content obligation for one client.
type Scope struct {
	ID              string         `db:"id" json:"id"`
	ClientID        string         `db:"client_id" json:"client_id"`
	MaterialType    string         `db:"material_type" json:"material_type"`
	QuantityPerWeek int            `db:"quantity_per_week" json:"quantity_per_week"`
	PostingDays     pq.StringArray `db:"posting_days" json:"posting_days"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// Weekdays lists the accepted posting day names in calendar order.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// CanonicalWeekday maps a case-insensitive day name onto its canonical spelling.
func CanonicalWeekday(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, day := range Weekdays {
		if strings.EqualFold(day, raw) {
			return day, true
		}
	}
	return "", false
}
