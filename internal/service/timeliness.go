package service

import (
	"time"

	"github.com/noah-isme/agency-dashboard-api/internal/dto"
	"github.com/noah-isme/agency-dashboard-api/internal/models"
)

// DefaultCriticalAfterDays is how many days overdue a pending post may be before it turns critical.
const DefaultCriticalAfterDays = 3

// ClassifyPost labels a post relative to today using the default threshold.
func ClassifyPost(post models.Post, today time.Time) models.Timeliness {
	return Classifier{CriticalAfterDays: DefaultCriticalAfterDays}.Classify(post, today)
}

// Classifier derives post timeliness. It holds no state besides its threshold.
type Classifier struct {
	CriticalAfterDays int
}

// Classify returns ON_TIME for any posted post. For pending posts it looks at how many calendar
// days have passed since the post date: none yet is PENDING, 1..CriticalAfterDays is ATTENTION,
// anything beyond is CRITICAL.
func (c Classifier) Classify(post models.Post, today time.Time) models.Timeliness {
	if post.Status == models.PostStatusPosted {
		return models.TimelinessOnTime
	}
	threshold := c.CriticalAfterDays
	if threshold <= 0 {
		threshold = DefaultCriticalAfterDays
	}
	overdue := DaysBetween(post.Date, today)
	switch {
	case overdue > threshold:
		return models.TimelinessCritical
	case overdue >= 1:
		return models.TimelinessAttention
	default:
		return models.TimelinessPending
	}
}

// View wraps a post with its label.
func (c Classifier) View(post models.Post, today time.Time) dto.PostView {
	label := c.Classify(post, today)
	return dto.PostView{Post: post, Timeliness: label, TimelinessLabel: label.DisplayName()}
}

// DaysBetween counts calendar days from from to to. Only the wall-clock date of each value matters,
// so DST shifts and differing locations cannot move the result.
func DaysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
