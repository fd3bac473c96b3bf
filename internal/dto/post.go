package dto

import "github.com/noah-isme/agency-dashboard-api/internal/models"

// PostView is a post together with its timeliness as of the request date.
type PostView struct {
	models.Post
	Timeliness      models.Timeliness `json:"timeliness"`
	TimelinessLabel string            `json:"timeliness_label"`
}
