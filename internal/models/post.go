package models

import "time"

// PostStatus is the stored delivery state of a post.
type PostStatus string

const (
	PostStatusPending PostStatus = "pending"
	PostStatusPosted  PostStatus = "posted"
)

// Post is a single content item due (or delivered) on Date.
type Post struct {
	ID          string     `db:"id" json:"id"`
	ClientID    string     `db:"client_id" json:"client_id"`
	ScopeID     *string    `db:"scope_id" json:"scope_id,omitempty"`
	ContentType string     `db:"content_type" json:"content_type"`
	Date        time.Time  `db:"date" json:"date"`
	Status      PostStatus `db:"status" json:"status"`
	Link        *string    `db:"link" json:"link,omitempty"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// PostFilter narrows post listings.
type PostFilter struct {
	ClientID string
}
