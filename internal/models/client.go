package models

import "time"

// ClientStatus is the lifecycle state of a client account.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client is an agency customer whose content is being produced.
type Client struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	ContactInfo *string      `db:"contact_info" json:"contact_info,omitempty"`
	Status      ClientStatus `db:"status" json:"status"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}
