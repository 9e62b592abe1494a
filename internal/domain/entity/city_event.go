package entity

import "time"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CityEvent is published to the broker after a successful write operation.
type CityEvent struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	CityID string    `json:"city_id"`
	At     time.Time `json:"at"`
}
