package model

import "time"

// Notification is an entry in the admin feed: a new booking, a subscription
// payment awaiting review, a host signup. Delivery is handled elsewhere; the
// admin backend only lists and marks them read.
type Notification struct {
	ID        string    `json:"id" bson:"_id"`
	Type      string    `json:"type" bson:"type"`
	Message   string    `json:"message" bson:"message"`
	RefID     string    `json:"ref_id,omitempty" bson:"ref_id,omitempty"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
