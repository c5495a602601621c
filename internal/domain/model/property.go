package model

// Property is a bookable listing owned by a host: a hotel, a cab company
// fleet entry, a hospital department or a salon. Read-only from the admin
// backend's perspective.
type Property struct {
	ID         string     `json:"id" bson:"_id"`
	HostID     string     `json:"host_id" bson:"host_id"`
	Department Department `json:"department" bson:"department"`
	Name       string     `json:"name" bson:"name"`
	Location   string     `json:"location" bson:"location"`
	Price      float64    `json:"price" bson:"price"`
	Rating     float64    `json:"rating" bson:"rating"`
	ImageURL   string     `json:"image_url" bson:"image_url"`
}
