package model

// HostStatus is the account state of a host.
type HostStatus string

const (
	HostStatusActive   HostStatus = "Active"
	HostStatusInactive HostStatus = "Inactive"
)

func (s HostStatus) IsValid() bool {
	return s == HostStatusActive || s == HostStatusInactive
}

// Host is a business account owning one or more properties.
type Host struct {
	ID          string     `json:"id" bson:"_id"`
	CompanyName string     `json:"company_name" bson:"company_name"`
	Email       string     `json:"email" bson:"email"`
	Phone       string     `json:"phone" bson:"phone"`
	Address     string     `json:"address" bson:"address"`
	Status      HostStatus `json:"status" bson:"status"`
}
