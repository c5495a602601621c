package model

import "time"

// User is a platform customer. The admin backend only lists users; accounts
// are managed by the booking subsystem.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// AdminRole separates full admins from read-only staff accounts.
type AdminRole string

const (
	AdminRoleSuper AdminRole = "Admin"
	AdminRoleStaff AdminRole = "Staff"
)

// Admin is a dashboard operator account. PasswordHash is a bcrypt hash and
// never serialized.
type Admin struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         AdminRole `json:"role" bson:"role"`
}
