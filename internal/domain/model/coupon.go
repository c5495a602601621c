package model

import (
	"fmt"
	"time"
)

// Coupon is an admin-managed discount code, optionally restricted to one
// department.
type Coupon struct {
	ID          string     `json:"id" bson:"_id"`
	Code        string     `json:"code" bson:"code"`
	Description string     `json:"description" bson:"description"`
	DiscountPct float64    `json:"discount_pct" bson:"discount_pct"`
	Department  Department `json:"department,omitempty" bson:"department,omitempty"`
	ValidFrom   time.Time  `json:"valid_from" bson:"valid_from"`
	ValidUntil  time.Time  `json:"valid_until" bson:"valid_until"`
	Active      bool       `json:"active" bson:"active"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// Validate checks the fields an admin can get wrong when creating or
// updating a coupon.
func (c Coupon) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("coupon code is required")
	}
	if c.DiscountPct <= 0 || c.DiscountPct > 100 {
		return fmt.Errorf("discount_pct must be in (0, 100], got %.2f", c.DiscountPct)
	}
	if c.Department != "" && !c.Department.IsValid() {
		return fmt.Errorf("unknown department %q", c.Department)
	}
	if !c.ValidUntil.IsZero() && !c.ValidFrom.IsZero() && c.ValidUntil.Before(c.ValidFrom) {
		return fmt.Errorf("valid_until must be after valid_from")
	}
	return nil
}
