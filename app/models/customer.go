package models

import (
	"strings"

	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

// Customer is a catering client. Two customers are the same customer when
// their IDs match; the other fields are editable.
type Customer struct {
	ID    string `bson:"id"    json:"id"    validate:"required,pattern=customer_id"`
	Name  string `bson:"name"  json:"name"  validate:"required,pattern=name"`
	Phone string `bson:"phone" json:"phone" validate:"required,pattern=phone"`
	Email string `bson:"email" json:"email" validate:"required,email"`
}

// Normalize upper-cases the ID and trims every field in place.
func (c *Customer) Normalize() {
	c.ID = NormalizeID(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
}

// LastName is the final whitespace-delimited token of the name.
func (c Customer) LastName() string {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// DisplayName renders "Lee, Anna" for "Anna Lee". Single-token names are
// returned as-is.
func (c Customer) DisplayName() string {
	parts := strings.Fields(c.Name)
	if len(parts) < 2 {
		return strings.TrimSpace(c.Name)
	}
	return parts[len(parts)-1] + ", " + strings.Join(parts[:len(parts)-1], " ")
}

func (c Customer) Equal(other Customer) bool {
	return NormalizeID(c.ID) == NormalizeID(other.ID)
}

// Validate returns field → message for every field that fails its rule.
func (c Customer) Validate() map[string]string {
	return validate.Struct(c)
}

// NormalizeID trims and upper-cases an identifier so lookups are
// case-insensitive.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
