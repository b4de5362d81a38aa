package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored record. BSON field names stay camelCase to match
// the layout of existing collections.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
	Email       string             `json:"email" bson:"email"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CandidateUser is an unvalidated record built from input (JSON body or
// spreadsheet row) before acceptance. All six fields are required under
// the strict rule set.
type CandidateUser struct {
	FirstName   string    `json:"firstName" validate:"required"`
	LastName    string    `json:"lastName" validate:"required"`
	PhoneNumber string    `json:"phoneNumber" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time `json:"updatedAt" validate:"required"`
}

// User converts an accepted candidate into a record ready to insert.
func (c *CandidateUser) User() *User {
	return &User{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Update returns a full-record update carrying all six fields, used by
// the bulk update branch.
func (c *CandidateUser) Update() *UserUpdate {
	return &UserUpdate{
		FirstName:   &c.FirstName,
		LastName:    &c.LastName,
		PhoneNumber: &c.PhoneNumber,
		Email:       &c.Email,
		CreatedAt:   &c.CreatedAt,
		UpdatedAt:   &c.UpdatedAt,
	}
}

// UserUpdate is a partial record for single-record update. Every field
// is optional; a present field obeys the strict field's format rule.
type UserUpdate struct {
	// required on a pointer only checks nilness, so the rules below
	// validate the dereferenced value: min=1 rejects present-but-empty
	// strings and nonzerotime rejects the zero time.
	FirstName   *string    `json:"firstName" bson:"firstName,omitempty" validate:"omitnil,min=1"`
	LastName    *string    `json:"lastName" bson:"lastName,omitempty" validate:"omitnil,min=1"`
	PhoneNumber *string    `json:"phoneNumber" bson:"phoneNumber,omitempty" validate:"omitnil,min=1"`
	Email       *string    `json:"email" bson:"email,omitempty" validate:"omitnil,min=1,email"`
	CreatedAt   *time.Time `json:"createdAt" bson:"createdAt,omitempty" validate:"omitnil,nonzerotime"`
	UpdatedAt   *time.Time `json:"updatedAt" bson:"updatedAt,omitempty" validate:"omitnil,nonzerotime"`
}

// IsEmpty reports whether no field is set at all.
func (u *UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil &&
		u.Email == nil && u.CreatedAt == nil && u.UpdatedAt == nil
}

// UserFilter narrows a listing. Search matches firstName OR lastName,
// case-insensitive substring.
type UserFilter struct {
	Search string
}

// ListQuery carries pagination parameters for GET /api/users.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}
