// Package models defines the data models used in the application.
package models

import (
	"github.com/go-playground/validator/v10"
)

// Canonical names of the recognized CSV columns.
const (
	FieldUserID         = "user_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phone_number"
	FieldCountry        = "country"
	FieldState          = "state"
	FieldCity           = "city"
	FieldSignupDate     = "signup_date"
	FieldLastActiveDate = "last_active_date"
)

// UserDataRow is one normalized row from an uploaded CSV. Every field is
// optional free text today; tighter per-field rules belong in the validate
// tags once the schema grows them.
type UserDataRow struct {
	UserID         string `json:"user_id,omitempty" dynamodbav:"user_id,omitempty" validate:"omitempty"`
	Name           string `json:"name,omitempty" dynamodbav:"name,omitempty" validate:"omitempty"`
	Email          string `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty" dynamodbav:"phone_number,omitempty" validate:"omitempty"`
	Country        string `json:"country,omitempty" dynamodbav:"country,omitempty" validate:"omitempty"`
	State          string `json:"state,omitempty" dynamodbav:"state,omitempty" validate:"omitempty"`
	City           string `json:"city,omitempty" dynamodbav:"city,omitempty" validate:"omitempty"`
	SignupDate     string `json:"signup_date,omitempty" dynamodbav:"signup_date,omitempty" validate:"omitempty"`
	LastActiveDate string `json:"last_active_date,omitempty" dynamodbav:"last_active_date,omitempty" validate:"omitempty"`
}

var rowValidator = validator.New()

// NewUserDataRow builds a UserDataRow from a canonical-field map.
func NewUserDataRow(fields map[string]string) UserDataRow {
	return UserDataRow{
		UserID:         fields[FieldUserID],
		Name:           fields[FieldName],
		Email:          fields[FieldEmail],
		PhoneNumber:    fields[FieldPhoneNumber],
		Country:        fields[FieldCountry],
		State:          fields[FieldState],
		City:           fields[FieldCity],
		SignupDate:     fields[FieldSignupDate],
		LastActiveDate: fields[FieldLastActiveDate],
	}
}

// Validate runs the per-field rules declared on the struct tags.
func (r UserDataRow) Validate() error {
	return rowValidator.Struct(r)
}

// User represents a user served by the mock CRUD endpoints.
type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"created_at"`
	RecentActivity []string `json:"recent_activity"`
}
