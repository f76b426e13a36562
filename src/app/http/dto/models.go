package dto

import (
	"time"

	"registration/src/core/domain"
	"registration/src/core/usecase"
)

// RegisterUserRequest is the payload of POST /v1/users.
// Every field but city must be filled before the record is even validated.
type RegisterUserRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Birth      string `json:"birth" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	City       string `json:"city"`
}

// ToCandidate assembles the candidate record. A malformed birth date is
// rejected as INVALID_USER on the birth field.
func (r *RegisterUserRequest) ToCandidate() (domain.User, error) {
	birth, err := usecase.ParseBirth(r.Birth)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Birth:      birth,
		PostalCode: r.PostalCode,
		City:       r.City,
	}, nil
}

// CheckFieldRequest is the payload of POST /v1/users/check.
type CheckFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=firstName lastName email birth postalCode"`
	Value string `json:"value"`
}

// CheckFieldResponse reports a passing field.
type CheckFieldResponse struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
}

// UserResponse is a stored user.
type UserResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Birth      string    `json:"birth"`
	PostalCode string    `json:"postalCode"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DirectoryResponse is the user counter plus the listed users.
type DirectoryResponse struct {
	Count int            `json:"count"`
	Users []UserResponse `json:"users"`
}

func (UserResponse) FromDomain(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Birth:      u.Birth.Format(domain.BirthLayout),
		PostalCode: u.PostalCode,
		City:       u.City,
		CreatedAt:  u.CreatedAt,
	}
}

func (DirectoryResponse) FromDomain(d *domain.Directory) DirectoryResponse {
	users := make([]UserResponse, 0, len(d.Users))
	for i := range d.Users {
		users = append(users, UserResponse{}.FromDomain(&d.Users[i]))
	}
	return DirectoryResponse{Count: d.Count, Users: users}
}
