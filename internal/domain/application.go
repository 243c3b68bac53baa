package domain

import (
	"context"
	"time"
)

// Application lifecycle states.
const (
	ApplicationStatusPending     = "Pending"
	ApplicationStatusUnderReview = "Under Review"
	ApplicationStatusAccepted    = "Accepted"
	ApplicationStatusRejected    = "Rejected"
)

// Address is the applicant's postal address, embedded in an Application.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Application represents a submitted job application.
// JobID is a weak reference: no check is made that the job exists at
// submission time.
type Application struct {
	ID                string    `json:"id"`
	JobID             string    `json:"jobId" validate:"required"`
	Name              string    `json:"name" validate:"required"`
	Email             string    `json:"email" validate:"required,email"`
	CVLink            string    `json:"cvLink" validate:"required,http_url"`
	PhoneNumber       string    `json:"phoneNumber" validate:"required,phone"`
	CoverLetter       string    `json:"coverLetter" validate:"required,max=5000"`
	ApplicantAddress  *Address  `json:"applicantAddress" validate:"required"`
	ApplicationStatus string    `json:"applicationStatus" validate:"required,oneof=Pending 'Under Review' Accepted Rejected"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ApplicationRepository defines data access for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	List(ctx context.Context) ([]*Application, error)
}
