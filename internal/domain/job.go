package domain

import (
	"context"
	"time"
)

// Job types accepted by postings.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// Posting lifecycle states.
const (
	JobStatusActive = "Active"
	JobStatusClosed = "Closed"
	JobStatusOnHold = "On Hold"
)

// Location is the place a job is based at, embedded in a Job.
type Location struct {
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Salary is the advertised compensation range, embedded in a Job.
// Min and Max are pointers so that an absent value is distinguishable
// from a legitimate zero.
type Salary struct {
	Min      *float64 `json:"min" validate:"required"`
	Max      *float64 `json:"max" validate:"required"`
	Currency string   `json:"currency" validate:"required"`
}

// Job represents a posted job opening
type Job struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title" validate:"required"`
	Company             string    `json:"company" validate:"required"`
	Location            *Location `json:"location" validate:"required"`
	Description         string    `json:"description" validate:"required"`
	JobResponsibilities []string  `json:"jobResponsibilities" validate:"required,min=1"`
	SkillRequirements   []string  `json:"skillRequirements" validate:"required,min=1"`
	Salary              *Salary   `json:"salary" validate:"required"`
	JobType             string    `json:"jobType" validate:"required,oneof=Full-time Part-time Contract Internship"`
	Requirements        []string  `json:"requirements" validate:"required,min=1"`
	Benefits            []string  `json:"benefits,omitempty"`
	ApplicationDeadline time.Time `json:"applicationDeadline" validate:"required"`
	JobStatus           string    `json:"jobStatus" validate:"required,oneof=Active Closed 'On Hold'"`
	PostedBy            string    `json:"postedBy" validate:"required"` // references an external User identity
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// JobRepository defines data access for jobs
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Job, error)
}
