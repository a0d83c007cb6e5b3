// Package contact takes contact-form submissions from the site.
package contact

import (
	"context"
	"time"
)

// Input is the raw form payload. Validation bounds keep junk and
// oversized messages out before anything is stored.
type Input struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Submission is a stored form entry.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	Create(ctx context.Context, sub Submission) error
	Ping(ctx context.Context) error
}
