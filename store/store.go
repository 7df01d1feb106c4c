// Package store persists the job-search artifacts: contacts, applications,
// inquiries, resume suggestions, and cover letters.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

type Store interface {
	Migrate(ctx context.Context) error

	CreatePerson(ctx context.Context, p Person) (int64, error)

	CreateJobApplication(ctx context.Context, app JobApplication, embedding []float32) (int64, error)
	GetJobApplication(ctx context.Context, id int64) (JobApplication, error)
	ListJobApplications(ctx context.Context) ([]JobApplication, error)
	SearchSimilarApplications(ctx context.Context, embedding []float32, limit int) ([]SimilarApplication, error)

	CreateJobInquiry(ctx context.Context, inquiry JobInquiry) (int64, error)
	CreateResumeSuggestion(ctx context.Context, suggestion ResumeSuggestion) (int64, error)
	CreateCoverLetter(ctx context.Context, letter CoverLetter) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}
