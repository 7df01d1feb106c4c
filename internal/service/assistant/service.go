// Package assistant implements the job-search workflows: LinkedIn outreach
// messages, resume-optimization suggestions, and cover letters, each
// persisted alongside its job-application record.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atharvakapadnis/agentic-tasks/embedder"
	"github.com/atharvakapadnis/agentic-tasks/generator"
	"github.com/atharvakapadnis/agentic-tasks/store"
)

// maxMessageLength caps outreach messages at LinkedIn's connection-note limit.
const maxMessageLength = 300

const defaultPortfolioURL = "https://atharvakapadnis.vercel.app"

type Option func(*Service)

func WithPortfolioURL(url string) Option {
	return func(s *Service) {
		s.portfolioURL = url
	}
}

// WithEmbedder enables job-description embeddings and similarity search.
func WithEmbedder(e embedder.Embedder) Option {
	return func(s *Service) {
		s.embedder = e
	}
}

type Service struct {
	generator    generator.Generator
	store        store.Store
	embedder     embedder.Embedder
	portfolioURL string
}

func New(g generator.Generator, st store.Store, opts ...Option) *Service {
	s := &Service{
		generator:    g,
		store:        st,
		portfolioURL: defaultPortfolioURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConnectionRequest generates a short LinkedIn connection request and, when
// role and company are known, records the contact with the message sent.
func (s *Service) ConnectionRequest(ctx context.Context, name, role, company, aboutSection string) (string, int64, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return "", 0, errors.New("name is required")
	}

	message, err := s.generator.Generate(ctx, connectionRequestPrompt(name, aboutSection))
	if err != nil {
		return "", 0, fmt.Errorf("generate connection request: %w", err)
	}
	message = capMessage(message)

	var personID int64
	if len(role) > 0 && len(company) > 0 {
		personID, err = s.store.CreatePerson(ctx, store.Person{
			Name:        name,
			Role:        role,
			Company:     company,
			MessageSent: message,
		})
		if err != nil {
			return "", 0, fmt.Errorf("persist person: %w", err)
		}
	}

	return message, personID, nil
}

// JobInquiry generates a job-inquiry connection request. When both ids are
// supplied the inquiry is recorded against the person and application.
func (s *Service) JobInquiry(ctx context.Context, name, aboutSection, jobPosting string, personID, jobApplicationID int64) (string, int64, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return "", 0, errors.New("name is required")
	}

	message, err := s.generator.Generate(ctx, jobInquiryPrompt(name, aboutSection, jobPosting))
	if err != nil {
		return "", 0, fmt.Errorf("generate job inquiry: %w", err)
	}
	message = capMessage(message)

	var inquiryID int64
	if personID > 0 && jobApplicationID > 0 {
		inquiryID, err = s.store.CreateJobInquiry(ctx, store.JobInquiry{
			PersonID:         personID,
			JobApplicationID: jobApplicationID,
			DateReachedOut:   store.Today(),
			MessageSent:      message,
		})
		if err != nil {
			return "", 0, fmt.Errorf("persist job inquiry: %w", err)
		}
	}

	return message, inquiryID, nil
}

// ResumeOptimization generates suggestions for tailoring a resume to a job
// description, persisted when a job application id is supplied.
func (s *Service) ResumeOptimization(ctx context.Context, resumeText, jobDescription string, jobApplicationID int64) (string, int64, error) {
	suggestions, err := s.generator.Generate(ctx, resumeOptimizationPrompt(resumeText, jobDescription))
	if err != nil {
		return "", 0, fmt.Errorf("generate resume suggestions: %w", err)
	}
	suggestions = strings.TrimSpace(suggestions)

	var suggestionID int64
	if jobApplicationID > 0 {
		suggestionID, err = s.store.CreateResumeSuggestion(ctx, store.ResumeSuggestion{
			JobApplicationID: jobApplicationID,
			Suggestions:      suggestions,
		})
		if err != nil {
			return "", 0, fmt.Errorf("persist resume suggestion: %w", err)
		}
	}

	return suggestions, suggestionID, nil
}

// CoverLetterResult is the outcome of the initial cover-letter pass: either
// a finished letter or the follow-up questions still needed.
type CoverLetterResult struct {
	FollowUpNeeded bool     `json:"follow_up_needed"`
	Questions      []string `json:"questions,omitempty"`
	CoverLetter    string   `json:"cover_letter,omitempty"`
	CoverLetterID  int64    `json:"cover_letter_id,omitempty"`
}

// CoverLetterInitial asks the generator to either write the letter or signal
// missing context with the FOLLOW-UP protocol. Nothing is persisted on the
// follow-up path.
func (s *Service) CoverLetterInitial(ctx context.Context, resumeText, jobDescription string, jobApplicationID int64) (CoverLetterResult, error) {
	output, err := s.generator.Generate(ctx, coverLetterInitialPrompt(resumeText, jobDescription, s.portfolioURL))
	if err != nil {
		return CoverLetterResult{}, fmt.Errorf("generate cover letter: %w", err)
	}
	output = strings.TrimSpace(output)

	if rest, ok := strings.CutPrefix(output, followUpMarker); ok {
		var questions []string
		if err := json.Unmarshal([]byte(strings.TrimSpace(rest)), &questions); err != nil || len(questions) == 0 {
			slog.Warn("unparseable follow-up questions, using defaults", "error", err)
			questions = defaultFollowUpQuestions
		}
		return CoverLetterResult{FollowUpNeeded: true, Questions: questions}, nil
	}

	result := CoverLetterResult{CoverLetter: output}

	if jobApplicationID > 0 {
		id, err := s.store.CreateCoverLetter(ctx, store.CoverLetter{
			JobApplicationID: jobApplicationID,
			CoverLetter:      output,
		})
		if err != nil {
			return CoverLetterResult{}, fmt.Errorf("persist cover letter: %w", err)
		}
		result.CoverLetterID = id
	}

	return result, nil
}

// CoverLetterFinal writes the letter using the follow-up answers as extra
// context.
func (s *Service) CoverLetterFinal(ctx context.Context, resumeText, jobDescription, followUpAnswers string, jobApplicationID int64) (string, int64, error) {
	letter, err := s.generator.Generate(ctx, coverLetterFinalPrompt(resumeText, jobDescription, followUpAnswers, s.portfolioURL))
	if err != nil {
		return "", 0, fmt.Errorf("generate cover letter: %w", err)
	}
	letter = strings.TrimSpace(letter)

	var letterID int64
	if jobApplicationID > 0 {
		letterID, err = s.store.CreateCoverLetter(ctx, store.CoverLetter{
			JobApplicationID: jobApplicationID,
			CoverLetter:      letter,
		})
		if err != nil {
			return "", 0, fmt.Errorf("persist cover letter: %w", err)
		}
	}

	return letter, letterID, nil
}

// CreateJobApplication records a new application. The description is
// embedded when an embedder is configured; embedding failures are logged
// and never block persistence.
func (s *Service) CreateJobApplication(ctx context.Context, app store.JobApplication) (store.JobApplication, error) {
	if app.DateApplied.IsZero() {
		app.DateApplied = store.Today()
	}

	var embedding []float32
	if s.embedder != nil {
		var err error
		embedding, err = s.embedder.Embed(ctx, app.JobDescription)
		if err != nil {
			slog.Warn("failed to embed job description", "error", err)
			embedding = nil
		}
	}

	id, err := s.store.CreateJobApplication(ctx, app, embedding)
	if err != nil {
		return store.JobApplication{}, fmt.Errorf("persist job application: %w", err)
	}
	app.ID = id

	return app, nil
}

func (s *Service) GetJobApplication(ctx context.Context, id int64) (store.JobApplication, error) {
	return s.store.GetJobApplication(ctx, id)
}

func (s *Service) ListJobApplications(ctx context.Context) ([]store.JobApplication, error) {
	return s.store.ListJobApplications(ctx)
}

// SimilarApplications finds past applications whose descriptions are close
// to the given one.
func (s *Service) SimilarApplications(ctx context.Context, jobDescription string, limit int) ([]store.SimilarApplication, error) {
	if s.embedder == nil {
		return nil, errors.New("no embedder configured")
	}

	vector, err := s.embedder.Embed(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("embed job description: %w", err)
	}

	return s.store.SearchSimilarApplications(ctx, vector, limit)
}

func capMessage(message string) string {
	message = strings.TrimSpace(message)
	if len(message) > maxMessageLength {
		message = strings.TrimRight(message[:maxMessageLength], " \n")
	}
	return message
}
