package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atharvakapadnis/agentic-tasks/store"
	"github.com/atharvakapadnis/agentic-tasks/toolkit"
)

type fakeGenerator struct {
	output string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.output, g.err
}

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (e *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.vector, e.err
}

type memoryStore struct {
	persons     []store.Person
	apps        []store.JobApplication
	embeddings  map[int64][]float32
	inquiries   []store.JobInquiry
	suggestions []store.ResumeSuggestion
	letters     []store.CoverLetter
}

func newMemoryStore() *memoryStore {
	return &memoryStore{embeddings: map[int64][]float32{}}
}

func (m *memoryStore) Migrate(ctx context.Context) error { return nil }

func (m *memoryStore) CreatePerson(ctx context.Context, p store.Person) (int64, error) {
	p.ID = int64(len(m.persons) + 1)
	m.persons = append(m.persons, p)
	return p.ID, nil
}

func (m *memoryStore) CreateJobApplication(ctx context.Context, app store.JobApplication, embedding []float32) (int64, error) {
	app.ID = int64(len(m.apps) + 1)
	m.apps = append(m.apps, app)
	if len(embedding) > 0 {
		m.embeddings[app.ID] = embedding
	}
	return app.ID, nil
}

func (m *memoryStore) GetJobApplication(ctx context.Context, id int64) (store.JobApplication, error) {
	for _, app := range m.apps {
		if app.ID == id {
			return app, nil
		}
	}
	return store.JobApplication{}, store.ErrNotFound
}

func (m *memoryStore) ListJobApplications(ctx context.Context) ([]store.JobApplication, error) {
	return m.apps, nil
}

func (m *memoryStore) SearchSimilarApplications(ctx context.Context, embedding []float32, limit int) ([]store.SimilarApplication, error) {
	var out []store.SimilarApplication
	for _, app := range m.apps {
		if _, ok := m.embeddings[app.ID]; !ok {
			continue
		}
		out = append(out, store.SimilarApplication{JobApplication: app, Score: 1})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryStore) CreateJobInquiry(ctx context.Context, inquiry store.JobInquiry) (int64, error) {
	inquiry.ID = int64(len(m.inquiries) + 1)
	m.inquiries = append(m.inquiries, inquiry)
	return inquiry.ID, nil
}

func (m *memoryStore) CreateResumeSuggestion(ctx context.Context, suggestion store.ResumeSuggestion) (int64, error) {
	suggestion.ID = int64(len(m.suggestions) + 1)
	m.suggestions = append(m.suggestions, suggestion)
	return suggestion.ID, nil
}

func (m *memoryStore) CreateCoverLetter(ctx context.Context, letter store.CoverLetter) (int64, error) {
	letter.ID = int64(len(m.letters) + 1)
	m.letters = append(m.letters, letter)
	return letter.ID, nil
}

func (m *memoryStore) Ping(ctx context.Context) error { return nil }
func (m *memoryStore) Close() error                   { return nil }

func TestConnectionRequest(t *testing.T) {
	gen := &fakeGenerator{output: "Hi Alex, impressed by your AI work. Let's connect!"}
	st := newMemoryStore()
	svc := New(gen, st)

	message, personID, err := svc.ConnectionRequest(context.Background(), "Alex Johnson", "Data Scientist", "Tech Corp", "Works on AI.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message != gen.output {
		t.Errorf("unexpected message: %q", message)
	}
	if !strings.Contains(gen.prompt, "Alex Johnson") {
		t.Errorf("prompt should mention the person: %q", gen.prompt)
	}
	if personID != 1 || len(st.persons) != 1 {
		t.Errorf("expected person persisted, got id %d, persons %v", personID, st.persons)
	}
	if st.persons[0].MessageSent != message {
		t.Errorf("expected message stored on person record")
	}
}

func TestConnectionRequestCapsLength(t *testing.T) {
	gen := &fakeGenerator{output: strings.Repeat("a", 500)}
	svc := New(gen, newMemoryStore())

	message, _, err := svc.ConnectionRequest(context.Background(), "Alex", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(message) > 300 {
		t.Errorf("message should be capped at 300 chars, got %d", len(message))
	}
}

func TestConnectionRequestRequiresName(t *testing.T) {
	svc := New(&fakeGenerator{output: "hi"}, newMemoryStore())

	if _, _, err := svc.ConnectionRequest(context.Background(), "  ", "", "", ""); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestJobInquiryPersistsOnlyWithIDs(t *testing.T) {
	gen := &fakeGenerator{output: "I've applied to your team. Open to a chat?"}
	st := newMemoryStore()
	svc := New(gen, st)

	_, inquiryID, err := svc.JobInquiry(context.Background(), "Bob", "", "posting", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inquiryID != 0 || len(st.inquiries) != 0 {
		t.Errorf("expected no persistence without ids")
	}

	_, inquiryID, err = svc.JobInquiry(context.Background(), "Bob", "", "posting", 3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inquiryID != 1 || len(st.inquiries) != 1 {
		t.Fatalf("expected inquiry persisted, got %v", st.inquiries)
	}
	if st.inquiries[0].PersonID != 3 || st.inquiries[0].JobApplicationID != 7 {
		t.Errorf("unexpected inquiry record: %+v", st.inquiries[0])
	}
	if st.inquiries[0].DateReachedOut.IsZero() {
		t.Error("expected date_reached_out to default to today")
	}
}

func TestResumeOptimization(t *testing.T) {
	gen := &fakeGenerator{output: "Emphasize predictive analytics."}
	st := newMemoryStore()
	svc := New(gen, st)

	suggestions, suggestionID, err := svc.ResumeOptimization(context.Background(), "resume", "job description", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestions != gen.output {
		t.Errorf("unexpected suggestions: %q", suggestions)
	}
	if suggestionID != 1 || st.suggestions[0].JobApplicationID != 4 {
		t.Errorf("expected suggestion persisted against application 4: %+v", st.suggestions)
	}
}

func TestCoverLetterInitialSufficientContext(t *testing.T) {
	gen := &fakeGenerator{output: "Dear Hiring Manager, ..."}
	st := newMemoryStore()
	svc := New(gen, st)

	result, err := svc.CoverLetterInitial(context.Background(), "resume", "jd", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FollowUpNeeded {
		t.Error("did not expect follow-up")
	}
	if result.CoverLetter != gen.output {
		t.Errorf("unexpected letter: %q", result.CoverLetter)
	}
	if result.CoverLetterID != 1 || len(st.letters) != 1 {
		t.Errorf("expected letter persisted: %+v", st.letters)
	}
}

func TestCoverLetterInitialFollowUp(t *testing.T) {
	gen := &fakeGenerator{output: `FOLLOW-UP: ["Why this company?", "Which projects?"]`}
	st := newMemoryStore()
	svc := New(gen, st)

	result, err := svc.CoverLetterInitial(context.Background(), "resume", "jd", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.FollowUpNeeded {
		t.Fatal("expected follow-up")
	}
	if len(result.Questions) != 2 || result.Questions[0] != "Why this company?" {
		t.Errorf("unexpected questions: %v", result.Questions)
	}
	if len(st.letters) != 0 {
		t.Error("follow-up path must not persist a letter")
	}
}

func TestCoverLetterInitialFollowUpFallback(t *testing.T) {
	gen := &fakeGenerator{output: `FOLLOW-UP: not-json`}
	svc := New(gen, newMemoryStore())

	result, err := svc.CoverLetterInitial(context.Background(), "resume", "jd", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.FollowUpNeeded {
		t.Fatal("expected follow-up")
	}
	if len(result.Questions) != len(defaultFollowUpQuestions) {
		t.Errorf("expected default questions, got %v", result.Questions)
	}
}

func TestCoverLetterFinal(t *testing.T) {
	gen := &fakeGenerator{output: "Final letter."}
	st := newMemoryStore()
	svc := New(gen, st)

	letter, letterID, err := svc.CoverLetterFinal(context.Background(), "resume", "jd", "answers", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter != "Final letter." || letterID != 1 {
		t.Errorf("unexpected result: %q %d", letter, letterID)
	}
	if !strings.Contains(gen.prompt, "answers") {
		t.Errorf("prompt should include follow-up answers: %q", gen.prompt)
	}
}

func TestGeneratorFailurePropagates(t *testing.T) {
	boom := errors.New("rate limited")
	svc := New(&fakeGenerator{err: boom}, newMemoryStore())

	if _, _, err := svc.ConnectionRequest(context.Background(), "Alex", "", "", ""); !errors.Is(err, boom) {
		t.Errorf("expected generator error to propagate, got %v", err)
	}
}

func TestCreateJobApplicationEmbeds(t *testing.T) {
	st := newMemoryStore()
	svc := New(&fakeGenerator{}, st, WithEmbedder(&fakeEmbedder{vector: []float32{0.1, 0.2}}))

	app, err := svc.CreateJobApplication(context.Background(), store.JobApplication{
		Company:        "Tech Corp",
		JobTitle:       "Data Scientist",
		JobDescription: "ML role",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ID != 1 {
		t.Errorf("expected id 1, got %d", app.ID)
	}
	if app.DateApplied.IsZero() {
		t.Error("expected date_applied to default to today")
	}
	if len(st.embeddings[1]) != 2 {
		t.Errorf("expected embedding stored: %v", st.embeddings)
	}
}

func TestCreateJobApplicationEmbedFailureIsNonFatal(t *testing.T) {
	st := newMemoryStore()
	svc := New(&fakeGenerator{}, st, WithEmbedder(&fakeEmbedder{err: errors.New("down")}))

	app, err := svc.CreateJobApplication(context.Background(), store.JobApplication{
		Company: "A", JobTitle: "B", JobDescription: "C",
	})
	if err != nil {
		t.Fatalf("embedding failure should not block persistence: %v", err)
	}
	if len(st.embeddings[app.ID]) != 0 {
		t.Error("expected no embedding stored")
	}
}

func TestSimilarApplicationsRequiresEmbedder(t *testing.T) {
	svc := New(&fakeGenerator{}, newMemoryStore())

	if _, err := svc.SimilarApplications(context.Background(), "jd", 5); err == nil {
		t.Error("expected error without embedder")
	}
}

func TestRegisterTools(t *testing.T) {
	gen := &fakeGenerator{output: "Hi there!"}
	svc := New(gen, newMemoryStore())

	reg := toolkit.NewRegistry()
	svc.RegisterTools(reg)

	expected := []string{
		"linkedin_connection_request",
		"linkedin_job_inquiry",
		"resume_optimization",
		"cover_letter_initial",
		"cover_letter_final",
		"similar_applications",
	}

	names := reg.List()
	if len(names) != len(expected) {
		t.Fatalf("expected %d tools, got %v", len(expected), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, names[i])
		}
	}

	result, err := reg.Execute(context.Background(), "linkedin_connection_request", map[string]any{
		"name": "Alex", "role": "", "company": "", "about_section": "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, ok := result.(map[string]any)
	if !ok || out["message"] != "Hi there!" {
		t.Errorf("unexpected tool result: %v", result)
	}
}
