package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date stored in a DATE column and rendered as
// YYYY-MM-DD on the wire.
type Date struct {
	time.Time
}

func Today() Date {
	return Date{time.Now().UTC().Truncate(24 * time.Hour)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if len(s) == 0 || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date{v}
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Person is a LinkedIn contact a connection request was generated for.
type Person struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	MessageSent string `json:"message_sent,omitempty"`
}

// JobApplication is the shared record the resume, cover-letter, and inquiry
// artifacts hang off.
type JobApplication struct {
	ID             int64  `json:"id"`
	Company        string `json:"company"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	DateApplied    Date   `json:"date_applied"`
}

// SimilarApplication is a JobApplication with its similarity score from a
// vector search over description embeddings.
type SimilarApplication struct {
	JobApplication
	Score float64 `json:"score"`
}

// JobInquiry links a person to a job application the user already applied to.
type JobInquiry struct {
	ID               int64  `json:"id"`
	PersonID         int64  `json:"person_id"`
	JobApplicationID int64  `json:"job_application_id"`
	DateReachedOut   Date   `json:"date_reached_out"`
	MessageSent      string `json:"message_sent"`
}

type ResumeSuggestion struct {
	ID               int64  `json:"id"`
	JobApplicationID int64  `json:"job_application_id"`
	Suggestions      string `json:"suggestions"`
}

type CoverLetter struct {
	ID               int64  `json:"id"`
	JobApplicationID int64  `json:"job_application_id"`
	CoverLetter      string `json:"cover_letter"`
}
