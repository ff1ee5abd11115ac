package entity

import (
	"errors"
	"strings"
	"time"
)

// LeadState is the lifecycle marker of a Lead. There is no transition
// graph: any state may follow any other.
type LeadState string

const (
	StatePending    LeadState = "PENDING"
	StateReachedOut LeadState = "REACHED_OUT"
)

var (
	ErrEmailAlreadyExists = errors.New("lead with this email already exists")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidState       = errors.New("invalid lead state")
)

func ParseLeadState(s string) (LeadState, error) {
	switch LeadState(s) {
	case StatePending:
		return StatePending, nil
	case StateReachedOut:
		return StateReachedOut, nil
	}
	return "", ErrInvalidState
}

func (s LeadState) Valid() bool {
	return s == StatePending || s == StateReachedOut
}

type Lead struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	ResumeS3Path string    `json:"resume_s3_path"`
	State        LeadState `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LeadPatch carries a partial update. Nil fields are left untouched by
// the repository; updated_at is refreshed regardless. UpdatedAt comes
// from the application clock, the same source that stamps created_at,
// so the updated_at >= created_at invariant survives database clock skew.
type LeadPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	ResumeS3Path *string
	State        *LeadState
	UpdatedAt    time.Time
}

// Factory
func NewLead(firstName, lastName, email, resumeS3Path string) (*Lead, error) {
	now := time.Now().UTC()
	lead := &Lead{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		ResumeS3Path: resumeS3Path,

		State:     StatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.FirstName) == "" {
		return errors.New("first_name is required")
	}
	if strings.TrimSpace(l.LastName) == "" {
		return errors.New("last_name is required")
	}
	if strings.TrimSpace(l.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(l.ResumeS3Path) == "" {
		return errors.New("resume_s3_path is required")
	}
	if !l.State.Valid() {
		return ErrInvalidState
	}
	return nil
}
