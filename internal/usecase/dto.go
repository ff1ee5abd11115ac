package usecase

import "github.com/xavierca1/lead-intake/internal/entity"

type CreateLeadInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	ResumeS3Path string `json:"resume_s3_path"`
}

// UpdateLeadInput is a partial update: nil means "leave as is".
type UpdateLeadInput struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	ResumeS3Path *string `json:"resume_s3_path"`
	State        *string `json:"state"`
}

type ListLeadsInput struct {
	Skip  int
	Limit int
	State *entity.LeadState
}

// DefaultListLimit is applied by the HTTP layer when the limit query
// parameter is absent. An explicit limit, including 0, is honored as is.
const DefaultListLimit = 100
