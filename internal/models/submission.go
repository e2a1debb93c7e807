package models

// SubmissionRequest represents the JSON body sent by the mobile client
// swagger:model SubmissionRequest
type SubmissionRequest struct {
	// User identifier
	// required: true
	// example: 7
	UserID *int64 `json:"id_usuario"`

	// Section identifier
	// required: true
	// example: 42
	SectionID *int64 `json:"id_secao"`

	// User name
	// example: Maria
	Name string `json:"nome"`

	// User email
	// example: maria@example.com
	Email string `json:"email"`

	// Answers of the section
	Answers []Answer `json:"respostas"`

	// Photos taken during the section
	Photos []Photo `json:"fotos"`
}

// Submission is a validated submission passed to the service layer.
type Submission struct {
	UserID    int64
	SectionID int64
	Name      string
	Email     string
	Answers   []Answer
	Photos    []Photo
}

// SuccessResponse represents a successful write operation
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	// example: true
	Success bool `json:"success"`

	// Human readable confirmation
	// example: Dados salvos com sucesso!
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: id_usuario ou id_secao ausente
	Error string `json:"error"`
}
