package models

// SubmissionEvent is published after a submission has been committed.
type SubmissionEvent struct {
	EventID     string `json:"event_id"`     // Unique event identifier
	Timestamp   int64  `json:"timestamp"`    // Unix time (seconds) of the commit
	UserID      int64  `json:"user_id"`      // Submitting user
	SectionID   int64  `json:"section_id"`   // Stored section
	CompletedAt string `json:"completed_at"` // Section completion time as stored
	Answers     int    `json:"answers"`      // Number of answer rows written
	Photos      int    `json:"photos"`       // Number of photo rows written
}
