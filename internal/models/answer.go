package models

// Answer is a single numbered question response.
// swagger:model Answer
type Answer struct {
	// Question number
	// example: 1
	QuestionNumber int `json:"pergunta_num" db:"question_number"`

	// Integer response value
	// example: 4
	Value int `json:"valor_resposta" db:"value"`
}

// AnswerDB represents an answer row in the database
type AnswerDB struct {
	AnswerID       int64 `db:"id"`              // Auto-generated primary key
	UserID         int64 `db:"user_id"`         // Owner of the answer
	SectionID      int64 `db:"section_id"`      // Section the answer belongs to
	QuestionNumber int   `db:"question_number"` // Question number inside the section
	Value          int   `db:"value"`           // Integer response
}
