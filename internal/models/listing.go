package models

// ListingRow is one (user, section) pair shown on the dashboard.
// Section fields are nil for users that have no section yet.
// swagger:model ListingRow
type ListingRow struct {
	UserID       int64   `json:"id_usuario" db:"user_id"`
	Name         string  `json:"nome" db:"name"`
	Email        string  `json:"email" db:"email"`
	SectionID    *int64  `json:"id_secao" db:"section_id"`
	CompletedAt  *string `json:"data_realizacao" db:"completed_at"`
	TotalAnswers int     `json:"total_respostas" db:"total_answers"`
	TotalPhotos  int     `json:"total_fotos" db:"total_photos"`
}
