package models

// SectionDB represents a completed survey section
type SectionDB struct {
	SectionID   int64  `json:"id_secao" db:"id"`                  // Identifier supplied by the mobile client
	UserID      int64  `json:"id_usuario" db:"user_id"`           // Owner of the section
	CompletedAt string `json:"data_realizacao" db:"completed_at"` // Server-local completion time
}

// SectionOwner is the user and completion time of a section, used to build archives.
type SectionOwner struct {
	UserID      int64  `db:"user_id"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	CompletedAt string `db:"completed_at"`
}
