package models

// UserDB represents a user record in the database
type UserDB struct {
	UserID int64  `json:"id_usuario" db:"id"` // Identifier supplied by the mobile client
	Name   string `json:"nome" db:"name"`     // Display name, may be empty
	Email  string `json:"email" db:"email"`   // Unique email, empty when not provided
}
