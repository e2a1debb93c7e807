package models

// Photo is a photo entry sent by the mobile client.
// swagger:model Photo
type Photo struct {
	// Activity label the photo was taken for
	// example: caminhada
	Activity string `json:"activity"`

	// Base64 encoded JPEG payload, entries without payload are skipped
	Base64 string `json:"base64,omitempty"`
}

// PhotoDB represents a stored photo row in the database
type PhotoDB struct {
	PhotoID   int64  `db:"id"`         // Auto-generated primary key
	UserID    int64  `db:"user_id"`    // Owner of the photo
	Activity  string `db:"activity"`   // Free-text activity label
	Path      string `db:"path"`       // Path relative to the photo root, e.g. uploads/x.jpg
	SectionID int64  `db:"section_id"` // Section the photo belongs to
}
