package models

// SectionArchive holds everything needed to stream a section ZIP.
// It is fully loaded before any byte is written to the client.
type SectionArchive struct {
	SectionID   int64
	Owner       SectionOwner
	Answers     []Answer
	PhotoPaths  []string
	GeneratedAt string
}

// ArchiveManifest is the JSON document stored inside the section ZIP.
type ArchiveManifest struct {
	SectionID    int64    `json:"secao"`
	UserID       int64    `json:"id_usuario"`
	Name         string   `json:"nome"`
	Email        string   `json:"email"`
	GeneratedAt  string   `json:"data_geracao"`
	TotalAnswers int      `json:"total_respostas"`
	Questions    []Answer `json:"perguntas"`
}
