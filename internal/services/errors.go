package services

import "errors"

var (
	// ErrMissingIdentifiers is returned when a submission lacks the user or section id.
	ErrMissingIdentifiers = errors.New("id_usuario or id_secao missing")
	// ErrInvalidPhoto is returned when a photo payload is not valid base64.
	ErrInvalidPhoto = errors.New("invalid photo payload")
	// ErrSectionExists is returned when a section id has already been submitted.
	ErrSectionExists = errors.New("section already exists")
	// ErrSectionNotFound is returned when an archive is requested for an unknown section.
	ErrSectionNotFound = errors.New("section not found")
)
