// Package entity defines the domain entities for the upload feature.
package entity

// MaxSizeBytes is the largest accepted upload.
const MaxSizeBytes = 20 * 1024 * 1024

// StoredFile is an uploaded file as kept on disk.
type StoredFile struct {
	Name        string
	Path        string
	ContentType string
}
