// Package notes holds the internal staff notes attached to inquiries and
// applications.
package notes

import (
	"slices"
	"time"
)

// UnknownWriter is used when the acting user no longer exists.
const UnknownWriter = "Unknown"

// Note is one staff comment. Notes are stored as a JSON array on the
// owning row and addressed by their position.
type Note struct {
	Text       string    `json:"text"`
	WriterName string    `json:"writer_name"`
	WrittenAt  time.Time `json:"written_at"`
}

// Append returns a new list with a note by writer appended.
func Append(list []Note, text, writer string, at time.Time) []Note {
	if writer == "" {
		writer = UnknownWriter
	}
	out := make([]Note, 0, len(list)+1)
	out = append(out, list...)
	return append(out, Note{Text: text, WriterName: writer, WrittenAt: at.UTC()})
}

// Remove returns a new list without the note at index. ok is false when
// index is out of range.
func Remove(list []Note, index int) (out []Note, ok bool) {
	if index < 0 || index >= len(list) {
		return nil, false
	}
	return slices.Delete(slices.Clone(list), index, index+1), true
}
