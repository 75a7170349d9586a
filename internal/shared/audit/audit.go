// Package audit declares the best-effort audit trail used by every mutating
// use case.
package audit

import "context"

// Entry is one "who did what to which entity" record.
type Entry struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Details    string
}

// Recorder writes audit entries. Record has no error result: implementations
// swallow and report their own failures so a caller can never fail because
// the audit trail could not be written.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Nop discards entries.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}
