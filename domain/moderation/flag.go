// Package moderation provides the project flagging domain types.
package moderation

import (
	"errors"
	"fmt"
)

// Invariant violations reported by Validate.
var (
	ErrMessageRequired  = errors.New("flag kind requires a message")
	ErrMessageForbidden = errors.New("flag kind does not take a message")
	ErrUnknownFlagKind  = errors.New("unknown flag kind")
	ErrClosePair        = errors.New("closed_at and closed_by must both be set or both be null")
	ErrCloseOrder       = errors.New("closed_at precedes flagged_at")
)

// FlagKind categorizes a report. Stored values are part of the schema.
type FlagKind int

// FlagKind values.
const (
	FlagInappropriate FlagKind = 0
	FlagSpam          FlagKind = 1
	FlagIllegal       FlagKind = 2
	FlagOther         FlagKind = 3
)

// RequiresMessage reports whether the kind needs an explanation.
func (k FlagKind) RequiresMessage() bool {
	return k == FlagIllegal || k == FlagOther
}

// String returns the kind's name.
func (k FlagKind) String() string {
	switch k {
	case FlagInappropriate:
		return "inappropriate"
	case FlagSpam:
		return "spam"
	case FlagIllegal:
		return "illegal"
	case FlagOther:
		return "other"
	default:
		return fmt.Sprintf("flag(%d)", int(k))
	}
}

// ParseFlagKind converts a kind name to its FlagKind.
func ParseFlagKind(s string) (FlagKind, error) {
	switch s {
	case "inappropriate":
		return FlagInappropriate, nil
	case "spam":
		return FlagSpam, nil
	case "illegal":
		return FlagIllegal, nil
	case "other":
		return FlagOther, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFlagKind, s)
	}
}

// Flag is a report against a project with an open/closed lifecycle.
type Flag struct {
	id        int64
	projectID int64
	flaggedBy int64
	kind      FlagKind
	message   *string
	flaggedAt int64
	closedAt  *int64
	closedBy  *int64
}

// NewFlag creates an open report. Message is required for the illegal and
// other kinds and must be absent otherwise; Validate enforces this.
func NewFlag(projectID, flaggedBy int64, kind FlagKind, message *string, flaggedAt int64) Flag {
	return Flag{
		projectID: projectID,
		flaggedBy: flaggedBy,
		kind:      kind,
		message:   message,
		flaggedAt: flaggedAt,
	}
}

// NewFlagWithID reconstructs a report from stored fields.
func NewFlagWithID(
	id, projectID, flaggedBy int64,
	kind FlagKind,
	message *string,
	flaggedAt int64,
	closedAt, closedBy *int64,
) Flag {
	f := NewFlag(projectID, flaggedBy, kind, message, flaggedAt)
	f.id = id
	f.closedAt = closedAt
	f.closedBy = closedBy
	return f
}

// ID returns the flag ID.
func (f Flag) ID() int64 { return f.id }

// ProjectID returns the reported project's ID.
func (f Flag) ProjectID() int64 { return f.projectID }

// FlaggedBy returns the reporting user's ID.
func (f Flag) FlaggedBy() int64 { return f.flaggedBy }

// Kind returns the report category.
func (f Flag) Kind() FlagKind { return f.kind }

// Message returns the explanation, or nil for kinds that take none.
func (f Flag) Message() *string { return f.message }

// FlaggedAt returns the report time in nanoseconds since the epoch.
func (f Flag) FlaggedAt() int64 { return f.flaggedAt }

// ClosedAt returns the closing time, or nil while open.
func (f Flag) ClosedAt() *int64 { return f.closedAt }

// ClosedBy returns the closing user's ID, or nil while open.
func (f Flag) ClosedBy() *int64 { return f.closedBy }

// Open reports whether the flag has not been closed.
func (f Flag) Open() bool { return f.closedAt == nil }

// WithID returns a copy with the given ID.
func (f Flag) WithID(id int64) Flag {
	f.id = id
	return f
}

// Close returns a copy closed at the given time by the given user.
func (f Flag) Close(at, by int64) Flag {
	f.closedAt = &at
	f.closedBy = &by
	return f
}

// Validate checks the message and lifecycle invariants.
func (f Flag) Validate() error {
	switch {
	case f.kind < FlagInappropriate || f.kind > FlagOther:
		return fmt.Errorf("%w: %d", ErrUnknownFlagKind, int(f.kind))
	case f.kind.RequiresMessage() && (f.message == nil || *f.message == ""):
		return fmt.Errorf("%w: %s", ErrMessageRequired, f.kind)
	case !f.kind.RequiresMessage() && f.message != nil:
		return fmt.Errorf("%w: %s", ErrMessageForbidden, f.kind)
	}
	if (f.closedAt == nil) != (f.closedBy == nil) {
		return ErrClosePair
	}
	if f.closedAt != nil && *f.closedAt < f.flaggedAt {
		return fmt.Errorf("%w: %d < %d", ErrCloseOrder, *f.closedAt, f.flaggedAt)
	}
	return nil
}
