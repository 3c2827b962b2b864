package catalog

import "errors"

// ErrEmptyPatch indicates a patch with no fields to change.
var ErrEmptyPatch = errors.New("patch changes nothing")

// Optional is a three-state patch field: absent (leave unchanged), set to a
// value, or cleared to null.
type Optional[T any] struct {
	present bool
	value   *T
}

// Set returns an Optional that sets the field to v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: &v}
}

// Clear returns an Optional that clears the field to null.
func Clear[T any]() Optional[T] {
	return Optional[T]{present: true}
}

// Present reports whether the patch touches the field at all.
func (o Optional[T]) Present() bool { return o.present }

// Or returns the patched value when present, otherwise the current value.
func (o Optional[T]) Or(current *T) *T {
	if o.present {
		return o.value
	}
	return current
}

// ProjectPatch describes a partial update of a project's content. Nil
// pointer fields are left unchanged; Optional fields can additionally clear
// a nullable column.
type ProjectPatch struct {
	Description   *string
	GameTitle     *string
	GameTitleSort *string
	GamePublisher *string
	GameYear      *string
	PlayersMin    Optional[int64]
	PlayersMax    Optional[int64]
	LengthMin     Optional[int64]
	LengthMax     Optional[int64]
	Readme        *string
	Image         Optional[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p.Description == nil &&
		p.GameTitle == nil &&
		p.GameTitleSort == nil &&
		p.GamePublisher == nil &&
		p.GameYear == nil &&
		!p.PlayersMin.Present() &&
		!p.PlayersMax.Present() &&
		!p.LengthMin.Present() &&
		!p.LengthMax.Present() &&
		p.Readme == nil &&
		!p.Image.Present()
}

// Validate rejects empty patches.
func (p ProjectPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	return nil
}

func orString(patch *string, current string) string {
	if patch != nil {
		return *patch
	}
	return current
}

// Apply merges the patch onto a current snapshot, producing the content of
// the next revision.
func (p ProjectPatch) Apply(cur ProjectData) ProjectData {
	game := NewGameData(
		orString(p.GameTitle, cur.game.title),
		orString(p.GameTitleSort, cur.game.titleSort),
		orString(p.GamePublisher, cur.game.publisher),
		orString(p.GameYear, cur.game.year),
		p.PlayersMin.Or(cur.game.playersMin),
		p.PlayersMax.Or(cur.game.playersMax),
		p.LengthMin.Or(cur.game.lengthMin),
		p.LengthMax.Or(cur.game.lengthMax),
	)
	return NewProjectData(
		cur.projectID,
		cur.name,
		cur.slug,
		orString(p.Description, cur.description),
		game,
		orString(p.Readme, cur.readme),
		p.Image.Or(cur.image),
	)
}
