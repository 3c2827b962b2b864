// Package catalog provides the project catalog domain types: the current
// project row, its revisioned content snapshots, and tags.
package catalog

import (
	"errors"
	"fmt"
)

// Invariant violations reported by Validate.
var (
	ErrInvalidName    = errors.New("invalid project name")
	ErrPlayerBounds   = errors.New("game_players_min exceeds game_players_max")
	ErrLengthBounds   = errors.New("game_length_min exceeds game_length_max")
	ErrBadRevision    = errors.New("revision must be at least 1")
	ErrEmptyGameTitle = errors.New("game title must not be empty")
)

// GameData holds the game metadata fields carried by every content snapshot.
type GameData struct {
	title      string
	titleSort  string
	publisher  string
	year       string
	playersMin *int64
	playersMax *int64
	lengthMin  *int64
	lengthMax  *int64
}

// NewGameData creates game metadata. The min/max bounds are optional; pass
// nil for an open bound.
func NewGameData(title, titleSort, publisher, year string, playersMin, playersMax, lengthMin, lengthMax *int64) GameData {
	return GameData{
		title:      title,
		titleSort:  titleSort,
		publisher:  publisher,
		year:       year,
		playersMin: playersMin,
		playersMax: playersMax,
		lengthMin:  lengthMin,
		lengthMax:  lengthMax,
	}
}

// Title returns the game title.
func (g GameData) Title() string { return g.title }

// TitleSort returns the sortable form of the title ("Game of Tests, A").
func (g GameData) TitleSort() string { return g.titleSort }

// Publisher returns the publisher name.
func (g GameData) Publisher() string { return g.publisher }

// Year returns the publication year as free text.
func (g GameData) Year() string { return g.year }

// PlayersMin returns the minimum player count, or nil when unbounded.
func (g GameData) PlayersMin() *int64 { return g.playersMin }

// PlayersMax returns the maximum player count, or nil when unbounded.
func (g GameData) PlayersMax() *int64 { return g.playersMax }

// LengthMin returns the minimum play length, or nil when unbounded.
func (g GameData) LengthMin() *int64 { return g.lengthMin }

// LengthMax returns the maximum play length, or nil when unbounded.
func (g GameData) LengthMax() *int64 { return g.lengthMax }

// Validate checks the bound-ordering invariants.
func (g GameData) Validate() error {
	if g.playersMin != nil && g.playersMax != nil && *g.playersMin > *g.playersMax {
		return fmt.Errorf("%w: %d > %d", ErrPlayerBounds, *g.playersMin, *g.playersMax)
	}
	if g.lengthMin != nil && g.lengthMax != nil && *g.lengthMin > *g.lengthMax {
		return fmt.Errorf("%w: %d > %d", ErrLengthBounds, *g.lengthMin, *g.lengthMax)
	}
	return nil
}

// Project is the current catalog row: the latest revision's content
// denormalized for fast lookup, plus identity and revision bookkeeping.
type Project struct {
	id             int64
	name           string
	normalizedName string
	slug           string
	description    string
	revision       int64
	createdAt      int64
	modifiedAt     int64
	modifiedBy     int64
	game           GameData
	readme         string
	image          *string
}

// NewProject reconstructs a Project from stored fields.
func NewProject(
	id int64,
	name, normalizedName, slug, description string,
	revision, createdAt, modifiedAt, modifiedBy int64,
	game GameData,
	readme string,
	image *string,
) Project {
	return Project{
		id:             id,
		name:           name,
		normalizedName: normalizedName,
		slug:           slug,
		description:    description,
		revision:       revision,
		createdAt:      createdAt,
		modifiedAt:     modifiedAt,
		modifiedBy:     modifiedBy,
		game:           game,
		readme:         readme,
		image:          image,
	}
}

// ID returns the project ID.
func (p Project) ID() int64 { return p.id }

// Name returns the unique project name.
func (p Project) Name() string { return p.name }

// NormalizedName returns the canonical lookup form of the name.
func (p Project) NormalizedName() string { return p.normalizedName }

// Slug returns the URL-safe form of the name.
func (p Project) Slug() string { return p.slug }

// Description returns the project description.
func (p Project) Description() string { return p.description }

// Revision returns the current revision number.
func (p Project) Revision() int64 { return p.revision }

// CreatedAt returns the creation time in nanoseconds since the epoch.
func (p Project) CreatedAt() int64 { return p.createdAt }

// ModifiedAt returns the last modification time in nanoseconds since the epoch.
func (p Project) ModifiedAt() int64 { return p.modifiedAt }

// ModifiedBy returns the ID of the user who made the last modification.
func (p Project) ModifiedBy() int64 { return p.modifiedBy }

// Game returns the game metadata.
func (p Project) Game() GameData { return p.game }

// Readme returns the readme text.
func (p Project) Readme() string { return p.readme }

// Image returns the project image filename, or nil when unset.
func (p Project) Image() *string { return p.image }

// Validate checks the project invariants.
func (p Project) Validate() error {
	if p.name == "" {
		return ErrInvalidName
	}
	if p.revision < 1 {
		return ErrBadRevision
	}
	return p.game.Validate()
}
