package catalog

// SortBy selects the field a project listing is ordered on.
type SortBy int

// SortBy values.
const (
	SortByProjectName SortBy = iota
	SortByGameTitle
	SortByModificationTime
	SortByCreationTime
	SortByRelevance
)

// DefaultDirection returns the natural direction for the sort field:
// alphabetic fields ascend, time fields and relevance descend.
func (s SortBy) DefaultDirection() Direction {
	switch s {
	case SortByModificationTime, SortByCreationTime, SortByRelevance:
		return Descending
	default:
		return Ascending
	}
}

// Direction is the sort direction.
type Direction int

// Direction values.
const (
	Ascending Direction = iota
	Descending
)

// FacetKind distinguishes the supported listing filters.
type FacetKind int

// FacetKind values.
const (
	FacetQuery FacetKind = iota
	FacetPublisher
	FacetYear
	FacetTag
	FacetOwner
	FacetPlayer
)

// Facet is a single listing filter. Multiple facets combine with AND.
type Facet struct {
	kind  FacetKind
	value string
}

// QueryFacet filters by full-text search match.
func QueryFacet(q string) Facet { return Facet{kind: FacetQuery, value: q} }

// PublisherFacet filters by exact publisher.
func PublisherFacet(p string) Facet { return Facet{kind: FacetPublisher, value: p} }

// YearFacet filters by exact publication year.
func YearFacet(y string) Facet { return Facet{kind: FacetYear, value: y} }

// TagFacet filters by tag.
func TagFacet(t string) Facet { return Facet{kind: FacetTag, value: t} }

// OwnerFacet filters by owning username.
func OwnerFacet(u string) Facet { return Facet{kind: FacetOwner, value: u} }

// PlayerFacet filters by playing username.
func PlayerFacet(u string) Facet { return Facet{kind: FacetPlayer, value: u} }

// Kind returns the facet kind.
func (f Facet) Kind() FacetKind { return f.kind }

// Value returns the facet value.
func (f Facet) Value() string { return f.value }

// AnchorKind distinguishes the seek-pagination window anchors.
type AnchorKind int

// AnchorKind values.
const (
	AnchorStart AnchorKind = iota
	AnchorEnd
	AnchorAfter
	AnchorBefore
)

// Anchor positions a seek-paginated window relative to a previously seen
// (sort field value, project ID) pair. ID 0 is unused and sorts before all
// other rows carrying the same field value, so After(value, 0) starts at
// the first row with that value.
type Anchor struct {
	kind  AnchorKind
	field string
	id    int64
}

// StartAnchor positions the window at the beginning of the result set.
func StartAnchor() Anchor { return Anchor{kind: AnchorStart} }

// EndAnchor positions the window at the end of the result set.
func EndAnchor() Anchor { return Anchor{kind: AnchorEnd} }

// AfterAnchor positions the window after the given (field, id) pair.
func AfterAnchor(field string, id int64) Anchor {
	return Anchor{kind: AnchorAfter, field: field, id: id}
}

// BeforeAnchor positions the window before the given (field, id) pair.
func BeforeAnchor(field string, id int64) Anchor {
	return Anchor{kind: AnchorBefore, field: field, id: id}
}

// Kind returns the anchor kind.
func (a Anchor) Kind() AnchorKind { return a.kind }

// Field returns the anchor's sort field value.
func (a Anchor) Field() string { return a.field }

// ID returns the anchor's project ID.
func (a Anchor) ID() int64 { return a.id }

// Listing describes one page of a project listing.
type Listing struct {
	Facets []Facet
	SortBy SortBy
	Dir    Direction
	Anchor Anchor
	Limit  int
}

// ProjectSummary is a listing row: the current project fields without the
// readme, plus the search rank when a query facet is present.
type ProjectSummary struct {
	Rank        float64
	ID          int64
	Name        string
	Slug        string
	Description string
	Revision    int64
	CreatedAt   int64
	ModifiedAt  int64
	Game        GameData
	Image       *string
}
