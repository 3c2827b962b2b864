package identity

// Ownership links a user to a project they may modify.
// The (user, project) pair is unique.
type Ownership struct {
	userID    int64
	projectID int64
}

// NewOwnership creates an Ownership pair.
func NewOwnership(userID, projectID int64) Ownership {
	return Ownership{userID: userID, projectID: projectID}
}

// UserID returns the owning user's ID.
func (o Ownership) UserID() int64 { return o.userID }

// ProjectID returns the owned project's ID.
func (o Ownership) ProjectID() int64 { return o.projectID }

// PlayRecord links a user to a project they play.
// The (user, project) pair is unique.
type PlayRecord struct {
	userID    int64
	projectID int64
}

// NewPlayRecord creates a PlayRecord pair.
func NewPlayRecord(userID, projectID int64) PlayRecord {
	return PlayRecord{userID: userID, projectID: projectID}
}

// UserID returns the playing user's ID.
func (p PlayRecord) UserID() int64 { return p.userID }

// ProjectID returns the played project's ID.
func (p PlayRecord) ProjectID() int64 { return p.projectID }
