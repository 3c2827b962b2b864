package persistence

// UserModel represents a user account in the database.
type UserModel struct {
	UserID    int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username  string `gorm:"column:username;uniqueIndex;size:255"`
	CreatedAt int64  `gorm:"column:created_at"`
}

// TableName returns the table name.
func (UserModel) TableName() string {
	return "users"
}

// OwnerModel links a user to a project they may modify.
type OwnerModel struct {
	UserID    int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	ProjectID int64 `gorm:"column:project_id;primaryKey;autoIncrement:false"`

	User    *UserModel           `gorm:"foreignKey:UserID;references:UserID"`
	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (OwnerModel) TableName() string {
	return "owners"
}

// PlayerModel links a user to a project they play.
type PlayerModel struct {
	UserID    int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	ProjectID int64 `gorm:"column:project_id;primaryKey;autoIncrement:false"`

	User    *UserModel           `gorm:"foreignKey:UserID;references:UserID"`
	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (PlayerModel) TableName() string {
	return "players"
}

// ProjectHistoryModel allocates project IDs and records creation times.
// The row outlives everything except a full project deletion.
type ProjectHistoryModel struct {
	ProjectID int64 `gorm:"column:project_id;primaryKey;autoIncrement"`
	CreatedAt int64 `gorm:"column:created_at"`
}

// TableName returns the table name.
func (ProjectHistoryModel) TableName() string {
	return "projects_history"
}

// ProjectModel is the current project row: the latest revision's content
// denormalized for fast lookup.
type ProjectModel struct {
	ProjectID      int64   `gorm:"column:project_id;primaryKey;autoIncrement:false"`
	Name           string  `gorm:"column:name;uniqueIndex;size:255"`
	NormalizedName string  `gorm:"column:normalized_name;uniqueIndex;size:255"`
	Slug           string  `gorm:"column:slug;size:255"`
	CreatedAt      int64   `gorm:"column:created_at"`
	Description    string  `gorm:"column:description;type:text"`
	GameTitle      string  `gorm:"column:game_title;size:255"`
	GameTitleSort  string  `gorm:"column:game_title_sort;size:255"`
	GamePublisher  string  `gorm:"column:game_publisher;size:255"`
	GameYear       string  `gorm:"column:game_year;size:32"`
	GamePlayersMin *int64  `gorm:"column:game_players_min"`
	GamePlayersMax *int64  `gorm:"column:game_players_max"`
	GameLengthMin  *int64  `gorm:"column:game_length_min"`
	GameLengthMax  *int64  `gorm:"column:game_length_max"`
	Readme         string  `gorm:"column:readme;type:text"`
	Image          *string `gorm:"column:image;size:255"`
	ModifiedAt     int64   `gorm:"column:modified_at"`
	ModifiedBy     int64   `gorm:"column:modified_by;index"`
	Revision       int64   `gorm:"column:revision"`

	// A current row without a history row is a corrupt database; the
	// foreign key rejects it at insert time.
	History *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (ProjectModel) TableName() string {
	return "projects"
}

// ProjectDataModel is an immutable content snapshot.
type ProjectDataModel struct {
	ProjectDataID  int64   `gorm:"column:project_data_id;primaryKey;autoIncrement"`
	ProjectID      int64   `gorm:"column:project_id;index"`
	Name           string  `gorm:"column:name;size:255"`
	Slug           string  `gorm:"column:slug;size:255"`
	Description    string  `gorm:"column:description;type:text"`
	GameTitle      string  `gorm:"column:game_title;size:255"`
	GameTitleSort  string  `gorm:"column:game_title_sort;size:255"`
	GamePublisher  string  `gorm:"column:game_publisher;size:255"`
	GameYear       string  `gorm:"column:game_year;size:32"`
	GamePlayersMin *int64  `gorm:"column:game_players_min"`
	GamePlayersMax *int64  `gorm:"column:game_players_max"`
	GameLengthMin  *int64  `gorm:"column:game_length_min"`
	GameLengthMax  *int64  `gorm:"column:game_length_max"`
	Readme         string  `gorm:"column:readme;type:text"`
	Image          *string `gorm:"column:image;size:255"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (ProjectDataModel) TableName() string {
	return "projects_data"
}

// ProjectRevisionModel points a (project, revision) pair at a snapshot.
type ProjectRevisionModel struct {
	ProjectID     int64 `gorm:"column:project_id;primaryKey;autoIncrement:false"`
	Revision      int64 `gorm:"column:revision;primaryKey;autoIncrement:false"`
	ModifiedAt    int64 `gorm:"column:modified_at"`
	ModifiedBy    int64 `gorm:"column:modified_by;index"`
	ProjectDataID int64 `gorm:"column:project_data_id;index"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
	Data    *ProjectDataModel    `gorm:"foreignKey:ProjectDataID;references:ProjectDataID"`
}

// TableName returns the table name.
func (ProjectRevisionModel) TableName() string {
	return "projects_revisions"
}

// TagModel is a free-text label on a project.
type TagModel struct {
	ProjectID int64  `gorm:"column:project_id;primaryKey;autoIncrement:false"`
	Tag       string `gorm:"column:tag;primaryKey;size:255"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (TagModel) TableName() string {
	return "tags"
}

// PackageHistoryModel is the durable record of a package.
type PackageHistoryModel struct {
	PackageID   int64  `gorm:"column:package_id;primaryKey;autoIncrement"`
	ProjectID   int64  `gorm:"column:project_id;index;uniqueIndex:idx_packages_history_sort,priority:1"`
	Name        string `gorm:"column:name;size:255"`
	Slug        string `gorm:"column:slug;size:255"`
	SortKey     int64  `gorm:"column:sort_key;uniqueIndex:idx_packages_history_sort,priority:2"`
	Description string `gorm:"column:description;size:255"`
	CreatedAt   int64  `gorm:"column:created_at"`
	CreatedBy   int64  `gorm:"column:created_by;index"`
	DeletedAt   *int64 `gorm:"column:deleted_at"`
	DeletedBy   *int64 `gorm:"column:deleted_by;index"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (PackageHistoryModel) TableName() string {
	return "packages_history"
}

// PackageModel is the current projection of a live package.
type PackageModel struct {
	PackageID   int64  `gorm:"column:package_id;primaryKey;autoIncrement:false"`
	ProjectID   int64  `gorm:"column:project_id;uniqueIndex:idx_packages_name,priority:1"`
	Name        string `gorm:"column:name;size:255;uniqueIndex:idx_packages_name,priority:2"`
	Slug        string `gorm:"column:slug;size:255"`
	SortKey     int64  `gorm:"column:sort_key"`
	Description string `gorm:"column:description;size:255"`
	CreatedAt   int64  `gorm:"column:created_at"`
	CreatedBy   int64  `gorm:"column:created_by;index"`

	History *PackageHistoryModel `gorm:"foreignKey:PackageID;references:PackageID"`
	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (PackageModel) TableName() string {
	return "packages"
}

// PackageRevisionModel records a package rename or slug change.
type PackageRevisionModel struct {
	PackageRevisionID int64  `gorm:"column:package_revision_id;primaryKey;autoIncrement"`
	PackageID         int64  `gorm:"column:package_id;index"`
	Name              string `gorm:"column:name;size:255"`
	Slug              string `gorm:"column:slug;size:255"`
	ModifiedAt        int64  `gorm:"column:modified_at"`
	ModifiedBy        int64  `gorm:"column:modified_by;index"`

	Package *PackageHistoryModel `gorm:"foreignKey:PackageID;references:PackageID"`
}

// TableName returns the table name.
func (PackageRevisionModel) TableName() string {
	return "package_revisions"
}

// ReleaseHistoryModel is the durable record of a published release. The
// version is decomposed so uniqueness and coarse ordering work in SQL.
type ReleaseHistoryModel struct {
	ReleaseID    int64  `gorm:"column:release_id;primaryKey;autoIncrement"`
	PackageID    int64  `gorm:"column:package_id;index;uniqueIndex:idx_releases_history_version,priority:1"`
	Version      string `gorm:"column:version;size:255"`
	VersionMajor int64  `gorm:"column:version_major;uniqueIndex:idx_releases_history_version,priority:2"`
	VersionMinor int64  `gorm:"column:version_minor;uniqueIndex:idx_releases_history_version,priority:3"`
	VersionPatch int64  `gorm:"column:version_patch;uniqueIndex:idx_releases_history_version,priority:4"`
	VersionPre   string `gorm:"column:version_pre;size:255;uniqueIndex:idx_releases_history_version,priority:5"`
	VersionBuild string `gorm:"column:version_build;size:255;uniqueIndex:idx_releases_history_version,priority:6"`
	URL          string `gorm:"column:url;size:1024"`
	PublishedAt  int64  `gorm:"column:published_at"`
	PublishedBy  int64  `gorm:"column:published_by;index"`
	DeletedAt    *int64 `gorm:"column:deleted_at"`
	DeletedBy    *int64 `gorm:"column:deleted_by;index"`

	Package *PackageHistoryModel `gorm:"foreignKey:PackageID;references:PackageID"`
}

// TableName returns the table name.
func (ReleaseHistoryModel) TableName() string {
	return "releases_history"
}

// ReleaseModel is the current projection of a live release.
type ReleaseModel struct {
	ReleaseID    int64  `gorm:"column:release_id;primaryKey;autoIncrement:false"`
	PackageID    int64  `gorm:"column:package_id;index"`
	Version      string `gorm:"column:version;size:255"`
	VersionMajor int64  `gorm:"column:version_major"`
	VersionMinor int64  `gorm:"column:version_minor"`
	VersionPatch int64  `gorm:"column:version_patch"`
	VersionPre   string `gorm:"column:version_pre;size:255"`
	VersionBuild string `gorm:"column:version_build;size:255"`
	URL          string `gorm:"column:url;size:1024"`
	PublishedAt  int64  `gorm:"column:published_at"`
	PublishedBy  int64  `gorm:"column:published_by;index"`

	History *ReleaseHistoryModel `gorm:"foreignKey:ReleaseID;references:ReleaseID"`
	Package *PackageHistoryModel `gorm:"foreignKey:PackageID;references:PackageID"`
}

// TableName returns the table name.
func (ReleaseModel) TableName() string {
	return "releases"
}

// FileModel is a downloadable artifact attached to a release.
type FileModel struct {
	FileID      int64  `gorm:"column:file_id;primaryKey;autoIncrement"`
	ReleaseID   int64  `gorm:"column:release_id;uniqueIndex:idx_files_release_filename,priority:1"`
	Filename    string `gorm:"column:filename;size:255;uniqueIndex:idx_files_release_filename,priority:2"`
	URL         string `gorm:"column:url;size:1024"`
	Size        int64  `gorm:"column:size"`
	Checksum    string `gorm:"column:checksum;size:64"`
	Requires    string `gorm:"column:requires;size:255"`
	ContentType string `gorm:"column:content_type;size:255"`
	PublishedAt int64  `gorm:"column:published_at"`
	PublishedBy int64  `gorm:"column:published_by;index"`

	Release *ReleaseHistoryModel `gorm:"foreignKey:ReleaseID;references:ReleaseID"`
}

// TableName returns the table name.
func (FileModel) TableName() string {
	return "files"
}

// ImageRevisionModel is an append-only record of an image upload.
type ImageRevisionModel struct {
	ImageRevisionID int64  `gorm:"column:image_revision_id;primaryKey;autoIncrement"`
	ProjectID       int64  `gorm:"column:project_id;index"`
	Filename        string `gorm:"column:filename;size:255"`
	URL             string `gorm:"column:url;size:1024"`
	ContentType     string `gorm:"column:content_type;size:255"`
	PublishedAt     int64  `gorm:"column:published_at"`
	PublishedBy     int64  `gorm:"column:published_by;index"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (ImageRevisionModel) TableName() string {
	return "image_revisions"
}

// ImageModel is the current image per (project, filename).
type ImageModel struct {
	ProjectID   int64  `gorm:"column:project_id;primaryKey;autoIncrement:false"`
	Filename    string `gorm:"column:filename;primaryKey;size:255"`
	URL         string `gorm:"column:url;size:1024"`
	ContentType string `gorm:"column:content_type;size:255"`
	PublishedAt int64  `gorm:"column:published_at"`
	PublishedBy int64  `gorm:"column:published_by;index"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (ImageModel) TableName() string {
	return "images"
}

// GalleryHistoryModel is the append-only gallery record. Edits and moves
// retire a row and insert a replacement; retired rows keep their sort keys,
// so uniqueness of (project, sort_key) is enforced on the live projection.
type GalleryHistoryModel struct {
	GalleryID   int64  `gorm:"column:gallery_id;primaryKey;autoIncrement"`
	ProjectID   int64  `gorm:"column:project_id;index"`
	SortKey     []byte `gorm:"column:sort_key"`
	Filename    string `gorm:"column:filename;size:255"`
	Description string `gorm:"column:description;type:text"`
	PublishedAt int64  `gorm:"column:published_at"`
	PublishedBy int64  `gorm:"column:published_by;index"`
	RemovedAt   *int64 `gorm:"column:removed_at"`
	RemovedBy   *int64 `gorm:"column:removed_by;index"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (GalleryHistoryModel) TableName() string {
	return "galleries_history"
}

// GalleryModel is the current projection of the live gallery entries.
type GalleryModel struct {
	GalleryID   int64  `gorm:"column:gallery_id;primaryKey;autoIncrement:false"`
	ProjectID   int64  `gorm:"column:project_id;uniqueIndex:idx_galleries_sort,priority:1"`
	SortKey     []byte `gorm:"column:sort_key;uniqueIndex:idx_galleries_sort,priority:2"`
	Filename    string `gorm:"column:filename;size:255"`
	Description string `gorm:"column:description;type:text"`
	PublishedAt int64  `gorm:"column:published_at"`
	PublishedBy int64  `gorm:"column:published_by;index"`

	History *GalleryHistoryModel `gorm:"foreignKey:GalleryID;references:GalleryID"`
	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName returns the table name.
func (GalleryModel) TableName() string {
	return "galleries"
}

// FlagModel is a moderation report against a project.
type FlagModel struct {
	FlagID    int64   `gorm:"column:flag_id;primaryKey;autoIncrement"`
	ProjectID int64   `gorm:"column:project_id;index"`
	UserID    int64   `gorm:"column:user_id;index"`
	Flag      int     `gorm:"column:flag"`
	Message   *string `gorm:"column:message;type:text"`
	FlaggedAt int64   `gorm:"column:flagged_at"`
	ClosedAt  *int64  `gorm:"column:closed_at"`
	ClosedBy  *int64  `gorm:"column:closed_by;index"`

	Project *ProjectHistoryModel `gorm:"foreignKey:ProjectID;references:ProjectID"`
	User    *UserModel           `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName returns the table name.
func (FlagModel) TableName() string {
	return "flags"
}
