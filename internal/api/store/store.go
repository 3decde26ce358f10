package store

import (
	"context"
	"errors"

	"github.com/clipstack/clipstack/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy; the store is the
// only synchronization point between request handlers, so every mutation a
// repository exposes is a single atomic operation.
type Store interface {
	Users() Users
	Videos() Videos
	Comments() Comments
	Tweets() Tweets
	Playlists() Playlists
	Edges() Edges
	History() History

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback().
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the credential store adapter. SetRefreshFingerprint,
// SwapRefreshFingerprint and ClearRefreshFingerprint operate on the single
// refresh slot; Swap is conditional on the old value so concurrent
// rotations for one identity cannot both succeed.
type Users interface {
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByUsername matches the username column only. Public profile
	// lookups go through here so an email address never resolves a channel.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// GetByUsernameOrEmail matches either unique column. Login only.
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (domain.User, error)

	// Create inserts a new user. Returns ErrAlreadyExists when username or
	// email is taken.
	Create(ctx context.Context, u domain.User) error

	UpdateDetails(ctx context.Context, id, fullName, email string) error
	UpdateAvatar(ctx context.Context, id, avatarURL, coverURL string) error
	UpdatePasswordHash(ctx context.Context, id, newHash string) error

	// SetRefreshFingerprint overwrites the slot unconditionally (login).
	SetRefreshFingerprint(ctx context.Context, id, fingerprint string) error

	// SwapRefreshFingerprint replaces the slot only if it still holds old.
	// Returns false when a concurrent writer got there first (rotation).
	SwapRefreshFingerprint(ctx context.Context, id, old, new string) (bool, error)

	// ClearRefreshFingerprint empties the slot (logout, password change).
	ClearRefreshFingerprint(ctx context.Context, id string) error
}

type Videos interface {
	Create(ctx context.Context, v domain.Video) error
	GetByID(ctx context.Context, id string) (domain.Video, error)
	Update(ctx context.Context, id, title, description, thumbnailURL string) error
	SetPublished(ctx context.Context, id string, published bool) error
	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// ListPublished pages through published videos, newest first.
	ListPublished(ctx context.Context, page, limit int) ([]domain.Video, error)

	// ListByOwner pages through one channel's videos including unpublished
	// ones; callers gate visibility.
	ListByOwner(ctx context.Context, ownerID string, page, limit int) ([]domain.Video, error)

	// OwnerStats aggregates video count and total views for a channel.
	OwnerStats(ctx context.Context, ownerID string) (count, views int64, err error)
}

type Comments interface {
	Create(ctx context.Context, c domain.Comment) error
	GetByID(ctx context.Context, id string) (domain.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, error)
	ListByOwner(ctx context.Context, ownerID string, page, limit int) ([]domain.Comment, error)
}

type Tweets interface {
	Create(ctx context.Context, t domain.Tweet) error
	GetByID(ctx context.Context, id string) (domain.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error)
}

type Playlists interface {
	Create(ctx context.Context, p domain.Playlist) error

	// GetByID returns the playlist including its video ids in insertion
	// order.
	GetByID(ctx context.Context, id string) (domain.Playlist, error)

	Update(ctx context.Context, id, name, description string) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error)

	// AddVideo inserts playlist membership; false when already present.
	AddVideo(ctx context.Context, playlistID, videoID string) (bool, error)

	// RemoveVideo deletes membership; false when it was not present.
	RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error)
}

// Edges is the relation store adapter behind the toggle engine. Insert is
// backed by the unique constraint over (subject_id, target_id, kind): it
// reports false instead of erroring when the edge already exists, which is
// the tiebreaker concurrent togglers rely on.
type Edges interface {
	Insert(ctx context.Context, e domain.RelationEdge) (bool, error)
	Delete(ctx context.Context, subjectID, targetID string, kind domain.EdgeKind) (bool, error)

	// DeleteForTarget removes every edge pointing at a deleted resource.
	DeleteForTarget(ctx context.Context, targetID string) error

	// CountForTarget counts edges of one kind pointing at a target
	// (likes on a video, subscribers of a channel).
	CountForTarget(ctx context.Context, targetID string, kind domain.EdgeKind) (int64, error)

	// CountVideoLikesForOwner counts video_like edges across all of a
	// channel's videos.
	CountVideoLikesForOwner(ctx context.Context, ownerID string) (int64, error)

	ListLikedVideos(ctx context.Context, subjectID string) ([]domain.Video, error)
	ListLikedComments(ctx context.Context, subjectID string) ([]domain.Comment, error)
	ListLikedTweets(ctx context.Context, subjectID string) ([]domain.Tweet, error)

	// ListSubscribers returns the subscriber ids of a channel.
	ListSubscribers(ctx context.Context, channelID string) ([]string, error)

	// ListSubscriptions returns the channel ids a user subscribes to.
	ListSubscriptions(ctx context.Context, subjectID string) ([]string, error)
}

// History is the watch-history store adapter. One row per (user, video);
// Record upserts so a re-watch moves the video to the front of the listing.
type History interface {
	Record(ctx context.Context, userID, videoID string) error

	// ListForUser pages through watched videos, most recently watched first.
	ListForUser(ctx context.Context, userID string, page, limit int) ([]domain.Video, error)
}
