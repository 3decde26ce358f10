package sqlite

import (
	"context"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type playlistsRepo struct {
	db dbtx
}

func (r *playlistsRepo) Create(ctx context.Context, p domain.Playlist) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO playlists (id, owner_id, name, description)
		VALUES (?, ?, ?, ?)`,
		p.ID, p.OwnerID, p.Name, p.Description)
	return err
}

func (r *playlistsRepo) GetByID(ctx context.Context, id string) (domain.Playlist, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists WHERE id = ?`, id)

	var p domain.Playlist
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Playlist{}, mapNotFound(err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT video_id FROM playlist_videos
		WHERE playlist_id = ?
		ORDER BY position ASC`, id)
	if err != nil {
		return domain.Playlist{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var videoID string
		if err := rows.Scan(&videoID); err != nil {
			return domain.Playlist{}, err
		}
		p.VideoIDs = append(p.VideoIDs, videoID)
	}
	return p, rows.Err()
}

func (r *playlistsRepo) Update(ctx context.Context, id, name, description string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE playlists SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		name, description, id)
	return err
}

func (r *playlistsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	return err
}

func (r *playlistsRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AddVideo appends membership at the next position. The insert is ignored
// when the video is already in the playlist and reported through the
// return value.
func (r *playlistsRepo) AddVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO playlist_videos (playlist_id, video_id, position)
		VALUES (?, ?, (
			SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_videos WHERE playlist_id = ?
		))`,
		playlistID, videoID, playlistID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *playlistsRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM playlist_videos WHERE playlist_id = ? AND video_id = ?`,
		playlistID, videoID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
