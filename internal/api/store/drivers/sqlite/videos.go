package sqlite

import (
	"context"
	"database/sql"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type videosRepo struct {
	db dbtx
}

const videoColumns = `id, owner_id, title, description, video_url, thumbnail_url, duration_secs, views, published, created_at, updated_at`

func scanVideo(row interface{ Scan(...any) error }) (domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
		&v.ThumbnailURL, &v.DurationSecs, &v.Views, &v.Published,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return v, nil
}

func collectVideos(rows *sql.Rows) ([]domain.Video, error) {
	defer rows.Close()

	var out []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *videosRepo) Create(ctx context.Context, v domain.Video) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO videos (id, owner_id, title, description, video_url, thumbnail_url, duration_secs, published)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.DurationSecs, v.Published)
	return err
}

func (r *videosRepo) GetByID(ctx context.Context, id string) (domain.Video, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)
	return scanVideo(row)
}

func (r *videosRepo) Update(ctx context.Context, id, title, description, thumbnailURL string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE videos SET title = ?, description = ?, thumbnail_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		title, description, thumbnailURL, id)
	return err
}

func (r *videosRepo) SetPublished(ctx context.Context, id string, published bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE videos SET published = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		published, id)
	return err
}

func (r *videosRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE videos SET views = views + 1 WHERE id = ?`, id)
	return err
}

func (r *videosRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	return err
}

func (r *videosRepo) ListPublished(ctx context.Context, page, limit int) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+videoColumns+` FROM videos
		WHERE published = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

func (r *videosRepo) ListByOwner(ctx context.Context, ownerID string, page, limit int) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+videoColumns+` FROM videos
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		ownerID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

func (r *videosRepo) OwnerStats(ctx context.Context, ownerID string) (count, views int64, err error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(views), 0) FROM videos WHERE owner_id = ?`,
		ownerID)
	err = row.Scan(&count, &views)
	return count, views, err
}
