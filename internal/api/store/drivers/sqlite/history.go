package sqlite

import (
	"context"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type historyRepo struct {
	db dbtx
}

func (r *historyRepo) Record(ctx context.Context, userID, videoID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watch_history (user_id, video_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = CURRENT_TIMESTAMP`,
		userID, videoID)
	return err
}

func (r *historyRepo) ListForUser(ctx context.Context, userID string, page, limit int) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration_secs, v.views, v.published, v.created_at, v.updated_at
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		WHERE h.user_id = ?
		ORDER BY h.watched_at DESC, v.id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}
