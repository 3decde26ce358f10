package sqlite

import (
	"context"
	"database/sql"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type commentsRepo struct {
	db dbtx
}

const commentColumns = `id, owner_id, video_id, content, created_at, updated_at`

func scanComment(row interface{ Scan(...any) error }) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.OwnerID, &c.VideoID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}

func collectComments(rows *sql.Rows) ([]domain.Comment, error) {
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentsRepo) Create(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, owner_id, video_id, content)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.VideoID, c.Content)
	return err
}

func (r *commentsRepo) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = ?`, id)
	return scanComment(row)
}

func (r *commentsRepo) UpdateContent(ctx context.Context, id, content string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE comments SET content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		content, id)
	return err
}

func (r *commentsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	return err
}

func (r *commentsRepo) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE video_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return collectComments(rows)
}

func (r *commentsRepo) ListByOwner(ctx context.Context, ownerID string, page, limit int) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		ownerID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return collectComments(rows)
}
