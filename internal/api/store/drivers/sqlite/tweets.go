package sqlite

import (
	"context"
	"database/sql"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type tweetsRepo struct {
	db dbtx
}

const tweetColumns = `id, owner_id, content, created_at, updated_at`

func scanTweet(row interface{ Scan(...any) error }) (domain.Tweet, error) {
	var t domain.Tweet
	err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Tweet{}, mapNotFound(err)
	}
	return t, nil
}

func collectTweets(rows *sql.Rows) ([]domain.Tweet, error) {
	defer rows.Close()

	var out []domain.Tweet
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tweetsRepo) Create(ctx context.Context, t domain.Tweet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tweets (id, owner_id, content)
		VALUES (?, ?, ?)`,
		t.ID, t.OwnerID, t.Content)
	return err
}

func (r *tweetsRepo) GetByID(ctx context.Context, id string) (domain.Tweet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tweetColumns+` FROM tweets WHERE id = ?`, id)
	return scanTweet(row)
}

func (r *tweetsRepo) UpdateContent(ctx context.Context, id, content string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tweets SET content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		content, id)
	return err
}

func (r *tweetsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = ?`, id)
	return err
}

func (r *tweetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+tweetColumns+` FROM tweets
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	return collectTweets(rows)
}
