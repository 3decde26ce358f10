package sqlite

import (
	"context"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type edgesRepo struct {
	db dbtx
}

// Insert writes a relation edge, leaning on the unique constraint over
// (subject_id, target_id, kind). INSERT OR IGNORE plus RowsAffected tells
// the toggle engine whether this call created the edge or lost the race to
// an identical one.
func (r *edgesRepo) Insert(ctx context.Context, e domain.RelationEdge) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO relation_edges (id, subject_id, target_id, kind)
		VALUES (?, ?, ?, ?)`,
		e.ID, e.SubjectID, e.TargetID, string(e.Kind))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *edgesRepo) Delete(ctx context.Context, subjectID, targetID string, kind domain.EdgeKind) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM relation_edges
		WHERE subject_id = ? AND target_id = ? AND kind = ?`,
		subjectID, targetID, string(kind))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *edgesRepo) DeleteForTarget(ctx context.Context, targetID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM relation_edges WHERE target_id = ?`, targetID)
	return err
}

func (r *edgesRepo) CountForTarget(ctx context.Context, targetID string, kind domain.EdgeKind) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM relation_edges
		WHERE target_id = ? AND kind = ?`,
		targetID, string(kind)).Scan(&count)
	return count, err
}

func (r *edgesRepo) CountVideoLikesForOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM relation_edges e
		JOIN videos v ON v.id = e.target_id
		WHERE e.kind = ? AND v.owner_id = ?`,
		string(domain.EdgeVideoLike), ownerID).Scan(&count)
	return count, err
}

func (r *edgesRepo) ListLikedVideos(ctx context.Context, subjectID string) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration_secs, v.views, v.published, v.created_at, v.updated_at
		FROM relation_edges e
		JOIN videos v ON v.id = e.target_id
		WHERE e.subject_id = ? AND e.kind = ?
		ORDER BY e.created_at DESC`,
		subjectID, string(domain.EdgeVideoLike))
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

func (r *edgesRepo) ListLikedComments(ctx context.Context, subjectID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.owner_id, c.video_id, c.content, c.created_at, c.updated_at
		FROM relation_edges e
		JOIN comments c ON c.id = e.target_id
		WHERE e.subject_id = ? AND e.kind = ?
		ORDER BY e.created_at DESC`,
		subjectID, string(domain.EdgeCommentLike))
	if err != nil {
		return nil, err
	}
	return collectComments(rows)
}

func (r *edgesRepo) ListLikedTweets(ctx context.Context, subjectID string) ([]domain.Tweet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.owner_id, t.content, t.created_at, t.updated_at
		FROM relation_edges e
		JOIN tweets t ON t.id = e.target_id
		WHERE e.subject_id = ? AND e.kind = ?
		ORDER BY e.created_at DESC`,
		subjectID, string(domain.EdgeTweetLike))
	if err != nil {
		return nil, err
	}
	return collectTweets(rows)
}

func (r *edgesRepo) ListSubscribers(ctx context.Context, channelID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT subject_id FROM relation_edges
		WHERE target_id = ? AND kind = ?
		ORDER BY created_at DESC`,
		channelID, string(domain.EdgeSubscription))
}

func (r *edgesRepo) ListSubscriptions(ctx context.Context, subjectID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT target_id FROM relation_edges
		WHERE subject_id = ? AND kind = ?
		ORDER BY created_at DESC`,
		subjectID, string(domain.EdgeSubscription))
}

func (r *edgesRepo) listIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
