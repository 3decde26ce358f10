package sqlite

import (
	"context"

	"github.com/clipstack/clipstack/internal/api/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, full_name, password_hash, refresh_fingerprint, avatar_url, cover_url, created_at, updated_at`

func (r *usersRepo) scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	var fp *string
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash,
		&fp, &u.AvatarURL, &u.CoverURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.RefreshFingerprint = fp
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return r.scanUser(row)
}

func (r *usersRepo) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ? OR email = ?`,
		usernameOrEmail, usernameOrEmail)
	return r.scanUser(row)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, full_name, password_hash, avatar_url, cover_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.FullName, u.PasswordHash, u.AvatarURL, u.CoverURL)
	return mapUnique(err)
}

func (r *usersRepo) UpdateDetails(ctx context.Context, id, fullName, email string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET full_name = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		fullName, email, id)
	return mapUnique(err)
}

func (r *usersRepo) UpdateAvatar(ctx context.Context, id, avatarURL, coverURL string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET avatar_url = ?, cover_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		avatarURL, coverURL, id)
	return err
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, newHash string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		newHash, id)
	return err
}

func (r *usersRepo) SetRefreshFingerprint(ctx context.Context, id, fingerprint string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_fingerprint = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		fingerprint, id)
	return err
}

// SwapRefreshFingerprint is the rotation primitive. The WHERE clause makes
// the replacement conditional on the slot still holding old, so when two
// rotations race on the same token at most one sees rows affected.
func (r *usersRepo) SwapRefreshFingerprint(ctx context.Context, id, old, new string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_fingerprint = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND refresh_fingerprint = ?`,
		new, id, old)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) ClearRefreshFingerprint(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_fingerprint = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		id)
	return err
}
