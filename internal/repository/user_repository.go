package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/venuehub/ticketbooking/internal/model"
	"github.com/venuehub/ticketbooking/internal/utils"
)

// UserRepo provides access to the users and user_logins tables.  The
// two tables are written together at registration so a profile can
// never exist without credentials.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// CreateWithLogin registers a new user: it checks the username is
// free, inserts the profile row and the login row with a bcrypt hash,
// all inside one transaction.  It returns the new user's ID, or
// ErrUsernameExists when the username is already taken.
func (r *UserRepo) CreateWithLogin(ctx context.Context, u model.User, username, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var existing uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM user_logins WHERE username = ? LIMIT 1", username).Scan(&existing)
	switch {
	case err == nil:
		return 0, ErrUsernameExists
	case err != sql.ErrNoRows:
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, email, phone, post_code, address, customer_type, role)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.Phone, u.PostCode, u.Address, u.CustomerType, u.Role)
	if err != nil {
		return 0, err
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO user_logins (user_id, username, password_hash) VALUES (?, ?, ?)",
		uint64(userID), username, hash)
	if err != nil {
		// The unique index on username can still fire under a race.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(userID), nil
}

// GetByID fetches a user profile by ID.  It returns ErrUserNotFound
// when no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, email, phone, post_code, address, customer_type, role, created_at, updated_at
		 FROM users WHERE id = ? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PostCode, &u.Address, &u.CustomerType, &u.Role,
			&u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// LoginRow bundles the credential columns with the profile fields a
// successful login returns.
type LoginRow struct {
	UserID       uint64
	Username     string
	PasswordHash string
	Name         string
	Role         string
}

// GetLoginByUsername fetches the login row for a username joined with
// the owning user's name and role.  sql.ErrNoRows is returned
// unchanged so callers can fold "no such user" and "wrong password"
// into one response.
func (r *UserRepo) GetLoginByUsername(ctx context.Context, username string) (LoginRow, error) {
	var row LoginRow
	err := r.DB.QueryRowContext(ctx,
		`SELECT l.user_id, l.username, l.password_hash, u.name, u.role
		 FROM user_logins l
		 JOIN users u ON u.id = l.user_id
		 WHERE l.username = ? LIMIT 1`, strings.TrimSpace(username)).
		Scan(&row.UserID, &row.Username, &row.PasswordHash, &row.Name, &row.Role)
	return row, err
}
