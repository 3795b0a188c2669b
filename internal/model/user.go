package model

import "time"

// User represents a customer profile as stored in the `users` table.
// Credentials live separately in `user_logins` so the profile can be
// returned to callers without exposing the password hash.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – full display name.
//  Email        – contact email address.
//  Phone        – contact phone number.
//  PostCode     – postal code of the user's address.
//  Address      – street address.
//  CustomerType – free-form customer classification captured at signup.
//  Role         – USER or ADMIN.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`            // users.id
	Name         string    `json:"name"`          // users.name
	Email        string    `json:"email"`         // users.email
	Phone        string    `json:"phone"`         // users.phone
	PostCode     string    `json:"post_code"`     // users.post_code
	Address      string    `json:"address"`       // users.address
	CustomerType string    `json:"customer_type"` // users.customer_type
	Role         string    `json:"role"`          // users.role
	CreatedAt    time.Time `json:"created_at"`    // users.created_at
	UpdatedAt    time.Time `json:"updated_at"`    // users.updated_at
}

// UserLogin models a row in `user_logins`.  Each login belongs to one
// user and stores the unique username together with a bcrypt password
// hash.  Plaintext passwords are never stored.
//
// Fields:
//  ID           – primary key identifier.
//  UserID       – owner of the credentials.
//  Username     – unique login name.
//  PasswordHash – bcrypt digest of the password.
//  CreatedAt    – timestamp of creation.
type UserLogin struct {
	ID           uint64    // user_logins.id
	UserID       uint64    // user_logins.user_id
	Username     string    // user_logins.username
	PasswordHash string    // user_logins.password_hash
	CreatedAt    time.Time // user_logins.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of the token value is persisted; the raw token is handed
// to the client once and never stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (null while active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
