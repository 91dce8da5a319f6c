package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSnapshot is the author as they were when the review was written.
// It is an owned copy, not a reference: later edits to the user record
// never show up on existing reviews. The password hash is never copied.
type UserSnapshot struct {
	ID    uuid.UUID `db:"user_id"`
	Email string    `db:"user_email"`
	Name  string    `db:"user_name"`
	Role  string    `db:"user_role"`
}

type Review struct {
	ID        uuid.UUID    `db:"id"`
	Body      string       `db:"body"`
	Rating    int          `db:"rating"`
	User      UserSnapshot
	ImdbID    string       `db:"imdb_id"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// Snapshot copies the identity fields of a user for embedding in a review.
func Snapshot(user *User) UserSnapshot {
	return UserSnapshot{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
