package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered user account.
//
// Users are created on registration and are immutable afterwards; there
// is no profile-update path. The email is the unique identifier — the
// users collection enforces a unique index on it.
type User struct {
	// ID is the store-assigned primary key.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// FirstName and LastName are the display name of the user.
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`

	// Email is the user's unique identifier, used for login and as the
	// identity claim embedded in session tokens.
	Email string `bson:"email" json:"email"`

	// PasswordHash is the bcrypt digest of the password.
	// Never exposed in JSON responses.
	PasswordHash string `bson:"password" json:"-"`
}
