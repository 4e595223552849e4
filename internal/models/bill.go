package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Bill represents a single billing record.
//
// Bills have no uniqueness constraint — duplicates are permitted by
// design. Updates are full-document replaces by store id.
type Bill struct {
	// ID is the store-assigned primary key.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// GeneratingID is the server-assigned application id (UUID),
	// distinct from the store's primary key.
	GeneratingID string `bson:"generatingId" json:"generatingId"`

	// FullName, Email and Phone identify the billed party.
	// All three are matched by the search filter.
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`

	// Amount is the billed amount.
	Amount float64 `bson:"amount" json:"amount"`

	// Time is the Unix timestamp of the bill. Listings sort on it,
	// newest first.
	Time int64 `bson:"time" json:"time"`

	// AddedUserEmail is the email of the user who created the record.
	AddedUserEmail string `bson:"AddedUserEmail" json:"AddedUserEmail"`
}
