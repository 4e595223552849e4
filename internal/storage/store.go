// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billkeeper/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (one user per email).
	ErrDuplicate = errors.New("duplicate document")

	// ErrInvalidID is returned when a caller-supplied document id is
	// not a valid store id.
	ErrInvalidID = errors.New("invalid document id")
)

// BillQuery describes one filtered, paginated listing request.
//
// Page and Size are zero-based, non-negative. No upper bound on Size is
// enforced: a huge page returns the full remainder.
type BillQuery struct {
	// Search filters bills whose full name, email or phone contains it
	// as a case-insensitive substring. Empty matches all bills.
	Search string
	Page   int64
	Size   int64
}

// BillPage is the result of a listing query.
//
// Count is the total number of matches for the query's filter across
// all pages, independent of Page/Size. An empty result is a valid page
// with Count zero, not an error.
type BillPage struct {
	Bills []models.Bill `json:"bills"`
	Count int64         `json:"count"`
}

// UserStore defines persistence operations for user accounts.
type UserStore interface {
	// CreateUser persists a new user. Returns ErrDuplicate if a user
	// with the same email already exists.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns ErrNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// BillStore defines persistence operations for bill records.
// This abstraction allows swapping storage backends (MongoDB, in-memory)
// without changing the service layer.
type BillStore interface {
	// CreateBill persists a new bill. The bill.ID field is populated by
	// the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// ListBills executes the filter/sort/paginate pipeline and returns
	// one page plus the total match count. Never fails for a well-formed
	// query; an empty page is a valid result.
	ListBills(ctx context.Context, q BillQuery) (*BillPage, error)

	// ReplaceBill replaces the document under the given store id.
	// Reports whether a document was matched; an unknown id is
	// (false, nil), not an error.
	ReplaceBill(ctx context.Context, id string, bill *models.Bill) (bool, error)

	// DeleteBill removes the document under the given store id.
	// Reports whether a document was deleted; an unknown id is
	// (false, nil), not an error.
	DeleteBill(ctx context.Context, id string) (bool, error)
}

// Store combines the user and bill stores behind one handle.
type Store interface {
	UserStore
	BillStore

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
