// Package memory provides an in-memory implementation of the storage
// interfaces. It backs the test suites and local development, and
// mirrors the MongoDB store's query semantics exactly: same filter,
// same sort order, same count behavior.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mmynk/billkeeper/internal/models"
	"github.com/mmynk/billkeeper/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store with in-process maps.
type Store struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by email
	bills map[string]models.Bill // keyed by store id (ObjectID hex)
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users: make(map[string]models.User),
		bills: make(map[string]models.Bill),
	}
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close(ctx context.Context) error {
	return nil
}

// CreateUser stores a new user, enforcing one user per email.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return storage.ErrDuplicate
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.Email] = *user
	return nil
}

// GetUserByEmail retrieves a user by email, or storage.ErrNotFound.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

// CreateBill stores a new bill, assigning store and application ids.
func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bill.GeneratingID == "" {
		bill.GeneratingID = uuid.New().String()
	}
	if bill.ID.IsZero() {
		bill.ID = primitive.NewObjectID()
	}
	s.bills[bill.ID.Hex()] = *bill
	return nil
}

// matches reports whether the bill's full name, email or phone contains
// the already-lowercased search term.
func matches(b *models.Bill, term string) bool {
	return strings.Contains(strings.ToLower(b.FullName), term) ||
		strings.Contains(strings.ToLower(b.Email), term) ||
		strings.Contains(strings.ToLower(b.Phone), term)
}

// ListBills runs the filter/sort/paginate pipeline over the in-memory
// set with the same semantics as the MongoDB store: count is the total
// match count for the filter, sorting is time descending with id
// descending as tiebreaker.
func (s *Store) ListBills(ctx context.Context, q storage.BillQuery) (*storage.BillPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(q.Search)
	matched := make([]models.Bill, 0, len(s.bills))
	for _, b := range s.bills {
		if term == "" || matches(&b, term) {
			matched = append(matched, b)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Time != matched[j].Time {
			return matched[i].Time > matched[j].Time
		}
		return matched[i].ID.Hex() > matched[j].ID.Hex()
	})

	page := &storage.BillPage{Bills: []models.Bill{}, Count: int64(len(matched))}
	if q.Size <= 0 {
		return page, nil
	}

	// Page*Size can overflow int64; an offset that far past the end is
	// an empty page, never a crash.
	start := q.Page * q.Size
	if start/q.Size != q.Page || start >= int64(len(matched)) {
		return page, nil
	}
	end := start + q.Size
	if end < start || end > int64(len(matched)) {
		end = int64(len(matched))
	}
	page.Bills = matched[start:end]
	return page, nil
}

// ReplaceBill replaces the bill under the given store id.
func (s *Store) ReplaceBill(ctx context.Context, id string, bill *models.Bill) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, storage.ErrInvalidID
	}
	// Keys are canonical Hex() output; the parsed form also accepts
	// uppercase hex, which must match the same document.
	key := oid.Hex()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bills[key]; !ok {
		return false, nil
	}
	bill.ID = oid
	s.bills[key] = *bill
	return true, nil
}

// DeleteBill removes the bill under the given store id.
func (s *Store) DeleteBill(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, storage.ErrInvalidID
	}
	key := oid.Hex()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bills[key]; !ok {
		return false, nil
	}
	delete(s.bills, key)
	return true, nil
}
