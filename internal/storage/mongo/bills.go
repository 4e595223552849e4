package mongo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmynk/billkeeper/internal/models"
	"github.com/mmynk/billkeeper/internal/storage"
)

// CreateBill inserts a new bill document, assigning the application id
// if not set.
func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	if bill.GeneratingID == "" {
		bill.GeneratingID = uuid.New().String()
	}

	res, err := s.bills.InsertOne(ctx, bill)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		bill.ID = oid
	}
	return nil
}

// billFilter builds the search predicate: empty matches everything,
// otherwise a case-insensitive substring match over full name, email
// or phone. The term is quoted so regex metacharacters in user input
// stay literal.
func billFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"fullName": re},
		bson.M{"email": re},
		bson.M{"phone": re},
	}}
}

// ListBills runs the filter/sort/paginate pipeline.
//
// Count is the total number of matches for the filter, computed with a
// separate CountDocuments on the same predicate so it is independent of
// skip/limit. Sorting is always time descending with _id descending as
// tiebreaker, which keeps page boundaries deterministic.
func (s *Store) ListBills(ctx context.Context, q storage.BillQuery) (*storage.BillPage, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	filter := billFilter(q.Search)

	count, err := s.bills.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count bills: %w", err)
	}

	page := &storage.BillPage{Bills: []models.Bill{}, Count: count}
	if q.Size <= 0 {
		// A zero-size page takes nothing; mongo would read SetLimit(0)
		// as "no limit".
		return page, nil
	}

	// Page*Size can overflow int64; the driver rejects a negative skip,
	// but an offset that far past the end is simply an empty page.
	skip := q.Page * q.Size
	if skip/q.Size != q.Page {
		return page, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "time", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(q.Size)

	cursor, err := s.bills.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bills: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &page.Bills); err != nil {
		return nil, fmt.Errorf("failed to decode bills: %w", err)
	}
	return page, nil
}

// ReplaceBill replaces the full document under the given store id.
// Reports whether a document was matched.
func (s *Store) ReplaceBill(ctx context.Context, id string, bill *models.Bill) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, storage.ErrInvalidID
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	bill.ID = oid
	res, err := s.bills.ReplaceOne(ctx, bson.M{"_id": oid}, bill)
	if err != nil {
		return false, fmt.Errorf("failed to replace bill: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeleteBill removes the document under the given store id.
// Reports whether a document was deleted.
func (s *Store) DeleteBill(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, storage.ErrInvalidID
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	res, err := s.bills.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete bill: %w", err)
	}
	return res.DeletedCount > 0, nil
}
