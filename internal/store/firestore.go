package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Client on top of Cloud Firestore.
//
// Layout:
//
//   - bases/{base}/{table}/{record}
//
// Each base document groups the tables of one course or shared data set, so
// multi-tenant bases stay isolated while using a single Firestore project.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a store client from a Firebase app.
func NewFirestore(ctx context.Context, app *firebase.App) (*Firestore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firestore client: %w", err)
	}

	return &Firestore{client: client}, nil
}

// Close releases the underlying client.
func (f *Firestore) Close() error {
	return f.client.Close()
}

// Raw exposes the underlying client for write-side tooling (the API itself
// never writes).
func (f *Firestore) Raw() *firestore.Client {
	return f.client
}

func (f *Firestore) table(base, table string) *firestore.CollectionRef {
	return f.client.Collection("bases").Doc(base).Collection(table)
}

// Query runs q against base/table and collects all matching rows.
func (f *Firestore) Query(ctx context.Context, base, table string, q Query) ([]Row, error) {
	query := f.table(base, table).Query
	for _, cond := range q.Conditions {
		switch cond.Op {
		case OpAfter:
			query = query.Where(cond.Field, ">", cond.Value)
		default:
			query = query.Where(cond.Field, "==", cond.Value)
		}
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var rows []Row
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: query %s/%s: %v", ErrUnavailable, base, table, err)
		}

		row := Row(doc.Data())
		row[IDKey] = doc.Ref.ID
		rows = append(rows, row)
	}

	return rows, nil
}

// GetByKey fetches a single row by its record ID.
func (f *Firestore) GetByKey(ctx context.Context, base, table, key string) (Row, error) {
	doc, err := f.table(base, table).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: get %s/%s/%s: %v", ErrUnavailable, base, table, key, err)
	}

	row := Row(doc.Data())
	row[IDKey] = doc.Ref.ID
	return row, nil
}
