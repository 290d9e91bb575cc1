// Package store is the generic accessor every handler uses to read from or
// write to a named collection of the document store.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable is returned by every operation of a store whose connection
// could not be established.
var ErrUnavailable = errors.New("store unavailable")

// Store reads and writes records of named collections. Records are returned in
// the store's natural order. A limit of 0 means no limit.
type Store interface {
	Find(ctx context.Context, collection string, f Filter, limit int64) ([]bson.Raw, error)
	// Insert persists doc and assigns its internal identifier. The stored
	// record is not returned.
	Insert(ctx context.Context, collection string, doc any) error
	CollectionNames(ctx context.Context) ([]string, error)
	// Name is the database name, empty when not connected.
	Name() string
}

// FindMany decodes every record of collection matching f into T.
func FindMany[T any](ctx context.Context, s Store, collection string, f Filter, limit int64) ([]T, error) {
	raws, err := s.Find(ctx, collection, f, limit)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := bson.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FindOne returns the first record matching f. found is false, with a nil
// error, when nothing matches.
func FindOne[T any](ctx context.Context, s Store, collection string, f Filter) (v T, found bool, err error) {
	items, err := FindMany[T](ctx, s, collection, f, 1)
	if err != nil || len(items) == 0 {
		return v, false, err
	}
	return items[0], true, nil
}

// stamp converts doc to an ordered document carrying creation timestamps.
// When withID is set a fresh ObjectID is put first.
func stamp(doc any, now time.Time, withID bool) (bson.D, error) {
	b, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var d bson.D
	if err := bson.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	out := make(bson.D, 0, len(d)+3)
	if withID {
		out = append(out, bson.E{Key: "_id", Value: primitive.NewObjectID()})
	}
	for _, e := range d {
		if e.Key == "_id" || e.Key == "created_at" || e.Key == "updated_at" {
			continue
		}
		out = append(out, e)
	}
	now = now.UTC()
	out = append(out, bson.E{Key: "created_at", Value: now}, bson.E{Key: "updated_at", Value: now})
	return out, nil
}
