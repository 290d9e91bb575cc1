package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Unavailable stands in for a store whose connection failed at startup. Every
// operation fails with ErrUnavailable wrapping Cause.
type Unavailable struct {
	Cause error
}

func (u Unavailable) err() error {
	if u.Cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.Cause)
}

func (u Unavailable) Name() string { return "" }

func (u Unavailable) Find(context.Context, string, Filter, int64) ([]bson.Raw, error) {
	return nil, u.err()
}

func (u Unavailable) Insert(context.Context, string, any) error { return u.err() }

func (u Unavailable) CollectionNames(context.Context) ([]string, error) { return nil, u.err() }
