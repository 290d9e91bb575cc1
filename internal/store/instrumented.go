package store

import (
	"context"
	"errors"
	"time"

	"github.com/aziendachimica/website/backend/content-api/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
)

type instrumented struct {
	next Store
}

// Instrumented wraps s so that every operation is counted and timed.
func Instrumented(s Store) Store {
	return &instrumented{next: s}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Find(ctx context.Context, collection string, f Filter, limit int64) ([]bson.Raw, error) {
	start := time.Now()
	out, err := i.next.Find(ctx, collection, f, limit)
	observe("find", collection, start, err)
	return out, err
}

func (i *instrumented) Insert(ctx context.Context, collection string, doc any) error {
	start := time.Now()
	err := i.next.Insert(ctx, collection, doc)
	observe("insert", collection, start, err)
	return err
}

func (i *instrumented) CollectionNames(ctx context.Context) ([]string, error) {
	start := time.Now()
	out, err := i.next.CollectionNames(ctx)
	observe("list_collections", "", start, err)
	return out, err
}

func observe(op, collection string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, ErrUnavailable):
		outcome = "unavailable"
	case err != nil:
		outcome = "error"
	}
	metrics.StoreOperations.WithLabelValues(op, collection, outcome).Inc()
	metrics.StoreDuration.WithLabelValues(op, collection).Observe(time.Since(start).Seconds())
}
