package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type product struct {
	Name     string   `bson:"name"`
	Slug     string   `bson:"slug"`
	Category string   `bson:"category"`
	Keywords []string `bson:"keywords"`
}

func seeded(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory("catalog")
	ctx := context.Background()
	for _, p := range []product{
		{Name: "Tannino Quebracho", Slug: "tannino", Category: "conceria", Keywords: []string{"Concia", "vegetale"}},
		{Name: "Resina Acrilica", Slug: "resina", Category: "specialita", Keywords: []string{"rifinizione"}},
		{Name: "Sgrassante", Slug: "sgrassante", Category: "conceria"},
	} {
		require.NoError(t, m.Insert(ctx, "product", p))
	}
	return m
}

func TestMemory_FindPreservesInsertionOrderAndLimit(t *testing.T) {
	m := seeded(t)
	ctx := context.Background()

	all, err := FindMany[product](ctx, m, "product", All, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"tannino", "resina", "sgrassante"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})

	two, err := FindMany[product](ctx, m, "product", nil, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)

	none, err := FindMany[product](ctx, m, "missing", All, 0)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestMemory_FindOne(t *testing.T) {
	m := seeded(t)
	ctx := context.Background()

	p, found, err := FindOne[product](ctx, m, "product", Equals{Field: "category", Value: "conceria"})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "tannino", p.Slug)

	_, found, err = FindOne[product](ctx, m, "product", Equals{Field: "slug", Value: "nope"})
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemory_InsertAssignsIDAndTimestamps(t *testing.T) {
	m := NewMemory("catalog")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	require.NoError(t, m.Insert(context.Background(), "contactmessage", bson.M{"name": "Anna", "_id": "client-chosen"}))
	raws := m.Raw("contactmessage")
	require.Len(t, raws, 1)

	id := raws[0].Lookup("_id")
	_, ok := id.ObjectIDOK()
	require.True(t, ok, "expected a generated ObjectID, got %v", id)
	require.Equal(t, fixed, raws[0].Lookup("created_at").Time().UTC())
	require.Equal(t, "Anna", raws[0].Lookup("name").StringValue())

	names, err := m.CollectionNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"contactmessage"}, names)
}

func TestMemory_CancelledContext(t *testing.T) {
	m := seeded(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Find(ctx, "product", All, 0)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestUnavailable_AllOperationsFail(t *testing.T) {
	u := Unavailable{Cause: errors.New("dial tcp: connection refused")}
	ctx := context.Background()

	_, err := u.Find(ctx, "product", All, 0)
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, u.Insert(ctx, "contactmessage", bson.M{}), ErrUnavailable)
	_, err = u.CollectionNames(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Contains(t, err.Error(), "connection refused")
	require.Empty(t, u.Name())

	_, found, err := FindOne[product](ctx, u, "product", All)
	require.False(t, found)
	require.ErrorIs(t, err, ErrUnavailable)
}
