package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"unicode/utf8"

	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type diagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func diagnose(t *testing.T, st store.Store, env EnvStatus) diagnosticReport {
	t.Helper()
	w := do(newRouter(t, st, env), http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var r diagnosticReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	require.Equal(t, "✅ Running", r.Backend)
	return r
}

func TestDiagnostics_Connected(t *testing.T) {
	m := store.NewMemory("azienda")
	for i := 0; i < 12; i++ {
		require.NoError(t, m.Insert(context.Background(), fmt.Sprintf("c%02d", i), bson.M{"n": i}))
	}
	r := diagnose(t, m, EnvStatus{DatabaseURLSet: true, DatabaseNameSet: true})
	require.Equal(t, "✅ Connected & Working", r.Database)
	require.Equal(t, "Connected", r.ConnectionStatus)
	require.Equal(t, "✅ Set", r.DatabaseURL)
	require.Equal(t, "✅ Set", r.DatabaseName)
	require.Len(t, r.Collections, 10)
	require.Equal(t, "c00", r.Collections[0])
}

func TestDiagnostics_NotInitialized(t *testing.T) {
	r := diagnose(t, store.Unavailable{Cause: errors.New("DATABASE_URL not set")}, EnvStatus{})
	require.Equal(t, "⚠️  Available but not initialized", r.Database)
	require.Equal(t, "Not Connected", r.ConnectionStatus)
	require.Equal(t, "❌ Not Set", r.DatabaseURL)
	require.Equal(t, "❌ Not Set", r.DatabaseName)
	require.Empty(t, r.Collections)
}

func TestDiagnostics_ErrorIsTruncated(t *testing.T) {
	r := diagnose(t, brokenStore{}, EnvStatus{DatabaseURLSet: true})
	require.Equal(t, "Connected", r.ConnectionStatus)
	prefix := "⚠️  Connected but Error: "
	require.Contains(t, r.Database, prefix)
	require.Equal(t, 50, utf8.RuneCountInString(r.Database[len(prefix):]))
}

type panickingStore struct{ store.Unavailable }

func (panickingStore) CollectionNames(context.Context) ([]string, error) {
	panic("nil database handle")
}

func TestDiagnostics_NeverFails(t *testing.T) {
	r := diagnose(t, panickingStore{}, EnvStatus{})
	require.Equal(t, "❌ Error: nil database handle", r.Database)

	r = diagnose(t, nil, EnvStatus{})
	require.Equal(t, "⚠️  Available but not initialized", r.Database)
}
