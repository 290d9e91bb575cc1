// Command seed loads a YAML catalogue fixture into the content database.
//
//	seed -f catalogue.yaml [-files ./assets] [-dry-run]
//
// Database settings are read the same way the API reads them
// (DATABASE_URL, DATABASE_NAME, STORE_DRIVER). MINIO_* settings enable
// uploading document files.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/aziendachimica/website/backend/content-api/internal/config"
	"github.com/aziendachimica/website/backend/content-api/internal/database"
	"github.com/aziendachimica/website/backend/content-api/internal/seed"
	"github.com/aziendachimica/website/backend/content-api/internal/storage"
	"github.com/aziendachimica/website/backend/content-api/pkg/logger"
)

func main() {
	fixturePath := flag.String("f", "seed.yaml", "fixture file")
	filesDir := flag.String("files", "", "directory document file paths are relative to (default: fixture directory)")
	dryRun := flag.Bool("dry-run", false, "validate only")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	f, err := os.Open(*fixturePath)
	if err != nil {
		logger.Fatalf("open fixture: %v", err)
	}
	fx, err := seed.Parse(f)
	f.Close()
	if err != nil {
		logger.Fatalf("%v", err)
	}

	ctx := context.Background()
	st, closeStore := database.OpenStore(ctx, cfg.Database)
	defer func() { _ = closeStore(context.Background()) }()

	dir := *filesDir
	if dir == "" {
		dir = filepath.Dir(*fixturePath)
	}
	s := &seed.Seeder{Store: st, Files: os.DirFS(dir)}
	if mcfg := storage.LoadMinIOConfig(); mcfg.Enabled() {
		up, err := storage.NewMinIOStorage(ctx, mcfg)
		if err != nil {
			logger.Fatalf("object storage: %v", err)
		}
		s.Uploader = up
	}

	res, err := s.Run(ctx, fx, *dryRun)
	if err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	names := make([]string, 0, len(res))
	for n := range res {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		logger.Infow("seeded", "collection", n, "records", res[n])
	}
}
