// Package seed loads catalogue fixtures into the content store.
//
// A fixture is a YAML document keyed by collection name:
//
//	category:
//	  - name: Solventi
//	product:
//	  - name: Acetone Tecnico
//	    category: solventi
//	document:
//	  - title: Scheda di sicurezza
//	    file: sds/acetone.pdf
//
// Every record is validated with the same rules the API applies to
// submissions. A missing slug is derived from name or title. A document may
// name a local file instead of a url; the file is uploaded and its public
// link stored as url.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aziendachimica/website/backend/content-api/internal/content"
	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/aziendachimica/website/backend/content-api/pkg/logger"
	"github.com/aziendachimica/website/backend/content-api/pkg/slug"
	"gopkg.in/yaml.v3"
)

// Order in which collections are written.
var Order = []string{
	content.CollectionCompanyProfile,
	content.CollectionCategory,
	content.CollectionSector,
	content.CollectionProduct,
	content.CollectionDocument,
	content.CollectionNews,
	content.CollectionJob,
}

// slugSource names the field a missing slug is derived from.
var slugSource = map[string]string{
	content.CollectionCategory: "name",
	content.CollectionProduct:  "name",
	content.CollectionSector:   "name",
	content.CollectionNews:     "title",
	content.CollectionJob:      "title",
}

// Fixture maps a collection name to its raw records.
type Fixture map[string][]map[string]any

// Uploader publishes document files.
type Uploader interface {
	UploadFile(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	ObjectURL(key string) string
}

// Parse reads a YAML fixture and rejects collections that cannot be seeded.
func Parse(r io.Reader) (Fixture, error) {
	var fx Fixture
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	for name := range fx {
		if !seedable(name) {
			return nil, fmt.Errorf("parse fixture: collection %q cannot be seeded", name)
		}
	}
	return fx, nil
}

func seedable(name string) bool {
	for _, c := range Order {
		if c == name {
			return true
		}
	}
	return false
}

// Seeder validates fixtures and writes them to Store.
type Seeder struct {
	Store store.Store
	// Files resolves document file paths. Required only when a fixture uses them.
	Files fs.FS
	// Uploader publishes document files. Required only when a fixture uses them.
	Uploader Uploader
}

// Result counts the records written per collection.
type Result map[string]int

type pending struct {
	collection string
	record     any
	file       string
}

// Run validates every record first and writes nothing if any is invalid.
// With dryRun set nothing is uploaded or written.
func (s *Seeder) Run(ctx context.Context, fx Fixture, dryRun bool) (Result, error) {
	var (
		batch []pending
		errs  []error
	)
	for _, coll := range Order {
		for i, raw := range fx[coll] {
			p, err := s.prepare(coll, raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", coll, i, err))
				continue
			}
			batch = append(batch, p)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	res := Result{}
	for _, p := range batch {
		if dryRun {
			res[p.collection]++
			continue
		}
		if p.file != "" {
			if err := s.publish(ctx, &p); err != nil {
				return res, err
			}
		}
		if err := s.Store.Insert(ctx, p.collection, p.record); err != nil {
			return res, fmt.Errorf("insert into %s: %w", p.collection, err)
		}
		res[p.collection]++
	}
	logger.Infow("seed complete", "dry_run", dryRun, "records", len(batch))
	return res, nil
}

// prepare fills derived fields and validates the record.
func (s *Seeder) prepare(coll string, raw map[string]any) (pending, error) {
	rec := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		if t, ok := v.(time.Time); ok {
			v = t.Format(time.RFC3339)
		}
		rec[k] = v
	}
	p := pending{collection: coll}

	if src, ok := slugSource[coll]; ok && isBlank(rec["slug"]) {
		if base, ok := rec[src].(string); ok {
			rec["slug"] = slug.Make(base)
		}
	}
	if coll == content.CollectionDocument {
		if f, ok := rec["file"].(string); ok && f != "" {
			if !isBlank(rec["url"]) {
				return p, fmt.Errorf("set either file or url, not both")
			}
			if s.Files == nil || s.Uploader == nil {
				return p, fmt.Errorf("file %q given but object storage is not configured", f)
			}
			p.file = path.Clean(f)
			// placeholder until the upload yields the real link
			rec["url"] = p.file
		}
		delete(rec, "file")
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return p, err
	}
	p.record, err = content.DecodeCollection(coll, body)
	if err != nil {
		return p, err
	}
	return p, nil
}

// publish uploads p.file and points the document's url at it.
func (s *Seeder) publish(ctx context.Context, p *pending) error {
	f, err := s.Files.Open(p.file)
	if err != nil {
		return fmt.Errorf("open %s: %w", p.file, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", p.file, err)
	}
	key := strings.TrimPrefix(p.file, "./")
	ctype := mime.TypeByExtension(path.Ext(key))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	if err := s.Uploader.UploadFile(ctx, key, f, info.Size(), ctype); err != nil {
		return err
	}
	doc := p.record.(content.Document)
	doc.URL = s.Uploader.ObjectURL(key)
	p.record = doc
	logger.Debugf("uploaded %s -> %s", p.file, doc.URL)
	return nil
}

func isBlank(v any) bool {
	s, ok := v.(string)
	return v == nil || (ok && strings.TrimSpace(s) == "")
}
