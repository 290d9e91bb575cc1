package seed

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/aziendachimica/website/backend/content-api/internal/content"
	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/stretchr/testify/require"
)

const fixture = `
companyprofile:
  - company_name: Chimica Bianchi S.p.A.
    values: [Sicurezza, Qualità]
category:
  - name: Ausiliari per Conceria
product:
  - name: Tannino Quebracho
    category: ausiliari-per-conceria
    keywords: [concia, vegetale]
news:
  - title: Nuovo impianto
    slug: nuovo-impianto
    published_at: 2024-05-01
document:
  - title: Scheda di sicurezza
    file: sds/tannino.pdf
    product_slug: tannino-quebracho
`

type fakeUploader struct {
	uploaded map[string][]byte
	types    map[string]string
}

func (f *fakeUploader) UploadFile(_ context.Context, key string, r io.Reader, size int64, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, size); err != nil {
		return err
	}
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
		f.types = map[string]string{}
	}
	f.uploaded[key] = buf.Bytes()
	f.types[key] = contentType
	return nil
}

func (f *fakeUploader) ObjectURL(key string) string { return "https://cdn.example.com/documents/" + key }

func newSeeder() (*Seeder, *store.Memory, *fakeUploader) {
	m := store.NewMemory("azienda")
	up := &fakeUploader{}
	files := fstest.MapFS{"sds/tannino.pdf": {Data: []byte("%PDF-1.4")}}
	return &Seeder{Store: m, Files: files, Uploader: up}, m, up
}

func TestRun_SeedsAllCollections(t *testing.T) {
	fx, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	s, m, up := newSeeder()
	ctx := context.Background()

	res, err := s.Run(ctx, fx, false)
	require.NoError(t, err)
	require.Equal(t, Result{"companyprofile": 1, "category": 1, "product": 1, "news": 1, "document": 1}, res)

	cat, found, err := store.FindOne[content.Category](ctx, m, content.CollectionCategory, store.All)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "ausiliari-per-conceria", cat.Slug)

	prod, _, err := store.FindOne[content.Product](ctx, m, content.CollectionProduct, store.All)
	require.NoError(t, err)
	require.Equal(t, "tannino-quebracho", prod.Slug)
	require.Equal(t, []string{"concia", "vegetale"}, prod.Keywords)

	news, _, err := store.FindOne[content.News](ctx, m, content.CollectionNews, store.All)
	require.NoError(t, err)
	require.NotNil(t, news.PublishedAt)
	require.Equal(t, "2024-05-01", news.PublishedAt.Format(content.DateLayout))

	doc, _, err := store.FindOne[content.Document](ctx, m, content.CollectionDocument, store.All)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/documents/sds/tannino.pdf", doc.URL)
	require.NotNil(t, doc.Language)
	require.Equal(t, content.DefaultLanguage, *doc.Language)
	require.Equal(t, []byte("%PDF-1.4"), up.uploaded["sds/tannino.pdf"])
	require.Equal(t, "application/pdf", up.types["sds/tannino.pdf"])

	names, err := m.CollectionNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"companyprofile", "category", "product", "document", "news"}, names)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	fx, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	s, m, up := newSeeder()

	res, err := s.Run(context.Background(), fx, true)
	require.NoError(t, err)
	require.Equal(t, 1, res["document"])
	names, err := m.CollectionNames(context.Background())
	require.NoError(t, err)
	require.Empty(t, names)
	require.Empty(t, up.uploaded)
}

func TestRun_InvalidRecordAbortsBeforeWriting(t *testing.T) {
	fx, err := Parse(strings.NewReader(`
category:
  - name: Solventi
product:
  - name: Acetone
  - slug: senza-nome
    category: solventi
`))
	require.NoError(t, err)
	s, m, _ := newSeeder()

	_, err = s.Run(context.Background(), fx, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "product[0]")
	require.Contains(t, err.Error(), "product[1]")
	names, _ := m.CollectionNames(context.Background())
	require.Empty(t, names)
}

func TestRun_FileNeedsObjectStorage(t *testing.T) {
	fx, err := Parse(strings.NewReader(`
document:
  - title: Catalogo
    file: catalogo.pdf
`))
	require.NoError(t, err)
	s := &Seeder{Store: store.NewMemory("azienda")}

	_, err = s.Run(context.Background(), fx, false)
	require.ErrorContains(t, err, "object storage is not configured")
}

func TestParse_RejectsSubmissionCollections(t *testing.T) {
	_, err := Parse(strings.NewReader("contactmessage:\n  - name: x\n"))
	require.ErrorContains(t, err, `"contactmessage"`)

	fx, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, fx)
}
