package service

import (
	"context"
	"errors"

	"github.com/aziendachimica/website/backend/content-api/internal/content"
	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/aziendachimica/website/backend/content-api/pkg/metrics"
)

var (
	ErrNotFound = errors.New("not found")
)

// productSearchFields are searched by the free-text product query.
var productSearchFields = []string{"name", "summary", "description", "keywords"}

// Service defines the content operations used by the handler layer. Empty
// string arguments mean "no filter".
type Service interface {
	ListCategories(ctx context.Context) ([]content.Category, error)
	ListProducts(ctx context.Context, category, query string) ([]content.Product, error)
	GetProduct(ctx context.Context, slug string) (content.Product, error)
	ListSectors(ctx context.Context) ([]content.Sector, error)
	GetSector(ctx context.Context, slug string) (content.Sector, error)
	ListNews(ctx context.Context, tag string) ([]content.News, error)
	ListDocuments(ctx context.Context, productSlug, category, language string) ([]content.Document, error)
	ListJobs(ctx context.Context, department string) ([]content.Job, error)
	SubmitApplication(ctx context.Context, a content.Application) error
	SubmitContact(ctx context.Context, m content.ContactMessage) error
	// GetCompany returns the published profile; found is false when none exists.
	GetCompany(ctx context.Context) (p content.CompanyProfile, found bool, err error)
}

// New returns a Service reading from and writing to st.
func New(st store.Store) Service {
	return &contentService{store: st}
}

type contentService struct {
	store store.Store
}

func list[T any, P content.Entity[T]](ctx context.Context, st store.Store, collection string, f store.Filter) ([]T, error) {
	items, err := store.FindMany[T](ctx, st, collection, f, 0)
	if err != nil {
		return nil, err
	}
	for i := range items {
		P(&items[i]).Normalize()
	}
	return items, nil
}

func one[T any, P content.Entity[T]](ctx context.Context, st store.Store, collection string, f store.Filter) (T, bool, error) {
	item, found, err := store.FindOne[T](ctx, st, collection, f)
	if err != nil || !found {
		return item, found, err
	}
	P(&item).Normalize()
	return item, true, nil
}

// equalsIfSet appends an Equals filter on field when value is non-empty.
func equalsIfSet(f store.And, field, value string) store.And {
	if value == "" {
		return f
	}
	return append(f, store.Equals{Field: field, Value: value})
}

func (s *contentService) ListCategories(ctx context.Context) ([]content.Category, error) {
	return list[content.Category](ctx, s.store, content.CollectionCategory, store.All)
}

func (s *contentService) ListProducts(ctx context.Context, category, query string) ([]content.Product, error) {
	f := equalsIfSet(store.And{}, "category", category)
	if query != "" {
		f = append(f, store.SubstringAnyOf{Fields: productSearchFields, Text: query})
	}
	return list[content.Product](ctx, s.store, content.CollectionProduct, f)
}

func (s *contentService) GetProduct(ctx context.Context, slug string) (content.Product, error) {
	p, found, err := one[content.Product](ctx, s.store, content.CollectionProduct, store.Equals{Field: "slug", Value: slug})
	if err != nil {
		return p, err
	}
	if !found {
		return p, ErrNotFound
	}
	return p, nil
}

func (s *contentService) ListSectors(ctx context.Context) ([]content.Sector, error) {
	return list[content.Sector](ctx, s.store, content.CollectionSector, store.All)
}

func (s *contentService) GetSector(ctx context.Context, slug string) (content.Sector, error) {
	sec, found, err := one[content.Sector](ctx, s.store, content.CollectionSector, store.Equals{Field: "slug", Value: slug})
	if err != nil {
		return sec, err
	}
	if !found {
		return sec, ErrNotFound
	}
	return sec, nil
}

func (s *contentService) ListNews(ctx context.Context, tag string) ([]content.News, error) {
	f := store.And{}
	if tag != "" {
		f = append(f, store.ListContains{Field: "tags", Value: tag})
	}
	return list[content.News](ctx, s.store, content.CollectionNews, f)
}

func (s *contentService) ListDocuments(ctx context.Context, productSlug, category, language string) ([]content.Document, error) {
	f := equalsIfSet(store.And{}, "product_slug", productSlug)
	f = equalsIfSet(f, "category", category)
	f = equalsIfSet(f, "language", language)
	return list[content.Document](ctx, s.store, content.CollectionDocument, f)
}

func (s *contentService) ListJobs(ctx context.Context, department string) ([]content.Job, error) {
	f := equalsIfSet(store.And{}, "department", department)
	return list[content.Job](ctx, s.store, content.CollectionJob, f)
}

func (s *contentService) SubmitApplication(ctx context.Context, a content.Application) error {
	if err := s.store.Insert(ctx, content.CollectionApplication, a); err != nil {
		return err
	}
	metrics.Submissions.WithLabelValues("application").Inc()
	return nil
}

func (s *contentService) SubmitContact(ctx context.Context, m content.ContactMessage) error {
	if err := s.store.Insert(ctx, content.CollectionContactMessage, m); err != nil {
		return err
	}
	metrics.Submissions.WithLabelValues("contact").Inc()
	return nil
}

func (s *contentService) GetCompany(ctx context.Context) (content.CompanyProfile, bool, error) {
	return one[content.CompanyProfile](ctx, s.store, content.CollectionCompanyProfile, store.All)
}
