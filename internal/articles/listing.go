package articles

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"newsportal/internal/category"
	"newsportal/internal/classify"
	"newsportal/pkg/models"
)

// Listing paths reported in models.ListResult.Path.
const (
	PathAll      = "all"
	PathDatabase = "database"
	PathSmart    = "smart"
)

var tracer = otel.Tracer("newsportal/internal/articles")

// Store is the query side of the article repository.
type Store interface {
	Find(ctx context.Context, q Query) ([]models.Article, error)
	Count(ctx context.Context, q Query) (int, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
}

// CategorySource provides the category lookup table.
type CategorySource interface {
	ListAll(ctx context.Context) ([]models.Category, error)
}

type Options struct {
	DefaultPageSize  int
	MaxPageSize      int
	SupersetMultiple int
	SupersetCap      int
}

func DefaultOptions() Options {
	return Options{DefaultPageSize: 20, MaxPageSize: 100, SupersetMultiple: 10, SupersetCap: 500}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DefaultPageSize <= 0 {
		o.DefaultPageSize = d.DefaultPageSize
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = d.MaxPageSize
	}
	if o.DefaultPageSize > o.MaxPageSize {
		o.DefaultPageSize = o.MaxPageSize
	}
	if o.SupersetMultiple <= 0 {
		o.SupersetMultiple = d.SupersetMultiple
	}
	if o.SupersetCap <= 0 {
		o.SupersetCap = d.SupersetCap
	}
	return o
}

type ListRequest struct {
	Language string
	Category string
	Page     int // 1-based
	PageSize int
	Sort     Sort
}

// Engine serves article listings. Categories backed by a registered record
// are filtered by the store; any other category is resolved per article in
// memory over a bounded superset.
type Engine struct {
	store      Store
	categories CategorySource
	resolver   *category.Resolver
	opts       Options
	log        zerolog.Logger
}

func NewEngine(store Store, categories CategorySource, resolver *category.Resolver, opts Options, log zerolog.Logger) *Engine {
	if resolver == nil {
		resolver = category.NewResolver(nil, category.DefaultOverrides())
	}
	return &Engine{
		store:      store,
		categories: categories,
		resolver:   resolver,
		opts:       opts.withDefaults(),
		log:        log,
	}
}

func (e *Engine) Resolver() *category.Resolver {
	return e.resolver
}

// List returns one page of articles for the requested language and category.
// Any store failure is returned as a *StoreError; an empty page always means
// nothing matched.
func (e *Engine) List(ctx context.Context, req ListRequest) (res models.ListResult, err error) {
	ctx, span := tracer.Start(ctx, "articles.List")
	defer func() { endSpan(span, err) }()

	page, pageSize := e.pageBounds(req.Page, req.PageSize)
	base := Query{Languages: languageValues(req.Language), Sort: req.Sort}
	requested := strings.ToLower(strings.TrimSpace(req.Category))

	lookup, err := e.lookup(ctx)
	if err != nil {
		storeFailures.WithLabelValues("lookup").Inc()
		return models.ListResult{}, err
	}

	res = models.ListResult{Page: page, PageSize: pageSize, Items: []models.ArticleView{}}

	switch {
	case requested == "" || requested == "all":
		res.Path = PathAll
		err = e.listFromStore(ctx, base, lookup, "", &res)

	case category.IsOpaqueReference(requested):
		res.Path = PathDatabase
		base.CategoryValues = []string{requested}
		key := ""
		if c, ok := lookup.ByID(requested); ok {
			key = strings.ToLower(c.Key)
			base.CategoryValues = append(base.CategoryValues, key)
		}
		err = e.listFromStore(ctx, base, lookup, key, &res)

	default:
		if c, ok := lookup.BySlug(requested); ok {
			res.Path = PathDatabase
			key := strings.ToLower(c.Key)
			base.CategoryValues = []string{c.ID, key}
			err = e.listFromStore(ctx, base, lookup, key, &res)
		} else {
			res.Path = PathSmart
			err = e.listSmart(ctx, base, lookup, requested, &res)
		}
	}

	span.SetAttributes(
		attribute.String("list.path", res.Path),
		attribute.String("list.category", requested),
		attribute.Int("list.page", page),
		attribute.Int("list.total", res.Total),
	)
	if err != nil {
		storeFailures.WithLabelValues(res.Path).Inc()
		return models.ListResult{}, err
	}
	listRequests.WithLabelValues(res.Path).Inc()

	e.log.Debug().
		Str("path", res.Path).
		Str("category", requested).
		Str("language", req.Language).
		Int("page", page).
		Int("total", res.Total).
		Bool("approximate", res.Approximate).
		Msg("listing served")
	return res, nil
}

// Get returns one article with its resolved category, or nil if absent.
func (e *Engine) Get(ctx context.Context, id string) (view *models.ArticleView, err error) {
	ctx, span := tracer.Start(ctx, "articles.Get")
	defer func() { endSpan(span, err) }()

	a, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get", err)
	}
	if a == nil {
		return nil, nil
	}
	lookup, err := e.lookup(ctx)
	if err != nil {
		return nil, err
	}
	v := View(e.resolver, *a, lookup, "")
	return &v, nil
}

// Lookup loads the category table for one request batch.
func (e *Engine) Lookup(ctx context.Context) (*category.Lookup, error) {
	return e.lookup(ctx)
}

func (e *Engine) lookup(ctx context.Context) (*category.Lookup, error) {
	if e.categories == nil {
		return category.NewLookup(nil), nil
	}
	cats, err := e.categories.ListAll(ctx)
	if err != nil {
		return nil, storeErr("categories", err)
	}
	return category.NewLookup(cats), nil
}

func (e *Engine) listFromStore(ctx context.Context, q Query, lookup *category.Lookup, requested string, res *models.ListResult) error {
	total, err := e.store.Count(ctx, q)
	if err != nil {
		return storeErr("count", err)
	}

	q.Limit = res.PageSize
	q.Offset = (res.Page - 1) * res.PageSize
	items, err := e.store.Find(ctx, q)
	if err != nil {
		return storeErr("find", err)
	}

	res.Total = total
	for _, a := range items {
		res.Items = append(res.Items, View(e.resolver, a, lookup, requested))
	}
	return nil
}

func (e *Engine) listSmart(ctx context.Context, q Query, lookup *category.Lookup, requested string, res *models.ListResult) error {
	limit := e.supersetSize(res.PageSize)
	q.Limit = limit
	candidates, err := e.store.Find(ctx, q)
	if err != nil {
		return storeErr("find superset", err)
	}
	smartCandidates.Observe(float64(len(candidates)))

	var matched []models.ArticleView
	for _, a := range candidates {
		v := View(e.resolver, a, lookup, requested)
		if v.Category == requested {
			matched = append(matched, v)
		}
	}

	res.Total = len(matched)
	res.Approximate = len(candidates) >= limit
	if res.Approximate {
		smartCapHits.Inc()
	}

	start := (res.Page - 1) * res.PageSize
	if start < 0 || start >= len(matched) {
		return nil
	}
	end := min(start+res.PageSize, len(matched))
	res.Items = append(res.Items, matched[start:end]...)
	return nil
}

func (e *Engine) pageBounds(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = e.opts.DefaultPageSize
	}
	if pageSize > e.opts.MaxPageSize {
		pageSize = e.opts.MaxPageSize
	}
	// keeps (page-1)*pageSize from overflowing
	if page > math.MaxInt/pageSize {
		page = math.MaxInt / pageSize
	}
	return page, pageSize
}

func (e *Engine) supersetSize(pageSize int) int {
	return min(pageSize*e.opts.SupersetMultiple, e.opts.SupersetCap)
}

// View pairs a stored article with its resolved display category.
func View(r *category.Resolver, a models.Article, lookup *category.Lookup, requested string) models.ArticleView {
	res := r.Resolve(a, lookup, requested)
	return models.ArticleView{
		Article:        a,
		StoredCategory: a.Category,
		Category:       res.Category,
		CategoryLabel:  res.Label,
		ResolvedBy:     string(res.Step),
	}
}

// languageValues expands a requested language into every stored spelling of
// it. Unknown values are matched literally and empty means no filter.
func languageValues(code string) []string {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if lang, ok := classify.LookupLanguage(code); ok {
		return classify.Aliases(lang)
	}
	return []string{code}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
