package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	impl "github.com/goutelas/content-api/internal/application/services"
	"github.com/goutelas/content-api/internal/core/domain/content"
	"github.com/goutelas/content-api/test/mocks"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newService(source *mocks.ContentSourceMock, cache *mocks.CacheMock, coalesce bool) *impl.ContentService {
	return impl.NewContentService(source, cache, &impl.Config{TTL: time.Hour, CoalesceErrors: coalesce}, testLogger())
}

func TestPosts_ReadThrough(t *testing.T) {
	calls := 0
	source := &mocks.ContentSourceMock{
		PostsFn: func(ctx context.Context) ([]content.Post, error) {
			calls++
			return []content.Post{{ID: 1, Title: content.Rendered{Rendered: "Actu"}}}, nil
		},
	}
	cache := mocks.NewCacheMock()
	svc := newService(source, cache, true)
	ctx := context.Background()

	first, err := svc.Posts(ctx)
	if err != nil || len(first) != 1 {
		t.Fatalf("first call: %v, %d posts", err, len(first))
	}
	second, err := svc.Posts(ctx)
	if err != nil || len(second) != 1 {
		t.Fatalf("second call: %v, %d posts", err, len(second))
	}
	if calls != 1 {
		t.Fatalf("expected one source fetch, got %d", calls)
	}
	if _, ok := cache.Entries["posts"]; !ok {
		t.Fatalf("collection not cached, wrote %v", cache.SetKeys)
	}
}

func TestPosts_ConcurrentColdLoadsCoalesce(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	source := &mocks.ContentSourceMock{
		PostsFn: func(ctx context.Context) ([]content.Post, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			time.Sleep(20 * time.Millisecond)
			return []content.Post{{ID: 1}}, nil
		},
	}
	svc := newService(source, mocks.NewCacheMock(), false)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			posts, err := svc.Posts(ctx)
			if err != nil || len(posts) != 1 {
				t.Errorf("concurrent load: %v, %d posts", err, len(posts))
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("expected a single coalesced source fetch, got %d", calls)
	}
}

func TestPosts_ErrorCoalescing(t *testing.T) {
	source := &mocks.ContentSourceMock{
		PostsFn: func(ctx context.Context) ([]content.Post, error) {
			return nil, errors.New("upstream down")
		},
	}

	svc := newService(source, mocks.NewCacheMock(), true)
	posts, err := svc.Posts(context.Background())
	if err != nil {
		t.Fatalf("coalescing service should not surface error: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty collection, got %v", posts)
	}

	strict := newService(source, mocks.NewCacheMock(), false)
	if _, err := strict.Posts(context.Background()); err == nil {
		t.Fatal("strict service should surface the error")
	}
}

func TestEvents_ResolvesPartnersBeforeCaching(t *testing.T) {
	source := &mocks.ContentSourceMock{
		EventsFn: func(ctx context.Context) ([]content.Event, error) {
			return []content.Event{{
				ID:    1,
				Slug:  "concert",
				Title: content.Rendered{Rendered: "Concert"},
				ACF: &content.EventACF{
					PartnerRefs: []string{
						"https://example.org/partenaire/musee-local/",
						"https://example.org/partenaire/inconnu/",
					},
				},
			}}, nil
		},
		PartnerBySlugFn: func(ctx context.Context, slug string) (*content.Partner, error) {
			if slug == "musee-local" {
				return &content.Partner{
					ID:    9,
					Title: content.Rendered{Rendered: "Mus&#8217;e local"},
					Link:  "https://example.org/partenaire/musee-local/",
				}, nil
			}
			return nil, nil
		},
	}
	cache := mocks.NewCacheMock()
	svc := newService(source, cache, true)

	events, err := svc.Events(context.Background())
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	details := events[0].ACF.PartnerDetails
	if len(details) != 1 {
		t.Fatalf("failed lookups must shrink the list, got %d details", len(details))
	}
	if details[0].ID != 9 || details[0].Title != "Mus'e local" {
		t.Fatalf("unexpected detail %+v", details[0])
	}
	if _, ok := cache.Entries["partner-musee-local"]; !ok {
		t.Fatalf("resolved partner not cached per slug, wrote %v", cache.SetKeys)
	}

	// The cached collection already carries resolved details.
	var cached []content.Event
	if raw, ok := cache.Entries["events"]; !ok {
		t.Fatal("events collection not cached")
	} else if err := json.Unmarshal(raw, &cached); err != nil {
		t.Fatalf("decode cached events: %v", err)
	}
	if len(cached[0].ACF.PartnerDetails) != 1 {
		t.Fatal("cached events missing resolved partner details")
	}
}

func TestEventBySlug(t *testing.T) {
	calls := 0
	source := &mocks.ContentSourceMock{
		EventBySlugFn: func(ctx context.Context, slug string) (*content.Event, error) {
			calls++
			if slug != "concert" {
				return nil, nil
			}
			return &content.Event{ID: 3, Slug: "concert", Title: content.Rendered{Rendered: "Concert"}}, nil
		},
	}
	cache := mocks.NewCacheMock()
	svc := newService(source, cache, true)
	ctx := context.Background()

	event, err := svc.EventBySlug(ctx, "concert")
	if err != nil || event == nil || event.ID != 3 {
		t.Fatalf("lookup failed: %v, %+v", err, event)
	}
	if _, err := svc.EventBySlug(ctx, "concert"); err != nil {
		t.Fatalf("cached lookup: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one source lookup, got %d", calls)
	}
	if _, ok := cache.Entries["event-concert"]; !ok {
		t.Fatalf("event not cached under its slug key, wrote %v", cache.SetKeys)
	}

	missing, err := svc.EventBySlug(ctx, "absent")
	if err != nil || missing != nil {
		t.Fatalf("unknown slug: want nil,nil got %+v, %v", missing, err)
	}
	if _, ok := cache.Entries["event-absent"]; ok {
		t.Fatal("absence must not be cached")
	}
}

func TestEventsByPageSlug(t *testing.T) {
	source := &mocks.ContentSourceMock{
		PageBySlugFn: func(ctx context.Context, slug string) (*content.Page, error) {
			if slug != "programmation" {
				return nil, nil
			}
			return &content.Page{ID: 5, Slug: "programmation", Link: "https://example.org/programmation/"}, nil
		},
		EventsFn: func(ctx context.Context) ([]content.Event, error) {
			return []content.Event{
				{ID: 1, Slug: "concert", ACF: &content.EventACF{
					DisplayPage: []byte(`"https://example.org/programmation"`),
				}},
				{ID: 2, Slug: "expo", ACF: &content.EventACF{
					DisplayPage: []byte(`{"url":"https://example.org/ailleurs/"}`),
				}},
				{ID: 3, Slug: "sans-page"},
			}, nil
		},
	}
	svc := newService(source, mocks.NewCacheMock(), true)
	ctx := context.Background()

	events, err := svc.EventsByPageSlug(ctx, "programmation")
	if err != nil {
		t.Fatalf("EventsByPageSlug: %v", err)
	}
	if len(events) != 1 || events[0].ID != 1 {
		t.Fatalf("expected the trailing-slash-insensitive match only, got %+v", events)
	}

	none, err := svc.EventsByPageSlug(ctx, "absent")
	if err != nil || len(none) != 0 {
		t.Fatalf("unknown page: want empty, got %+v, %v", none, err)
	}
}

func TestPageBySlugAndSlugLists(t *testing.T) {
	source := &mocks.ContentSourceMock{
		PagesFn: func(ctx context.Context) ([]content.Page, error) {
			return []content.Page{{ID: 1, Slug: "accueil"}, {ID: 2, Slug: "contact"}}, nil
		},
		PageBySlugFn: func(ctx context.Context, slug string) (*content.Page, error) {
			return &content.Page{ID: 1, Slug: slug}, nil
		},
	}
	cache := mocks.NewCacheMock()
	svc := newService(source, cache, true)
	ctx := context.Background()

	page, err := svc.PageBySlug(ctx, "accueil")
	if err != nil || page == nil {
		t.Fatalf("PageBySlug: %v, %+v", err, page)
	}
	if _, ok := cache.Entries["page-accueil"]; !ok {
		t.Fatalf("page not cached per slug, wrote %v", cache.SetKeys)
	}

	slugs, err := svc.PageSlugs(ctx)
	if err != nil {
		t.Fatalf("PageSlugs: %v", err)
	}
	if len(slugs) != 2 || slugs[0] != "accueil" || slugs[1] != "contact" {
		t.Fatalf("unexpected slugs %v", slugs)
	}
}

func TestSiteOptions_DefaultsOnFailure(t *testing.T) {
	source := &mocks.ContentSourceMock{
		SiteOptionsFn: func(ctx context.Context) (*content.SiteOptions, error) {
			return nil, errors.New("endpoint missing")
		},
	}
	cache := mocks.NewCacheMock()
	svc := newService(source, cache, true)

	opts, err := svc.SiteOptions(context.Background())
	if err != nil {
		t.Fatalf("SiteOptions: %v", err)
	}
	if opts.SiteTitle != "Château de Goutelas" || opts.SiteDescription != "Centre culturel de rencontre" {
		t.Fatalf("expected defaults, got %+v", opts)
	}
	if _, ok := cache.Entries["site-options"]; !ok {
		t.Fatal("fallback options should be cached")
	}
}

func TestSiteOptions_PartialFallback(t *testing.T) {
	source := &mocks.ContentSourceMock{
		SiteOptionsFn: func(ctx context.Context) (*content.SiteOptions, error) {
			return &content.SiteOptions{SiteTitle: "Goutelas"}, nil
		},
	}
	svc := newService(source, mocks.NewCacheMock(), true)

	opts, err := svc.SiteOptions(context.Background())
	if err != nil {
		t.Fatalf("SiteOptions: %v", err)
	}
	if opts.SiteTitle != "Goutelas" {
		t.Fatalf("explicit title lost: %+v", opts)
	}
	if opts.SiteDescription != "Centre culturel de rencontre" {
		t.Fatalf("missing description should fall back: %+v", opts)
	}
}
