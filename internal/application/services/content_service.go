package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goutelas/content-api/internal/core/domain/content"
	"github.com/goutelas/content-api/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Cache keys. Collection keys are fixed; singular lookups append the slug.
const (
	keyPages       = "pages"
	keyEvents      = "events"
	keyPosts       = "posts"
	keyTeamMembers = "team-members"
	keyPartners    = "partners"
	keySiteOptions = "site-options"

	keyPrefixPage    = "page-"
	keyPrefixEvent   = "event-"
	keyPrefixPartner = "partner-"
)

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_hits_total",
			Help: "The total number of content cache hits",
		},
		[]string{"collection"},
	)
	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_misses_total",
			Help: "The total number of content cache misses",
		},
		[]string{"collection"},
	)
)

func init() {
	prometheus.MustRegister(cacheHits)
	prometheus.MustRegister(cacheMisses)
}

// Config tunes the content service.
type Config struct {
	// TTL is the cache expiry window.
	TTL time.Duration
	// CoalesceErrors preserves the historical failure policy: source
	// errors are logged and converted to empty collections (nil for
	// singular lookups). When false, errors propagate to the caller.
	CoalesceErrors bool
}

// ContentService serves content through a read-through cache in front of
// the content source.
type ContentService struct {
	source   ports.ContentSource
	cache    ports.Cache
	ttl      time.Duration
	coalesce bool
	logger   *logrus.Logger
	sf       singleflight.Group
}

// NewContentService wires the cached content service.
func NewContentService(source ports.ContentSource, cache ports.Cache, cfg *Config, logger *logrus.Logger) *ContentService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ContentService{
		source:   source,
		cache:    cache,
		ttl:      ttl,
		coalesce: cfg.CoalesceErrors,
		logger:   logger,
	}
}

func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// loadListThrough returns the cached collection under key, coalescing
// concurrent cold-cache loads with singleflight so the source sees a single
// request.
func loadListThrough[T any](s *ContentService, ctx context.Context, key string, loader func(context.Context) ([]T, error)) ([]T, error) {
	if v, ok := cacheGet[[]T](s.cache, ctx, key); ok {
		cacheHits.WithLabelValues(key).Inc()
		return *v, nil
	}
	cacheMisses.WithLabelValues(key).Inc()

	res, err, _ := s.sf.Do(key, func() (any, error) {
		if v, ok := cacheGet[[]T](s.cache, ctx, key); ok {
			return *v, nil
		}
		items, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		cacheSetSilently(s.cache, ctx, key, items, s.ttl)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	items, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return items, nil
}

// coalesceList applies the error policy for collection fetches.
func coalesceList[T any](s *ContentService, op string, err error) ([]T, error) {
	if !s.coalesce {
		return nil, err
	}
	if s.logger != nil {
		s.logger.WithError(err).Warnf("failed to fetch %s, returning empty collection", op)
	}
	return []T{}, nil
}

// coalesceLookup applies the error policy for singular lookups.
func (s *ContentService) coalesceLookup(op string, err error) error {
	if !s.coalesce {
		return err
	}
	if s.logger != nil {
		s.logger.WithError(err).Warnf("failed to fetch %s, treating as absent", op)
	}
	return nil
}

// Posts returns the post collection.
func (s *ContentService) Posts(ctx context.Context) ([]content.Post, error) {
	posts, err := loadListThrough(s, ctx, keyPosts, s.source.Posts)
	if err != nil {
		return coalesceList[content.Post](s, keyPosts, err)
	}
	return posts, nil
}

// TeamMembers returns the team member collection.
func (s *ContentService) TeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	members, err := loadListThrough(s, ctx, keyTeamMembers, s.source.TeamMembers)
	if err != nil {
		return coalesceList[content.TeamMember](s, keyTeamMembers, err)
	}
	return members, nil
}

// Partners returns the partner collection.
func (s *ContentService) Partners(ctx context.Context) ([]content.Partner, error) {
	partners, err := loadListThrough(s, ctx, keyPartners, s.source.Partners)
	if err != nil {
		return coalesceList[content.Partner](s, keyPartners, err)
	}
	return partners, nil
}

// Default site options served when the settings endpoint is unreachable.
const (
	defaultSiteTitle       = "Château de Goutelas"
	defaultSiteDescription = "Centre culturel de rencontre"
)

// SiteOptions returns the global site settings, falling back to defaults on
// failure. The fallback is cached like a successful response.
func (s *ContentService) SiteOptions(ctx context.Context) (*content.SiteOptions, error) {
	if v, ok := cacheGet[content.SiteOptions](s.cache, ctx, keySiteOptions); ok {
		cacheHits.WithLabelValues(keySiteOptions).Inc()
		return v, nil
	}
	cacheMisses.WithLabelValues(keySiteOptions).Inc()

	opts, err := s.source.SiteOptions(ctx)
	if err != nil || opts == nil {
		if err != nil && !s.coalesce {
			return nil, err
		}
		if err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("failed to fetch site options, using defaults")
		}
		opts = &content.SiteOptions{}
	}
	if opts.SiteTitle == "" {
		opts.SiteTitle = defaultSiteTitle
	}
	if opts.SiteDescription == "" {
		opts.SiteDescription = defaultSiteDescription
	}
	cacheSetSilently(s.cache, ctx, keySiteOptions, opts, s.ttl)
	return opts, nil
}
