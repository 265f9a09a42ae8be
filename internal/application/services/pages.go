package services

import (
	"context"

	"github.com/goutelas/content-api/internal/core/domain/content"
)

// Pages returns the full page list with navigation fields.
func (s *ContentService) Pages(ctx context.Context) ([]content.Page, error) {
	pages, err := loadListThrough(s, ctx, keyPages, s.source.Pages)
	if err != nil {
		return coalesceList[content.Page](s, keyPages, err)
	}
	return pages, nil
}

// PageBySlug returns one page with content and custom fields, or nil when
// no page carries the slug.
func (s *ContentService) PageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	key := keyPrefixPage + slug
	if v, ok := cacheGet[content.Page](s.cache, ctx, key); ok {
		cacheHits.WithLabelValues("page").Inc()
		return v, nil
	}
	cacheMisses.WithLabelValues("page").Inc()

	page, err := s.source.PageBySlug(ctx, slug)
	if err != nil {
		return nil, s.coalesceLookup("page "+slug, err)
	}
	if page == nil {
		return nil, nil
	}
	cacheSetSilently(s.cache, ctx, key, page, s.ttl)
	return page, nil
}

// PageSlugs returns the slugs of all pages.
func (s *ContentService) PageSlugs(ctx context.Context) ([]string, error) {
	pages, err := s.Pages(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(pages))
	for _, p := range pages {
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}
