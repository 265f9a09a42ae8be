package services

import (
	"context"
	"strings"

	"github.com/goutelas/content-api/internal/core/domain/content"
	"golang.org/x/sync/errgroup"
)

// Events returns the event collection with partner references resolved.
func (s *ContentService) Events(ctx context.Context) ([]content.Event, error) {
	events, err := loadListThrough(s, ctx, keyEvents, func(ctx context.Context) ([]content.Event, error) {
		events, err := s.source.Events(ctx)
		if err != nil {
			return nil, err
		}
		s.resolveAllPartners(ctx, events)
		return events, nil
	})
	if err != nil {
		return coalesceList[content.Event](s, keyEvents, err)
	}
	return events, nil
}

// EventBySlug returns one event with resolved partners, or nil when no
// event carries the slug.
func (s *ContentService) EventBySlug(ctx context.Context, slug string) (*content.Event, error) {
	key := keyPrefixEvent + slug
	if v, ok := cacheGet[content.Event](s.cache, ctx, key); ok {
		cacheHits.WithLabelValues("event").Inc()
		return v, nil
	}
	cacheMisses.WithLabelValues("event").Inc()

	event, err := s.source.EventBySlug(ctx, slug)
	if err != nil {
		return nil, s.coalesceLookup("event "+slug, err)
	}
	if event == nil {
		return nil, nil
	}
	s.resolvePartners(ctx, event)
	cacheSetSilently(s.cache, ctx, key, event, s.ttl)
	return event, nil
}

// EventSlugs returns the slugs of all events.
func (s *ContentService) EventSlugs(ctx context.Context) ([]string, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(events))
	for _, e := range events {
		slugs = append(slugs, e.Slug)
	}
	return slugs, nil
}

// EventsByPageSlug returns the events whose display page is the page with
// the given slug.
func (s *ContentService) EventsByPageSlug(ctx context.Context, slug string) ([]content.Event, error) {
	page, err := s.PageBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return []content.Event{}, nil
	}
	return s.eventsByPageURL(ctx, page.Link)
}

func (s *ContentService) eventsByPageURL(ctx context.Context, pageURL string) ([]content.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	want := strings.TrimRight(pageURL, "/")
	out := make([]content.Event, 0)
	for _, e := range events {
		if e.ACF == nil {
			continue
		}
		for _, u := range e.ACF.DisplayPageURLs() {
			if strings.TrimRight(u, "/") == want {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

// resolveAllPartners resolves partner references for every event in place.
// Per-event fan-outs already run concurrently; events are walked in order so
// the collection keeps its original ordering.
func (s *ContentService) resolveAllPartners(ctx context.Context, events []content.Event) {
	for i := range events {
		s.resolvePartners(ctx, &events[i])
	}
}

// resolvePartners resolves the event's partner reference URLs into partner
// details, concurrently and index-preserving. References that fail to
// resolve are dropped; the event is mutated in place.
func (s *ContentService) resolvePartners(ctx context.Context, event *content.Event) {
	if event.ACF == nil || len(event.ACF.PartnerRefs) == 0 {
		return
	}
	results := make([]*content.PartnerDetail, len(event.ACF.PartnerRefs))
	var g errgroup.Group
	for i, ref := range event.ACF.PartnerRefs {
		i, ref := i, ref
		g.Go(func() error {
			results[i] = s.partnerByReference(ctx, ref)
			return nil
		})
	}
	_ = g.Wait()

	details := make([]content.PartnerDetail, 0, len(results))
	for _, d := range results {
		if d != nil {
			details = append(details, *d)
		}
	}
	event.ACF.PartnerDetails = details
}

// slugFromReference extracts the partner slug from a reference URL: the
// second-to-last path segment, falling back to the last (reference URLs
// normally end with a trailing slash).
func slugFromReference(ref string) string {
	parts := strings.Split(ref, "/")
	if len(parts) >= 2 && parts[len(parts)-2] != "" {
		return parts[len(parts)-2]
	}
	return parts[len(parts)-1]
}

// partnerByReference resolves one reference URL, caching per slug. Returns
// nil when the reference cannot be resolved.
func (s *ContentService) partnerByReference(ctx context.Context, ref string) *content.PartnerDetail {
	slug := slugFromReference(ref)
	if slug == "" {
		return nil
	}
	key := keyPrefixPartner + slug
	if v, ok := cacheGet[content.PartnerDetail](s.cache, ctx, key); ok {
		cacheHits.WithLabelValues("partner").Inc()
		return v
	}
	cacheMisses.WithLabelValues("partner").Inc()

	partner, err := s.source.PartnerBySlug(ctx, slug)
	if err != nil || partner == nil {
		if err != nil && s.logger != nil {
			s.logger.WithError(err).WithField("slug", slug).Debug("partner reference did not resolve")
		}
		return nil
	}
	detail := &content.PartnerDetail{
		ID:    partner.ID,
		Title: content.DecodeEntities(partner.Title.Rendered),
		Link:  partner.Link,
	}
	cacheSetSilently(s.cache, ctx, key, detail, s.ttl)
	return detail
}
