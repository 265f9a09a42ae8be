package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/goutelas/content-api/internal/core/domain/content"
)

// ContentSourceMock is a lightweight mock for ports.ContentSource
type ContentSourceMock struct {
	PagesFn         func(ctx context.Context) ([]content.Page, error)
	PageBySlugFn    func(ctx context.Context, slug string) (*content.Page, error)
	EventsFn        func(ctx context.Context) ([]content.Event, error)
	EventBySlugFn   func(ctx context.Context, slug string) (*content.Event, error)
	PostsFn         func(ctx context.Context) ([]content.Post, error)
	TeamMembersFn   func(ctx context.Context) ([]content.TeamMember, error)
	PartnersFn      func(ctx context.Context) ([]content.Partner, error)
	PartnerBySlugFn func(ctx context.Context, slug string) (*content.Partner, error)
	SiteOptionsFn   func(ctx context.Context) (*content.SiteOptions, error)
}

func (m *ContentSourceMock) Pages(ctx context.Context) ([]content.Page, error) {
	if m.PagesFn != nil {
		return m.PagesFn(ctx)
	}
	return nil, nil
}
func (m *ContentSourceMock) PageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	if m.PageBySlugFn != nil {
		return m.PageBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *ContentSourceMock) Events(ctx context.Context) ([]content.Event, error) {
	if m.EventsFn != nil {
		return m.EventsFn(ctx)
	}
	return nil, nil
}
func (m *ContentSourceMock) EventBySlug(ctx context.Context, slug string) (*content.Event, error) {
	if m.EventBySlugFn != nil {
		return m.EventBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *ContentSourceMock) Posts(ctx context.Context) ([]content.Post, error) {
	if m.PostsFn != nil {
		return m.PostsFn(ctx)
	}
	return nil, nil
}
func (m *ContentSourceMock) TeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	if m.TeamMembersFn != nil {
		return m.TeamMembersFn(ctx)
	}
	return nil, nil
}
func (m *ContentSourceMock) Partners(ctx context.Context) ([]content.Partner, error) {
	if m.PartnersFn != nil {
		return m.PartnersFn(ctx)
	}
	return nil, nil
}
func (m *ContentSourceMock) PartnerBySlug(ctx context.Context, slug string) (*content.Partner, error) {
	if m.PartnerBySlugFn != nil {
		return m.PartnerBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *ContentSourceMock) SiteOptions(ctx context.Context) (*content.SiteOptions, error) {
	if m.SiteOptionsFn != nil {
		return m.SiteOptionsFn(ctx)
	}
	return nil, nil
}

// CacheMock is an in-memory ports.Cache without expiry, recording writes.
type CacheMock struct {
	mu      sync.Mutex
	Entries map[string][]byte
	SetKeys []string
}

func NewCacheMock() *CacheMock {
	return &CacheMock{Entries: map[string][]byte{}}
}

func (m *CacheMock) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Entries[key]
	return b, ok, nil
}

func (m *CacheMock) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries[key] = value
	m.SetKeys = append(m.SetKeys, key)
	return nil
}

func (m *CacheMock) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Entries, key)
	return nil
}

// ContentServiceMock is a lightweight mock for ports.ContentService
type ContentServiceMock struct {
	PagesFn            func(ctx context.Context) ([]content.Page, error)
	PageBySlugFn       func(ctx context.Context, slug string) (*content.Page, error)
	PageSlugsFn        func(ctx context.Context) ([]string, error)
	EventsFn           func(ctx context.Context) ([]content.Event, error)
	EventBySlugFn      func(ctx context.Context, slug string) (*content.Event, error)
	EventSlugsFn       func(ctx context.Context) ([]string, error)
	EventsByPageSlugFn func(ctx context.Context, slug string) ([]content.Event, error)
	PostsFn            func(ctx context.Context) ([]content.Post, error)
	TeamMembersFn      func(ctx context.Context) ([]content.TeamMember, error)
	PartnersFn         func(ctx context.Context) ([]content.Partner, error)
	SiteOptionsFn      func(ctx context.Context) (*content.SiteOptions, error)
}

func (m *ContentServiceMock) Pages(ctx context.Context) ([]content.Page, error) {
	if m.PagesFn != nil {
		return m.PagesFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) PageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	if m.PageBySlugFn != nil {
		return m.PageBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *ContentServiceMock) PageSlugs(ctx context.Context) ([]string, error) {
	if m.PageSlugsFn != nil {
		return m.PageSlugsFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) Events(ctx context.Context) ([]content.Event, error) {
	if m.EventsFn != nil {
		return m.EventsFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) EventBySlug(ctx context.Context, slug string) (*content.Event, error) {
	if m.EventBySlugFn != nil {
		return m.EventBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *ContentServiceMock) EventSlugs(ctx context.Context) ([]string, error) {
	if m.EventSlugsFn != nil {
		return m.EventSlugsFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) EventsByPageSlug(ctx context.Context, slug string) ([]content.Event, error) {
	if m.EventsByPageSlugFn != nil {
		return m.EventsByPageSlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *ContentServiceMock) Posts(ctx context.Context) ([]content.Post, error) {
	if m.PostsFn != nil {
		return m.PostsFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) TeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	if m.TeamMembersFn != nil {
		return m.TeamMembersFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) Partners(ctx context.Context) ([]content.Partner, error) {
	if m.PartnersFn != nil {
		return m.PartnersFn(ctx)
	}
	return nil, nil
}
func (m *ContentServiceMock) SiteOptions(ctx context.Context) (*content.SiteOptions, error) {
	if m.SiteOptionsFn != nil {
		return m.SiteOptionsFn(ctx)
	}
	return nil, nil
}
