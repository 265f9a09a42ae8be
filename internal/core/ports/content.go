package ports

import (
	"context"

	"github.com/goutelas/content-api/internal/core/domain/content"
)

// ContentSource is the read-only boundary to the headless CMS REST API.
// List calls return the full collection (pagination capped upstream);
// singular lookups return nil without error when nothing matches.
type ContentSource interface {
	Pages(ctx context.Context) ([]content.Page, error)
	PageBySlug(ctx context.Context, slug string) (*content.Page, error)
	Events(ctx context.Context) ([]content.Event, error)
	EventBySlug(ctx context.Context, slug string) (*content.Event, error)
	Posts(ctx context.Context) ([]content.Post, error)
	TeamMembers(ctx context.Context) ([]content.TeamMember, error)
	Partners(ctx context.Context) ([]content.Partner, error)
	// PartnerBySlug is the narrow lookup used by partner-reference
	// resolution; only id, title and link are populated.
	PartnerBySlug(ctx context.Context, slug string) (*content.Partner, error)
	SiteOptions(ctx context.Context) (*content.SiteOptions, error)
}

// ContentService is the cached content API consumed by the HTTP layer.
// Events carry resolved partner details on return. Depending on the
// configured error policy, source failures either propagate or coalesce to
// empty collections (nil for singular lookups).
type ContentService interface {
	Pages(ctx context.Context) ([]content.Page, error)
	PageBySlug(ctx context.Context, slug string) (*content.Page, error)
	PageSlugs(ctx context.Context) ([]string, error)
	Events(ctx context.Context) ([]content.Event, error)
	EventBySlug(ctx context.Context, slug string) (*content.Event, error)
	EventSlugs(ctx context.Context) ([]string, error)
	EventsByPageSlug(ctx context.Context, slug string) ([]content.Event, error)
	Posts(ctx context.Context) ([]content.Post, error)
	TeamMembers(ctx context.Context) ([]content.TeamMember, error)
	Partners(ctx context.Context) ([]content.Partner, error)
	SiteOptions(ctx context.Context) (*content.SiteOptions, error)
}
