package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goutelas/content-api/internal/core/domain/content"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var upstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wordpress_requests_total",
		Help: "The total number of requests issued to the WordPress REST API",
	},
	[]string{"resource", "status"},
)

func init() {
	prometheus.MustRegister(upstreamRequests)
}

// Config holds the content-source connection settings.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	PerPage        int
}

// maxPerPage is the WordPress REST pagination ceiling.
const maxPerPage = 100

// Client implements ports.ContentSource against a WordPress REST API.
type Client struct {
	base    string
	perPage int
	http    *http.Client
	logger  *logrus.Logger
}

// NewClient creates a content-source client. The request timeout applies to
// every outbound call.
func NewClient(cfg *Config, logger *logrus.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		perPage: perPage,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// getJSON issues a GET against the given REST path and decodes the JSON
// response into v. Non-2xx statuses and non-JSON responses are errors.
func (c *Client) getJSON(ctx context.Context, resource, path string, query url.Values, v any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", resource, err)
	}
	req.Header.Set("Accept-Charset", "utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()
	upstreamRequests.WithLabelValues(resource, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("fetch %s: unexpected status %d", resource, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return fmt.Errorf("fetch %s: unexpected content type %q", resource, ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

func (c *Client) listQuery(extra url.Values) url.Values {
	q := url.Values{}
	q.Set("per_page", fmt.Sprintf("%d", c.perPage))
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return q
}

// Pages fetches the full page list with the navigation field selection.
func (c *Client) Pages(ctx context.Context) ([]content.Page, error) {
	q := c.listQuery(url.Values{"_fields": {"id,title,link,parent,slug,menu_order"}})
	var pages []content.Page
	if err := c.getJSON(ctx, "pages", "/wp-json/wp/v2/pages", q, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// PageBySlug fetches one page with content and custom fields. Returns nil
// when no page matches.
func (c *Client) PageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	q := url.Values{
		"slug":       {slug},
		"_fields":    {"id,title,content,link,slug,parent,acf"},
		"acf_format": {"standard"},
	}
	var pages []content.Page
	if err := c.getJSON(ctx, "page", "/wp-json/wp/v2/pages", q, &pages); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}
	return &pages[0], nil
}

// Events fetches the full event collection with embedded media and terms.
func (c *Client) Events(ctx context.Context) ([]content.Event, error) {
	q := c.listQuery(url.Values{"_embed": {"1"}, "acf_format": {"standard"}})
	var events []content.Event
	if err := c.getJSON(ctx, "events", "/wp-json/wp/v2/evenement", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EventBySlug fetches one event. Returns nil when no event matches.
func (c *Client) EventBySlug(ctx context.Context, slug string) (*content.Event, error) {
	q := url.Values{"slug": {slug}, "_embed": {"1"}, "acf_format": {"standard"}}
	var events []content.Event
	if err := c.getJSON(ctx, "event", "/wp-json/wp/v2/evenement", q, &events); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

// Posts fetches the full post collection.
func (c *Client) Posts(ctx context.Context) ([]content.Post, error) {
	q := c.listQuery(url.Values{"_embed": {"1"}, "acf_format": {"standard"}})
	var posts []content.Post
	if err := c.getJSON(ctx, "posts", "/wp-json/wp/v2/posts", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// TeamMembers fetches the "membre" collection.
func (c *Client) TeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	q := c.listQuery(url.Values{"_embed": {"1"}, "acf_format": {"standard"}})
	var members []content.TeamMember
	if err := c.getJSON(ctx, "team-members", "/wp-json/wp/v2/membre", q, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Partners fetches the "partenaire" collection.
func (c *Client) Partners(ctx context.Context) ([]content.Partner, error) {
	q := c.listQuery(url.Values{"_embed": {"1"}, "acf_format": {"standard"}})
	var partners []content.Partner
	if err := c.getJSON(ctx, "partners", "/wp-json/wp/v2/partenaire", q, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// PartnerBySlug fetches the minimal partner record used by reference
// resolution. Returns nil when no partner matches.
func (c *Client) PartnerBySlug(ctx context.Context, slug string) (*content.Partner, error) {
	q := url.Values{"slug": {slug}, "_fields": {"id,title,link"}}
	var partners []content.Partner
	if err := c.getJSON(ctx, "partner", "/wp-json/wp/v2/partenaire", q, &partners); err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return nil, nil
	}
	return &partners[0], nil
}

// SiteOptions fetches the custom settings endpoint. The payload is either
// the options object itself or wrapped in a "data" envelope.
func (c *Client) SiteOptions(ctx context.Context) (*content.SiteOptions, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "site-options", "/wp-json/site/v1/reglages", nil, &raw); err != nil {
		return nil, err
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	payload := raw
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		payload = envelope.Data
	}
	var opts content.SiteOptions
	if err := json.Unmarshal(payload, &opts); err != nil {
		return nil, fmt.Errorf("decode site options: %w", err)
	}
	return &opts, nil
}

// Ping probes the content source with a minimal page request, for health
// checks.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{"per_page": {"1"}, "_fields": {"id"}}
	var pages []struct {
		ID int `json:"id"`
	}
	return c.getJSON(ctx, "ping", "/wp-json/wp/v2/pages", q, &pages)
}
