package wordpress

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(&Config{BaseURL: srv.URL, RequestTimeout: 2 * time.Second}, logger)
}

func jsonHandler(t *testing.T, wantPath string, capture *url.Values, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "utf-8", r.Header.Get("Accept-Charset"))
		if capture != nil {
			*capture = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(body))
	}
}

func TestPages_QueryAndDecode(t *testing.T) {
	var query url.Values
	c := newTestClient(t, jsonHandler(t, "/wp-json/wp/v2/pages", &query,
		`[{"id":1,"title":{"rendered":"Accueil"},"slug":"accueil","parent":0,"menu_order":1}]`))

	pages, err := c.Pages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Accueil", pages[0].Title.Rendered)

	assert.Equal(t, "100", query.Get("per_page"))
	assert.Equal(t, "id,title,link,parent,slug,menu_order", query.Get("_fields"))
}

func TestEvents_QueryAndDecode(t *testing.T) {
	var query url.Values
	c := newTestClient(t, jsonHandler(t, "/wp-json/wp/v2/evenement", &query,
		`[{"id":3,"title":{"rendered":"Concert"},"slug":"concert","acf":{"date_de_debut":"01/06/2024"}}]`))

	events, err := c.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].ACF)
	assert.Equal(t, "01/06/2024", events[0].ACF.StartDate)

	assert.Equal(t, "1", query.Get("_embed"))
	assert.Equal(t, "standard", query.Get("acf_format"))
	assert.Equal(t, "100", query.Get("per_page"))
}

func TestEventBySlug(t *testing.T) {
	var query url.Values
	c := newTestClient(t, jsonHandler(t, "/wp-json/wp/v2/evenement", &query,
		`[{"id":3,"title":{"rendered":"Concert"},"slug":"concert"}]`))

	event, err := c.EventBySlug(context.Background(), "concert")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, 3, event.ID)
	assert.Equal(t, "concert", query.Get("slug"))
}

func TestEventBySlug_NotFound(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/wp-json/wp/v2/evenement", nil, `[]`))

	event, err := c.EventBySlug(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestPartnerBySlug_MinimalFields(t *testing.T) {
	var query url.Values
	c := newTestClient(t, jsonHandler(t, "/wp-json/wp/v2/partenaire", &query,
		`[{"id":9,"title":{"rendered":"Mus&#233;e"},"link":"https://example.org/partenaire/musee/"}]`))

	p, err := c.PartnerBySlug(context.Background(), "musee")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 9, p.ID)
	assert.Equal(t, "id,title,link", query.Get("_fields"))
}

func TestGetJSON_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Pages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestGetJSON_NonJSONResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := c.Events(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected content type")
}

func TestSiteOptions_DataEnvelope(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/wp-json/site/v1/reglages", nil,
		`{"data":{"titre_du_site":"Château de Goutelas"}}`))

	opts, err := c.SiteOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Château de Goutelas", opts.SiteTitle)
}

func TestSiteOptions_BareObject(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/wp-json/site/v1/reglages", nil,
		`{"titre_du_site":"Château de Goutelas","description_du_site":"Centre culturel"}`))

	opts, err := c.SiteOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Centre culturel", opts.SiteDescription)
}

func TestPing(t *testing.T) {
	var query url.Values
	c := newTestClient(t, jsonHandler(t, "/wp-json/wp/v2/pages", &query, `[{"id":1}]`))

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "1", query.Get("per_page"))
}
