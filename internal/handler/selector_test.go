package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsselect/internal/clientinfo"
	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/httputil"
	"cmsselect/internal/i18n"
	"cmsselect/internal/selection"
	"cmsselect/internal/service/auth"
)

// call records the arguments of one Render.
type call struct {
	clientID, languageID int
	a, b                 string
	opts                 models.SelectorOptions
}

type fakeFactory struct {
	listing *models.Listing
	err     error
	calls   []call
}

type fakeSelector struct {
	f                    *fakeFactory
	clientID, languageID int
}

func (s fakeSelector) render(a, b string, opts models.SelectorOptions) (*models.Listing, error) {
	s.f.calls = append(s.f.calls, call{clientID: s.clientID, languageID: s.languageID, a: a, b: b, opts: opts})
	return s.f.listing, s.f.err
}

func (s fakeSelector) Render(_ context.Context, a, b string, opts models.SelectorOptions) (*models.Listing, error) {
	return s.render(a, b, opts)
}

type fakeArticleSelector struct{ fakeSelector }

func (s fakeArticleSelector) RenderID(_ context.Context, id int, b string, opts models.SelectorOptions) (*models.Listing, error) {
	return s.render(selection.Encode(selection.Category(id)), b, opts)
}

func (f *fakeFactory) Categories(c, l int) (services.CategoryTreeSelector, error) {
	return fakeSelector{f, c, l}, nil
}
func (f *fakeFactory) Articles(c, l int) (services.ArticleSelector, error) {
	return fakeArticleSelector{fakeSelector{f, c, l}}, nil
}
func (f *fakeFactory) ContentSlots(c, l int) (services.ContentSlotSelector, error) {
	return fakeSelector{f, c, l}, nil
}
func (f *fakeFactory) Files(c, l int) (services.FileTreeSelector, error) {
	return fakeSelector{f, c, l}, nil
}

const clientsYAML = `
clients:
  - id: 1
    name: Demo
    path:
      path: /var/www/demo/
    languages:
      1: de
      2: en
`

func newTestServer(t *testing.T, f *fakeFactory) http.Handler {
	t.Helper()
	clients, err := clientinfo.Parse([]byte(clientsYAML))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	RegisterRoutes(mux,
		NewSelectorHandler(f, auth.NewClaimsAuthorizer(clients), i18n.New("en"), logger),
		NewSelectionHandler(logger),
	)
	return mux
}

func sampleListing() *models.Listing {
	return &models.Listing{Nodes: []models.TreeNode{
		{Token: selection.Category(1), Value: "idcat:1", Label: ">Home", Selectable: true, Online: true, Selected: true},
		{Token: selection.Category(2), Value: "idcat:2", Label: ">News", Level: 1, Selectable: true, Online: true},
	}}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(t, newTestServer(t, &fakeFactory{}), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCategoriesJSON(t *testing.T) {
	f := &fakeFactory{listing: sampleListing()}
	h := newTestServer(t, f)

	w := get(t, h, "/api/clients/1/selectors/categories?lang=1&selected=idcat:1&articles=idcatart:3&start_level=2&with_articles=1&container=4&index=2")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SelectorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "C4CMS_VAR[2]", resp.Name)
	assert.Equal(t, "Bitte wählen", resp.OptionLabel)
	require.Len(t, resp.Listing.Nodes, 2)
	assert.Equal(t, selection.Category(1), resp.Listing.Nodes[0].Token)

	require.Len(t, f.calls, 1)
	c := f.calls[0]
	assert.Equal(t, 1, c.clientID)
	assert.Equal(t, 1, c.languageID)
	assert.Equal(t, "idcat:1", c.a)
	assert.Equal(t, "idcatart:3", c.b)
	assert.Equal(t, 2, c.opts.StartLevel)
	assert.True(t, c.opts.WithArticles)
	assert.False(t, c.opts.DisableCategories)
}

func TestCategoriesHTML(t *testing.T) {
	h := newTestServer(t, &fakeFactory{listing: sampleListing()})

	w := get(t, h, "/api/clients/1/selectors/categories?lang=2&format=html&name=cat&multiple=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, "Please choose", doc.Find("option").First().Text())
	value, _ := doc.Find("input#cat_value").Attr("value")
	assert.Equal(t, "idcat:1", value)
}

func TestArticlesParams(t *testing.T) {
	f := &fakeFactory{listing: &models.Listing{Disabled: true}}
	h := newTestServer(t, f)

	w := get(t, h, "/api/clients/1/selectors/articles?category=idcat:5&selected=idcatart:2&include_offline=true&label=None&no_first_option=1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SelectorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Listing.Disabled)
	assert.Empty(t, resp.OptionLabel)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "idcat:5", f.calls[0].a)
	assert.Equal(t, "idcatart:2", f.calls[0].b)
	assert.True(t, f.calls[0].opts.IncludeOffline)

	w = get(t, h, "/api/clients/1/selectors/articles?category=idcat:5&label=None")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "None", resp.OptionLabel)
}

func TestContentSlotsParams(t *testing.T) {
	f := &fakeFactory{listing: &models.Listing{}}
	h := newTestServer(t, f)

	w := get(t, h, "/api/clients/1/selectors/content-slots?articles=idcatart:1,idcatart:2&selected=1:1&types=1,2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "idcatart:1,idcatart:2", f.calls[0].a)
	assert.Equal(t, "1:1", f.calls[0].b)
	assert.Equal(t, "1,2", f.calls[0].opts.TypeRange)
}

func TestFilesParams(t *testing.T) {
	f := &fakeFactory{listing: &models.Listing{}}
	h := newTestServer(t, f)

	w := get(t, h, "/api/clients/1/selectors/files?path=images/&selected=idupl:3&directory_selectable=0&filter_empty=1&file_types=jpg,png&file_types=*.pdf")
	require.Equal(t, http.StatusOK, w.Code)

	c := f.calls[0]
	assert.Equal(t, "images/", c.a)
	assert.Equal(t, "idupl:3", c.b)
	require.NotNil(t, c.opts.DirectoryIsSelectable)
	assert.False(t, *c.opts.DirectoryIsSelectable)
	assert.True(t, c.opts.FilterEmptyDirectory)
	assert.Equal(t, []string{"jpg", "png", "*.pdf"}, c.opts.FileTypes)

	get(t, h, "/api/clients/1/selectors/files")
	assert.Nil(t, f.calls[1].opts.DirectoryIsSelectable)
}

func TestSelectorErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "bad client", target: "/api/clients/x/selectors/categories", want: http.StatusBadRequest},
		{name: "zero client", target: "/api/clients/0/selectors/categories", want: http.StatusBadRequest},
		{name: "unknown client", target: "/api/clients/9/selectors/categories", want: http.StatusNotFound},
		{name: "bad lang", target: "/api/clients/1/selectors/categories?lang=0", want: http.StatusBadRequest},
		{name: "bad format", target: "/api/clients/1/selectors/categories?format=xml", want: http.StatusBadRequest},
		{name: "bad flag", target: "/api/clients/1/selectors/categories?with_articles=maybe", want: http.StatusBadRequest},
		{name: "half module token", target: "/api/clients/1/selectors/categories?container=1", want: http.StatusBadRequest},
		{name: "validation", target: "/api/clients/1/selectors/categories", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "misconfigured", target: "/api/clients/1/selectors/files", err: domain.NewConfigurationError("file tree selector", "upload repository is required"), want: http.StatusInternalServerError},
		{name: "store failure", target: "/api/clients/1/selectors/articles", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t, &fakeFactory{listing: &models.Listing{}, err: tt.err})
			w := get(t, h, tt.target)
			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
		})
	}
}

func TestClientAccess(t *testing.T) {
	h := newTestServer(t, &fakeFactory{listing: &models.Listing{}})

	req := httptest.NewRequest(http.MethodGet, "/api/clients/1/selectors/categories", nil)
	req = httputil.WithClaims(req, &models.AdminClaims{Clients: []int{2}})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/clients/1/selectors/categories", nil)
	req = httputil.WithClaims(req, &models.AdminClaims{Clients: []int{1}})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDecode(t *testing.T) {
	h := newTestServer(t, &fakeFactory{})

	w := get(t, h, "/api/selections/decode?kind=category&value=idcat:3,7,bogus:1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"kind":"category","tokens":[
		{"kind":"category","id":3,"value":"idcat:3"},
		{"kind":"category","id":7,"value":"idcat:7"}]}`, w.Body.String())

	w = get(t, h, "/api/selections/decode?value=7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tokens":[]}`, w.Body.String())

	w = get(t, h, "/api/selections/decode?kind=content-slot&value=4:2")
	assert.JSONEq(t, `{"kind":"content-slot","tokens":[{"kind":"content-slot","id":4,"type_id":2,"value":"4:2"}]}`, w.Body.String())

	w = get(t, h, "/api/selections/decode?kind=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
