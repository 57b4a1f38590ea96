package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/model"
)

// fakeStore stubs only the methods a test touches; anything else panics
// through the embedded nil interface.
type fakeStore struct {
	db.Store
	sites   map[int]model.Site
	created []model.Site
}

func (f *fakeStore) ListSites(customerID int) ([]model.Site, error) {
	var out []model.Site
	for _, s := range f.sites {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) GetSiteByID(id, customerID int) (model.Site, error) {
	s, ok := f.sites[id]
	if !ok || s.CustomerID != customerID {
		return model.Site{}, db.ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) CreateSite(customerID int, name string, location *string, timezone string) (model.Site, error) {
	site := model.Site{ID: len(f.sites) + 1, CustomerID: customerID, Name: name, Location: location, Timezone: timezone}
	f.created = append(f.created, site)
	return site, nil
}

func adminRouter(store db.Store, user model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/v1/admin",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", &user)
		}},
	}, SiteModule(store), LayoutModule(store))
	return r
}

func testUser() model.User {
	return model.User{ID: 1, CustomerID: 3, Email: "ops@example.com", Role: "admin"}
}

func TestListSitesScopedToTenant(t *testing.T) {
	store := &fakeStore{sites: map[int]model.Site{
		1: {ID: 1, CustomerID: 3, Name: "hq", Timezone: "UTC"},
		2: {ID: 2, CustomerID: 9, Name: "someone else's", Timezone: "UTC"},
	}}

	r := adminRouter(store, testUser())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sites", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var out []model.Site
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "hq", out[0].Name)
}

func TestCreateSiteValidation(t *testing.T) {
	store := &fakeStore{sites: map[int]model.Site{}}
	r := adminRouter(store, testUser())

	// missing required timezone
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/sites", strings.NewReader(`{"name":"hq"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/sites", strings.NewReader(`{"name":"hq","timezone":"America/New_York"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, 3, store.created[0].CustomerID)
}

func TestGetSiteFromAnotherTenantIs404(t *testing.T) {
	store := &fakeStore{sites: map[int]model.Site{
		2: {ID: 2, CustomerID: 9, Name: "not yours", Timezone: "UTC"},
	}}

	r := adminRouter(store, testUser())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sites/2", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/v1/admin"}, SiteModule(&fakeStore{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sites", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
