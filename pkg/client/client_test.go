package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64     { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestGetSculptures_EncodesFilter(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/method/sculpture_shop.api.get_sculptures", r.URL.Path)

		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Sculptures retrieved successfully",
			"data": map[string]interface{}{
				"sculptures":  []models.Sculpture{{ID: 1, Name: "Nataraja", Slug: "nataraja"}},
				"total_count": 1,
			},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	f := catalog.Filter{
		CategoryID: int64p(2),
		MinPrice:   floatp(1000),
		MaxPrice:   floatp(25000),
		SearchTerm: strp("shiva"),
		Limit:      20,
	}

	list, err := c.GetSculptures(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, "nataraja", list.Sculptures[0].Slug)

	assert.Equal(t, "2", gotQuery["category_id"])
	assert.Equal(t, "1000", gotQuery["min_price"])
	assert.Equal(t, "25000", gotQuery["max_price"])
	assert.Equal(t, "shiva", gotQuery["search_term"])
	assert.Equal(t, "20", gotQuery["limit"])
}

func TestGetSculptureByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Sculpture not found",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	_, err := c.GetSculptureByID(context.Background(), 99)
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Sculpture not found", apiErr.Message)
}

func TestLogin_StoresToken(t *testing.T) {
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/method/sculpture_shop.api.admin_login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "owner", body["username"])

			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"message": "Login successful",
				"data": map[string]interface{}{
					"id":        1,
					"username":  "owner",
					"full_name": "Shop Owner",
					"token":     "jwt-token",
				},
			})
		case "/api/method/sculpture_shop.api.get_dashboard_stats":
			authHeader = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"message": "Dashboard stats retrieved successfully",
				"data":    models.DashboardStats{TotalSculptures: 12},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	resp, err := c.Login(context.Background(), "owner", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "Shop Owner", resp.FullName)

	stats, err := c.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalSculptures)
	assert.Equal(t, "Bearer jwt-token", authHeader)
}

func TestCreateContactRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Asha", body["customer_name"])

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Contact request submitted successfully",
			"data":    map[string]int64{"id": 11},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	id, err := c.CreateContactRequest(context.Background(), dto.ContactRequestInput{
		CustomerName: "Asha",
		MobileNumber: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestCatalogStore(t *testing.T) {
	now := time.Now()

	items := []models.Sculpture{
		{ID: 1, Name: "Nataraja", Price: 15000, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, Name: "Dancing Shiva", Price: 42000, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 3, Name: "Ganesha", Price: 8000, CreatedAt: now},
	}

	store := client.NewCatalogStore()
	require.True(t, store.Stale(time.Minute))

	store.Replace(items)
	assert.Equal(t, 3, store.Len())
	assert.False(t, store.Stale(time.Minute))

	t.Run("refine by price window", func(t *testing.T) {
		got := store.Refine(catalog.Filter{MinPrice: floatp(10000), MaxPrice: floatp(50000)})
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("refine by text", func(t *testing.T) {
		got := store.Refine(catalog.Filter{SearchTerm: strp("shiva")})
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("refine paginates", func(t *testing.T) {
		got := store.Refine(catalog.Filter{Limit: 2, Offset: 1})
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("sorted by price", func(t *testing.T) {
		got := store.Sorted(catalog.SortPriceAsc)
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(2), got[2].ID)
	})

	t.Run("refine does not mutate", func(t *testing.T) {
		store.Refine(catalog.Filter{SearchTerm: strp("shiva")})
		assert.Equal(t, 3, store.Len())
	})
}
