// Package client is a typed Go client for the sculpture shop HTTP API.
// Every call goes through the same success/message/data envelope the server
// speaks; failures surface as *APIError carrying the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/transport/http/dto"

	"github.com/google/uuid"
)

const methodPrefix = "/api/method/sculpture_shop.api."

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken attaches a bearer token to subsequent requests. Login calls it
// automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-success envelope from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) call(ctx context.Context, httpMethod, apiMethod string, query url.Values, body, out interface{}) error {
	target := c.baseURL + methodPrefix + apiMethod
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}

	return nil
}

// encodeFilter renders a filter the way ParseFilter reads it, so a filter
// round-trips through the query string unchanged.
func encodeFilter(f catalog.Filter) url.Values {
	q := url.Values{}

	if f.CategoryID != nil {
		q.Set("category_id", strconv.FormatInt(*f.CategoryID, 10))
	}
	if f.MaterialID != nil {
		q.Set("material_id", strconv.FormatInt(*f.MaterialID, 10))
	}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.SearchTerm != nil {
		q.Set("search_term", *f.SearchTerm)
	}
	if f.IsFeatured != nil {
		if *f.IsFeatured {
			q.Set("is_featured", "1")
		} else {
			q.Set("is_featured", "0")
		}
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}

	return q
}

func (c *Client) GetSculptures(ctx context.Context, f catalog.Filter) (*dto.SculptureListResponse, error) {
	var out dto.SculptureListResponse
	if err := c.call(ctx, http.MethodGet, "get_sculptures", encodeFilter(f), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSculpturesCount(ctx context.Context, f catalog.Filter) (int64, error) {
	var out struct {
		TotalCount int64 `json:"total_count"`
	}
	if err := c.call(ctx, http.MethodGet, "get_sculptures_count", encodeFilter(f), nil, &out); err != nil {
		return 0, err
	}
	return out.TotalCount, nil
}

func (c *Client) GetSculptureByID(ctx context.Context, id int64) (*dto.SculptureDetailResponse, error) {
	q := url.Values{"id": {strconv.FormatInt(id, 10)}}
	var out dto.SculptureDetailResponse
	if err := c.call(ctx, http.MethodGet, "get_sculpture_by_id", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSculptureBySlug(ctx context.Context, slug string) (*dto.SculptureDetailResponse, error) {
	q := url.Values{"slug": {slug}}
	var out dto.SculptureDetailResponse
	if err := c.call(ctx, http.MethodGet, "get_sculpture_by_slug", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetFeaturedSculptures(ctx context.Context, limit int) ([]models.Sculpture, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []models.Sculpture
	if err := c.call(ctx, http.MethodGet, "get_featured_sculptures", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRelatedSculptures(ctx context.Context, sculptureID int64, limit int) ([]models.Sculpture, error) {
	q := url.Values{"sculpture_id": {strconv.FormatInt(sculptureID, 10)}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []models.Sculpture
	if err := c.call(ctx, http.MethodGet, "get_related_sculptures", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.call(ctx, http.MethodGet, "get_categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategoriesWithCount(ctx context.Context) ([]models.CategoryWithCount, error) {
	var out []models.CategoryWithCount
	if err := c.call(ctx, http.MethodGet, "get_categories_with_count", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMaterials(ctx context.Context) ([]models.Material, error) {
	var out []models.Material
	if err := c.call(ctx, http.MethodGet, "get_materials", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateContactRequest(ctx context.Context, req dto.ContactRequestInput) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.call(ctx, http.MethodPost, "create_contact_request", nil, req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) CreateCustomRequest(ctx context.Context, req dto.CustomRequestInput) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.call(ctx, http.MethodPost, "create_custom_request", nil, req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// GetSiteSettings returns the settings as the key-value map the server
// exposes.
func (c *Client) GetSiteSettings(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	if err := c.call(ctx, http.MethodGet, "get_site_settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPaymentInfo(ctx context.Context) ([]models.PaymentInfo, error) {
	var out []models.PaymentInfo
	if err := c.call(ctx, http.MethodGet, "get_payment_info", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Login authenticates and remembers the returned token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}

	var out dto.LoginResponse
	if err := c.call(ctx, http.MethodPost, "admin_login", nil, body, &out); err != nil {
		return nil, err
	}

	c.token = out.Token

	return &out, nil
}

func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.call(ctx, http.MethodGet, "get_dashboard_stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddSculpture(ctx context.Context, req dto.CreateSculptureRequest) (*models.Sculpture, error) {
	var out models.Sculpture
	if err := c.call(ctx, http.MethodPost, "add_sculpture", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSculpture(ctx context.Context, id int64) error {
	body := map[string]int64{"id": id}
	return c.call(ctx, http.MethodPost, "delete_sculpture", nil, body, nil)
}

func (c *Client) AddSelectedSculpture(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	req := dto.SelectionInput{ClientID: clientID, SculptureID: sculptureID}
	return c.call(ctx, http.MethodPost, "add_selected_sculpture", nil, req, nil)
}

func (c *Client) RemoveSelectedSculpture(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	req := dto.SelectionInput{ClientID: clientID, SculptureID: sculptureID}
	return c.call(ctx, http.MethodPost, "remove_selected_sculpture", nil, req, nil)
}

func (c *Client) ClearSelectedSculptures(ctx context.Context, clientID uuid.UUID) error {
	body := map[string]string{"client_id": clientID.String()}
	return c.call(ctx, http.MethodPost, "clear_selected_sculptures", nil, body, nil)
}

func (c *Client) GetSelectedSculptures(ctx context.Context, clientID uuid.UUID) (*dto.SelectionResponse, error) {
	q := url.Values{"client_id": {clientID.String()}}
	var out dto.SelectionResponse
	if err := c.call(ctx, http.MethodGet, "get_selected_sculptures", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IsSculptureSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error) {
	q := url.Values{
		"client_id":    {clientID.String()},
		"sculpture_id": {strconv.FormatInt(sculptureID, 10)},
	}
	var out struct {
		Selected bool `json:"selected"`
	}
	if err := c.call(ctx, http.MethodGet, "is_sculpture_selected", q, nil, &out); err != nil {
		return false, err
	}
	return out.Selected, nil
}
