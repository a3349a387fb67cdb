// Package dummyjson is the HTTP adapter for the upstream read-only catalog
// API. All list endpoints are fetched with an explicit result-size limit and
// decoded from the upstream envelope into domain types.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dummyhub/backend/internal/domain/catalog"
	"github.com/dummyhub/backend/internal/domain/commerce"
	"github.com/dummyhub/backend/internal/domain/content"
	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/shared"
	"github.com/dummyhub/backend/internal/domain/task"
	"github.com/dummyhub/backend/internal/infrastructure/config"
)

// defaultMaxBodyBytes limits the response body size to prevent memory exhaustion
const defaultMaxBodyBytes = 10 * 1024 * 1024 // 10MB max response

// Client is a typed HTTP client for the upstream API
type Client struct {
	baseURL      string
	listLimit    int
	cartLimit    int
	maxBodyBytes int64
	httpClient   *http.Client
}

// NewClient creates a new upstream client from configuration
func NewClient(cfg *config.UpstreamConfig) *Client {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		listLimit:    cfg.ListLimit,
		cartLimit:    cfg.CartLimit,
		maxBodyBytes: maxBody,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Products fetches the product list
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var envelope struct {
		Products []catalog.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/products", c.listLimit, &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

// ProductCategories fetches the category list. Upstream has shipped this
// endpoint as both a string list and an object list; anything that is not a
// plain string is skipped.
func (c *Client) ProductCategories(ctx context.Context) ([]string, error) {
	var raw []any
	if err := c.getJSON(ctx, "/products/categories", 0, &raw); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// Users fetches the user list
func (c *Client) Users(ctx context.Context) ([]identity.User, error) {
	var envelope struct {
		Users []identity.User `json:"users"`
	}
	if err := c.getJSON(ctx, "/users", c.listLimit, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

// Posts fetches the post list
func (c *Client) Posts(ctx context.Context) ([]content.Post, error) {
	var envelope struct {
		Posts []content.Post `json:"posts"`
	}
	if err := c.getJSON(ctx, "/posts", c.listLimit, &envelope); err != nil {
		return nil, err
	}
	return envelope.Posts, nil
}

// Todos fetches the todo list
func (c *Client) Todos(ctx context.Context) ([]task.Todo, error) {
	var envelope struct {
		Todos []task.Todo `json:"todos"`
	}
	if err := c.getJSON(ctx, "/todos", c.listLimit, &envelope); err != nil {
		return nil, err
	}
	return envelope.Todos, nil
}

// Quotes fetches the quote list
func (c *Client) Quotes(ctx context.Context) ([]content.Quote, error) {
	var envelope struct {
		Quotes []content.Quote `json:"quotes"`
	}
	if err := c.getJSON(ctx, "/quotes", c.listLimit, &envelope); err != nil {
		return nil, err
	}
	return envelope.Quotes, nil
}

// RandomQuote fetches a single random quote
func (c *Client) RandomQuote(ctx context.Context) (content.Quote, error) {
	var quote content.Quote
	if err := c.getJSON(ctx, "/quotes/random", 0, &quote); err != nil {
		return content.Quote{}, err
	}
	return quote, nil
}

// Carts fetches the cart list
func (c *Client) Carts(ctx context.Context) ([]commerce.Cart, error) {
	var envelope struct {
		Carts []commerce.Cart `json:"carts"`
	}
	if err := c.getJSON(ctx, "/carts", c.cartLimit, &envelope); err != nil {
		return nil, err
	}
	return envelope.Carts, nil
}

// Ping checks upstream reachability via the lightweight /test endpoint
func (c *Client) Ping(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	return c.getJSON(ctx, "/test", 0, &status)
}

// getJSON performs a GET against the upstream API and decodes the response.
// A limit of 0 means the endpoint takes no limit parameter.
func (c *Client) getJSON(ctx context.Context, path string, limit int, out any) error {
	endpoint := c.baseURL + path
	if limit > 0 {
		endpoint += "?limit=" + url.QueryEscape(strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("dummyjson: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return fmt.Errorf("dummyjson: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: GET %s: HTTP %d", shared.ErrUnavailable, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("dummyjson: failed to decode %s response: %w", path, err)
	}

	return nil
}
