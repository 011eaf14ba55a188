// Package gateway is the HTTP client for the remote storefront service:
// one catalog fetch, one order submission. The backend is the sole source
// of truth for catalog contents and order confirmation.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/model"
	"github.com/jask/shopfront/internal/shop"
)

// Client talks to the storefront API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type productJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Price       *int   `json:"price"`
	Description string `json:"description"`
}

type catalogResponse struct {
	Total int           `json:"total"`
	Items []productJSON `json:"items"`
}

type orderRequest struct {
	Payment string   `json:"payment"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Items   []string `json:"items"`
	Total   int      `json:"total"`
}

type orderResponse struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
	Error string `json:"error"`
}

// FetchCatalog returns the product list in server order. Transport and
// decode failures degrade to an empty list: the failure is logged, not
// surfaced as a blocking UI error.
func (c *Client) FetchCatalog(ctx context.Context) []model.Product {
	reqID := uuid.NewString()
	var out catalogResponse
	if err := c.getJSON(ctx, "/product/", reqID, &out); err != nil {
		c.log.Warn("catalog fetch failed", zap.String("request_id", reqID), zap.Error(err))
		return []model.Product{}
	}
	products := make([]model.Product, len(out.Items))
	for i, item := range out.Items {
		products[i] = model.Product{
			ID:          item.ID,
			Title:       item.Title,
			Category:    item.Category,
			Image:       item.Image,
			Price:       item.Price,
			Description: item.Description,
		}
	}
	c.log.Info("catalog fetched", zap.String("request_id", reqID), zap.Int("products", len(products)))
	return products
}

// SubmitOrder posts the order and returns the server's authoritative
// total. Any failure is returned to the caller; the coordinator keeps
// the user on the contacts step so they can retry.
func (c *Client) SubmitOrder(ctx context.Context, order shop.Order) (int, error) {
	reqID := uuid.NewString()
	body, err := json.Marshal(orderRequest{
		Payment: string(order.Payment),
		Email:   order.Email,
		Phone:   order.Phone,
		Address: order.Address,
		Items:   order.Items,
		Total:   order.Total,
	})
	if err != nil {
		return 0, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order/", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("order submit failed", zap.String("request_id", reqID), zap.Error(err))
		return 0, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	var out orderResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return 0, fmt.Errorf("submit order: status %d", resp.StatusCode)
		}
		return 0, fmt.Errorf("decode order response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		c.log.Warn("order rejected", zap.String("request_id", reqID), zap.String("reason", msg))
		return 0, fmt.Errorf("submit order: %s", msg)
	}
	c.log.Info("order accepted",
		zap.String("request_id", reqID),
		zap.String("order_id", out.ID),
		zap.Int("total", out.Total))
	return out.Total, nil
}

func (c *Client) getJSON(ctx context.Context, path, reqID string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
