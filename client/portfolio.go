package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Portfolio is the resource client for authenticated member endpoints:
// balance, orders, fills, and positions. Every call requires the Client to
// be configured with WithAPIKey.
type Portfolio struct {
	client *Client
}

func NewPortfolio(c *Client) *Portfolio {
	return &Portfolio{client: c}
}

// GetBalance returns the member's available balance.
func (p *Portfolio) GetBalance(ctx context.Context) (*Balance, error) {
	var out Balance
	req := Request{Method: http.MethodGet, Path: "portfolio/balance"}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &out, nil
}

// CreateOrder places an order. When order.ClientOrderID is empty a fresh
// UUID is generated so the exchange can deduplicate resubmissions. The
// caller's struct is not mutated.
func (p *Portfolio) CreateOrder(ctx context.Context, order CreateOrderRequest) (*Order, error) {
	if order.Ticker == "" {
		return nil, fmt.Errorf("create order: ticker is required")
	}
	if order.Count <= 0 {
		return nil, fmt.Errorf("create order: count must be positive, got %d", order.Count)
	}
	if order.ClientOrderID == "" {
		order.ClientOrderID = uuid.NewString()
	}

	var out struct {
		Order Order `json:"order"`
	}
	req := Request{Method: http.MethodPost, Path: "portfolio/orders", Body: order}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &out.Order, nil
}

// OrdersParams filters GetOrders.
type OrdersParams struct {
	Ticker      string
	EventTicker string
	Status      OrderStatus
	Limit       int
	Cursor      string
}

func (p *OrdersParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Ticker != "" {
		q.Set("ticker", p.Ticker)
	}
	if p.EventTicker != "" {
		q.Set("event_ticker", p.EventTicker)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	return q
}

// OrdersPage is one page of the member's orders plus the next-page cursor.
type OrdersPage struct {
	Orders []Order `json:"orders"`
	Cursor string  `json:"cursor"`
}

// GetOrders returns one page of the member's orders matching params.
func (p *Portfolio) GetOrders(ctx context.Context, params *OrdersParams) (*OrdersPage, error) {
	var out OrdersPage
	req := Request{Method: http.MethodGet, Path: "portfolio/orders", Query: params.query()}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return &out, nil
}

// GetOrder returns a single order by id.
func (p *Portfolio) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	var out struct {
		Order Order `json:"order"`
	}
	req := Request{Method: http.MethodGet, Path: "portfolio/orders/" + url.PathEscape(orderID)}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return &out.Order, nil
}

// CancelOrder cancels a resting order and returns its final state.
func (p *Portfolio) CancelOrder(ctx context.Context, orderID string) (*Order, error) {
	var out struct {
		Order Order `json:"order"`
	}
	req := Request{Method: http.MethodDelete, Path: "portfolio/orders/" + url.PathEscape(orderID)}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return &out.Order, nil
}

// FillsParams filters GetFills.
type FillsParams struct {
	Ticker  string
	OrderID string
	Limit   int
	Cursor  string
	MinTS   int64
	MaxTS   int64
}

func (p *FillsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Ticker != "" {
		q.Set("ticker", p.Ticker)
	}
	if p.OrderID != "" {
		q.Set("order_id", p.OrderID)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	if p.MinTS > 0 {
		q.Set("min_ts", strconv.FormatInt(p.MinTS, 10))
	}
	if p.MaxTS > 0 {
		q.Set("max_ts", strconv.FormatInt(p.MaxTS, 10))
	}
	return q
}

// FillsPage is one page of the member's fills plus the next-page cursor.
type FillsPage struct {
	Fills  []Fill `json:"fills"`
	Cursor string `json:"cursor"`
}

// GetFills returns one page of the member's fills matching params.
func (p *Portfolio) GetFills(ctx context.Context, params *FillsParams) (*FillsPage, error) {
	var out FillsPage
	req := Request{Method: http.MethodGet, Path: "portfolio/fills", Query: params.query()}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get fills: %w", err)
	}
	return &out, nil
}

// PositionsParams filters GetPositions.
type PositionsParams struct {
	Ticker      string
	EventTicker string
	Limit       int
	Cursor      string
}

func (p *PositionsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Ticker != "" {
		q.Set("ticker", p.Ticker)
	}
	if p.EventTicker != "" {
		q.Set("event_ticker", p.EventTicker)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	return q
}

// PositionsPage is one page of the member's market positions plus the
// next-page cursor.
type PositionsPage struct {
	MarketPositions []Position `json:"market_positions"`
	Cursor          string     `json:"cursor"`
}

// GetPositions returns one page of the member's positions matching params.
func (p *Portfolio) GetPositions(ctx context.Context, params *PositionsParams) (*PositionsPage, error) {
	var out PositionsPage
	req := Request{Method: http.MethodGet, Path: "portfolio/positions", Query: params.query()}
	if err := p.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}
	return &out, nil
}
