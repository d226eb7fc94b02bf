package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Markets is the resource client for market-data endpoints: markets,
// events, series, orderbooks, and trades.
type Markets struct {
	client *Client
}

func NewMarkets(c *Client) *Markets {
	return &Markets{client: c}
}

// MarketsParams filters GetMarkets. Zero values are omitted from the query.
type MarketsParams struct {
	Limit        int
	Cursor       string
	EventTicker  string
	SeriesTicker string
	Status       MarketStatus
	Tickers      []string
}

func (p *MarketsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	if p.EventTicker != "" {
		q.Set("event_ticker", p.EventTicker)
	}
	if p.SeriesTicker != "" {
		q.Set("series_ticker", p.SeriesTicker)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if len(p.Tickers) > 0 {
		q.Set("tickers", strings.Join(p.Tickers, ","))
	}
	return q
}

// MarketsPage is one page of markets plus the cursor for the next page.
// An empty cursor means the listing is exhausted.
type MarketsPage struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor"`
}

// GetMarkets returns one page of markets matching params.
func (m *Markets) GetMarkets(ctx context.Context, params *MarketsParams) (*MarketsPage, error) {
	var out MarketsPage
	req := Request{Method: http.MethodGet, Path: "markets", Query: params.query()}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}
	return &out, nil
}

// GetAllMarkets walks the cursor until the listing is exhausted and
// returns every market matching params.
func (m *Markets) GetAllMarkets(ctx context.Context, params *MarketsParams) ([]Market, error) {
	var p MarketsParams
	if params != nil {
		p = *params
	}
	var all []Market
	for {
		page, err := m.GetMarkets(ctx, &p)
		if err != nil {
			return all, fmt.Errorf("cursor %q: %w", p.Cursor, err)
		}
		all = append(all, page.Markets...)
		if page.Cursor == "" {
			return all, nil
		}
		p.Cursor = page.Cursor
	}
}

// GetMarket returns a single market by ticker.
func (m *Markets) GetMarket(ctx context.Context, ticker string) (*Market, error) {
	var out struct {
		Market Market `json:"market"`
	}
	req := Request{Method: http.MethodGet, Path: "markets/" + url.PathEscape(ticker)}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get market %s: %w", ticker, err)
	}
	return &out.Market, nil
}

// GetOrderbook returns the current orderbook for ticker. depth limits the
// number of levels per side; 0 means the server default.
func (m *Markets) GetOrderbook(ctx context.Context, ticker string, depth int) (*Orderbook, error) {
	q := url.Values{}
	if depth > 0 {
		q.Set("depth", strconv.Itoa(depth))
	}
	var out struct {
		Orderbook Orderbook `json:"orderbook"`
	}
	req := Request{Method: http.MethodGet, Path: "markets/" + url.PathEscape(ticker) + "/orderbook", Query: q}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get orderbook %s: %w", ticker, err)
	}
	return &out.Orderbook, nil
}

// orderbookFanout caps concurrent orderbook fetches in GetOrderbooks.
const orderbookFanout = 8

// GetOrderbooks fetches orderbooks for several tickers concurrently. The
// first failure cancels the remaining fetches.
func (m *Markets) GetOrderbooks(ctx context.Context, tickers []string, depth int) (map[string]*Orderbook, error) {
	books := make([]*Orderbook, len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(orderbookFanout)
	for i, ticker := range tickers {
		i, ticker := i, ticker
		g.Go(func() error {
			book, err := m.GetOrderbook(ctx, ticker, depth)
			if err != nil {
				return err
			}
			books[i] = book
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Orderbook, len(tickers))
	for i, ticker := range tickers {
		out[ticker] = books[i]
	}
	return out, nil
}

// TradesParams filters GetTrades.
type TradesParams struct {
	Ticker string
	Limit  int
	Cursor string
	MinTS  int64 // unix seconds, inclusive
	MaxTS  int64 // unix seconds, inclusive
}

func (p *TradesParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Ticker != "" {
		q.Set("ticker", p.Ticker)
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

// TradesPage is one page of trades plus the next-page cursor.
type TradesPage struct {
	Trades []Trade `json:"trades"`
	Cursor string  `json:"cursor"`
}

// GetTrades returns one page of public trades matching params.
func (m *Markets) GetTrades(ctx context.Context, params *TradesParams) (*TradesPage, error) {
	var out TradesPage
	req := Request{Method: http.MethodGet, Path: "markets/trades", Query: params.query()}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}
	return &out, nil
}

// EventsParams filters GetEvents.
type EventsParams struct {
	Limit             int
	Cursor            string
	SeriesTicker      string
	Status            MarketStatus
	WithNestedMarkets bool
}

func (p *EventsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	if p.SeriesTicker != "" {
		q.Set("series_ticker", p.SeriesTicker)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.WithNestedMarkets {
		q.Set("with_nested_markets", "true")
	}
	return q
}

// EventsPage is one page of events plus the next-page cursor.
type EventsPage struct {
	Events []Event `json:"events"`
	Cursor string  `json:"cursor"`
}

// GetEvents returns one page of events matching params.
func (m *Markets) GetEvents(ctx context.Context, params *EventsParams) (*EventsPage, error) {
	var out EventsPage
	req := Request{Method: http.MethodGet, Path: "events", Query: params.query()}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	return &out, nil
}

// GetEvent returns a single event by ticker, including its markets.
func (m *Markets) GetEvent(ctx context.Context, eventTicker string) (*Event, error) {
	var out struct {
		Event   Event    `json:"event"`
		Markets []Market `json:"markets"`
	}
	req := Request{Method: http.MethodGet, Path: "events/" + url.PathEscape(eventTicker)}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventTicker, err)
	}
	if len(out.Event.Markets) == 0 {
		out.Event.Markets = out.Markets
	}
	return &out.Event, nil
}

// GetSeries returns a single series by ticker.
func (m *Markets) GetSeries(ctx context.Context, seriesTicker string) (*Series, error) {
	var out struct {
		Series Series `json:"series"`
	}
	req := Request{Method: http.MethodGet, Path: "series/" + url.PathEscape(seriesTicker)}
	if err := m.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get series %s: %w", seriesTicker, err)
	}
	return &out.Series, nil
}
