package client

import (
	"context"
	"fmt"
	"net/http"
)

// Exchange is the resource client for exchange-wide endpoints.
type Exchange struct {
	client *Client
}

func NewExchange(c *Client) *Exchange {
	return &Exchange{client: c}
}

// GetStatus reports whether the exchange and trading are currently active.
func (e *Exchange) GetStatus(ctx context.Context) (*ExchangeStatus, error) {
	var out ExchangeStatus
	req := Request{Method: http.MethodGet, Path: "exchange/status"}
	if err := e.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get exchange status: %w", err)
	}
	return &out, nil
}

// GetSchedule returns standard trading hours and maintenance windows.
func (e *Exchange) GetSchedule(ctx context.Context) (*ExchangeSchedule, error) {
	var out struct {
		Schedule ExchangeSchedule `json:"schedule"`
	}
	req := Request{Method: http.MethodGet, Path: "exchange/schedule"}
	if err := e.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get exchange schedule: %w", err)
	}
	return &out.Schedule, nil
}

// GetAnnouncements returns current exchange-wide announcements.
func (e *Exchange) GetAnnouncements(ctx context.Context) ([]Announcement, error) {
	var out struct {
		Announcements []Announcement `json:"announcements"`
	}
	req := Request{Method: http.MethodGet, Path: "exchange/announcements"}
	if err := e.client.send(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("get exchange announcements: %w", err)
	}
	return out.Announcements, nil
}
