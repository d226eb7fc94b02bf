package client

import "fmt"

// Wire tokens for the exchange's enumerations. These are fixed lowercase
// strings; the string-typed constants below serialize to exactly these
// tokens and must not change.

// MarketStatus is the lifecycle state of a market.
type MarketStatus string

const (
	MarketStatusInitialized MarketStatus = "initialized"
	MarketStatusActive      MarketStatus = "active"
	MarketStatusClosed      MarketStatus = "closed"
	MarketStatusFinalized   MarketStatus = "finalized"
)

// ParseMarketStatus validates s against the known tokens.
func ParseMarketStatus(s string) (MarketStatus, error) {
	switch v := MarketStatus(s); v {
	case MarketStatusInitialized, MarketStatusActive, MarketStatusClosed, MarketStatusFinalized:
		return v, nil
	}
	return "", fmt.Errorf("unknown market status %q", s)
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusResting  OrderStatus = "resting"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusExecuted OrderStatus = "executed"
	OrderStatusPending  OrderStatus = "pending"
)

// ParseOrderStatus validates s against the known tokens.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch v := OrderStatus(s); v {
	case OrderStatusResting, OrderStatusCanceled, OrderStatusExecuted, OrderStatusPending:
		return v, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// TimeInForce controls how long an order stays live.
type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "gtc" // good-til-cancelled
	TimeInForceIOC TimeInForce = "ioc" // immediate-or-cancel
	TimeInForceFOK TimeInForce = "fok" // fill-or-kill
)

// ParseTimeInForce validates s against the known tokens.
func ParseTimeInForce(s string) (TimeInForce, error) {
	switch v := TimeInForce(s); v {
	case TimeInForceGTC, TimeInForceIOC, TimeInForceFOK:
		return v, nil
	}
	return "", fmt.Errorf("unknown time in force %q", s)
}

// Action is the direction of an order.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// Side is the contract side an order trades.
type Side string

const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

// OrderType distinguishes limit from market orders.
type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)
