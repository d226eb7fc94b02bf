package client

// DTOs for the trade API. Prices are integer cents (1-99 for contract
// prices), monetary amounts are integer cents, timestamps are RFC 3339
// strings as the API sends them.

// ExchangeStatus reports whether the exchange and trading are live.
type ExchangeStatus struct {
	ExchangeActive bool `json:"exchange_active"`
	TradingActive  bool `json:"trading_active"`
}

// ExchangeSchedule describes standard trading hours and any scheduled
// maintenance windows.
type ExchangeSchedule struct {
	StandardHours      []DailyHours        `json:"standard_hours"`
	MaintenanceWindows []MaintenanceWindow `json:"maintenance_windows"`
}

// DailyHours is one open/close span of the standard schedule.
type DailyHours struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// MaintenanceWindow is a planned downtime span.
type MaintenanceWindow struct {
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}

// Announcement is an exchange-wide notice.
type Announcement struct {
	Type         string `json:"type"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	DeliveryTime string `json:"delivery_time"`
}

// Market is a single binary market.
type Market struct {
	Ticker         string       `json:"ticker"`
	EventTicker    string       `json:"event_ticker"`
	Title          string       `json:"title"`
	Subtitle       string       `json:"subtitle"`
	Status         MarketStatus `json:"status"`
	YesBid         int64        `json:"yes_bid"`
	YesAsk         int64        `json:"yes_ask"`
	NoBid          int64        `json:"no_bid"`
	NoAsk          int64        `json:"no_ask"`
	LastPrice      int64        `json:"last_price"`
	Volume         int64        `json:"volume"`
	Volume24H      int64        `json:"volume_24h"`
	OpenInterest   int64        `json:"open_interest"`
	Liquidity      int64        `json:"liquidity"`
	Category       string       `json:"category"`
	RiskLimitCents int64        `json:"risk_limit_cents"`
	Result         string       `json:"result"` // "yes", "no", "" while unsettled
	CanCloseEarly  bool         `json:"can_close_early"`
	OpenTime       string       `json:"open_time"`
	CloseTime      string       `json:"close_time"`
	ExpirationTime string       `json:"expiration_time"`
}

// Event groups markets that resolve together.
type Event struct {
	EventTicker       string   `json:"event_ticker"`
	SeriesTicker      string   `json:"series_ticker"`
	Title             string   `json:"title"`
	SubTitle          string   `json:"sub_title"`
	Category          string   `json:"category"`
	MutuallyExclusive bool     `json:"mutually_exclusive"`
	StrikeDate        string   `json:"strike_date"`
	Markets           []Market `json:"markets,omitempty"`
}

// Series is a recurring family of events.
type Series struct {
	Ticker    string   `json:"ticker"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Frequency string   `json:"frequency"`
	Tags      []string `json:"tags"`
}

// Orderbook holds resting liquidity for one market, split by side.
type Orderbook struct {
	Yes []PriceLevel `json:"yes"`
	No  []PriceLevel `json:"no"`
}

// PriceLevel is a single price+quantity entry in the orderbook.
type PriceLevel struct {
	Price    int64 `json:"price"`    // cents, 1-99
	Quantity int64 `json:"quantity"` // contracts
}

// Trade is one executed trade on a market.
type Trade struct {
	TradeID     string `json:"trade_id"`
	Ticker      string `json:"ticker"`
	YesPrice    int64  `json:"yes_price"`
	NoPrice     int64  `json:"no_price"`
	Count       int64  `json:"count"`
	TakerSide   Side   `json:"taker_side"`
	CreatedTime string `json:"created_time"`
}

// Balance is the member's available balance in cents.
type Balance struct {
	Balance int64 `json:"balance"`
}

// Order is an order as the exchange reports it.
type Order struct {
	OrderID        string      `json:"order_id"`
	ClientOrderID  string      `json:"client_order_id"`
	UserID         string      `json:"user_id"`
	Ticker         string      `json:"ticker"`
	Status         OrderStatus `json:"status"`
	Action         Action      `json:"action"`
	Side           Side        `json:"side"`
	Type           OrderType   `json:"type"`
	TimeInForce    TimeInForce `json:"time_in_force,omitempty"`
	YesPrice       int64       `json:"yes_price"`
	NoPrice        int64       `json:"no_price"`
	RemainingCount int64       `json:"remaining_count"`
	TakerFillCount int64       `json:"taker_fill_count"`
	TakerFillCost  int64       `json:"taker_fill_cost"`
	MakerFillCount int64       `json:"maker_fill_count"`
	QueuePosition  int64       `json:"queue_position"`
	ExpirationTime string      `json:"expiration_time"`
	PlacedTime     string      `json:"placed_time"`
	LastUpdateTime string      `json:"last_update_time"`
}

// CreateOrderRequest is the payload for placing an order. ClientOrderID is
// filled in with a fresh UUID when left empty.
type CreateOrderRequest struct {
	Ticker            string      `json:"ticker"`
	ClientOrderID     string      `json:"client_order_id"`
	Action            Action      `json:"action"`
	Side              Side        `json:"side"`
	Type              OrderType   `json:"type"`
	Count             int64       `json:"count"`
	TimeInForce       TimeInForce `json:"time_in_force,omitempty"`
	YesPrice          *int64      `json:"yes_price,omitempty"` // required for limit orders, cents 1-99
	NoPrice           *int64      `json:"no_price,omitempty"`
	ExpirationTS      *int64      `json:"expiration_ts,omitempty"` // unix seconds, for GTD-style orders
	BuyMaxCost        *int64      `json:"buy_max_cost,omitempty"`
	SellPositionFloor *int64      `json:"sell_position_floor,omitempty"`
}

// Fill is one execution against the member's orders.
type Fill struct {
	TradeID     string `json:"trade_id"`
	OrderID     string `json:"order_id"`
	Ticker      string `json:"ticker"`
	Side        Side   `json:"side"`
	Action      Action `json:"action"`
	Count       int64  `json:"count"`
	YesPrice    int64  `json:"yes_price"`
	NoPrice     int64  `json:"no_price"`
	IsTaker     bool   `json:"is_taker"`
	CreatedTime string `json:"created_time"`
}

// Position is the member's net exposure on one market.
type Position struct {
	Ticker             string `json:"ticker"`
	Position           int64  `json:"position"` // signed contract count, + yes / - no
	MarketExposure     int64  `json:"market_exposure"`
	RealizedPnl        int64  `json:"realized_pnl"`
	TotalTradedCents   int64  `json:"total_traded"`
	RestingOrdersCount int64  `json:"resting_orders_count"`
	FeesPaid           int64  `json:"fees_paid"`
}
