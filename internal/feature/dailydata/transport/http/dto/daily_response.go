// Package dto defines data transfer objects for the dailydata HTTP API.
package dto

// DailyBarItem represents one trading day of OHLCV data in the API response.
type DailyBarItem struct {
	TsCode    string  `json:"ts_code"`
	TradeDate string  `json:"trade_date"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Vol       float64 `json:"vol"`
	Amount    float64 `json:"amount"`
}

// IndicatorItem represents the latest technical indicator snapshot for a ticker.
type IndicatorItem struct {
	TsCode    string  `json:"ts_code"`
	TradeDate string  `json:"trade_date"`
	MA5       float64 `json:"ma5"`
	MA10      float64 `json:"ma10"`
	MA20      float64 `json:"ma20"`
	RSI       float64 `json:"rsi"`
	MACDDif   float64 `json:"macd_dif"`
	MACDDea   float64 `json:"macd_dea"`
	MACD      float64 `json:"macd"`
	BollUpper float64 `json:"boll_upper"`
	BollMid   float64 `json:"boll_mid"`
	BollLower float64 `json:"boll_lower"`
}
