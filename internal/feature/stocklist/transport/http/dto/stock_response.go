// Package dto defines data transfer objects for the stocklist HTTP API.
package dto

// StockItem represents a stock record in the API response.
// Field order mirrors the column order of the stocks table.
type StockItem struct {
	ID       uint   `json:"id"`
	TsCode   string `json:"ts_code"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Area     string `json:"area"`
	Industry string `json:"industry"`
	ListDate string `json:"list_date"`
}
