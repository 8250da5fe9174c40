// Package dto defines data transfer objects for the prediction HTTP API.
package dto

// PredictionItem represents one prediction score in the API response.
type PredictionItem struct {
	ID              uint    `json:"id"`
	TsCode          string  `json:"ts_code"`
	PredictDate     string  `json:"predict_date"`
	ForDate         string  `json:"for_date"`
	PredictionScore float64 `json:"prediction_score"`
}
