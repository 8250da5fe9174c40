// Package entity defines the domain models for the prediction feature.
package entity

// Prediction は1銘柄・1日分のAI予測スコアです。
// predict_date は予測を生成した日、for_date は予測対象日で、
// いずれもISO形式（"2006-01-02"）の文字列で保持します。
type Prediction struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	TsCode          string  `gorm:"column:ts_code;size:16;not null;index" json:"ts_code"`
	PredictDate     string  `gorm:"column:predict_date;type:date;not null" json:"predict_date"`
	ForDate         string  `gorm:"column:for_date;type:date;not null" json:"for_date"`
	PredictionScore float64 `gorm:"column:prediction_score" json:"prediction_score"`
}

// TableName は参照するテーブル名を返します。
func (Prediction) TableName() string {
	return "ai_predictions"
}

// TopPredictionTable は日次バッチが選抜銘柄を書き出す別テーブルです。
// 全件をid昇順で読むだけなので、エンティティはPredictionを共用します。
const TopPredictionTable = "ai_predictions_top3"
