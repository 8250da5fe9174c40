// Package entity defines the domain models for the dailydata feature.
package entity

// DailyBar は1銘柄・1営業日の日足データです。(ts_code, trade_date) で一意です。
// trade_date はISO形式（"2006-01-02"）の文字列で保持します。DATE列は
// MySQLとテスト用SQLiteの双方で文字列比較がそのまま日付順になります。
type DailyBar struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	TsCode    string  `gorm:"column:ts_code;size:16;not null;uniqueIndex:daily_code_date,priority:1" json:"ts_code"`
	TradeDate string  `gorm:"column:trade_date;type:date;not null;uniqueIndex:daily_code_date,priority:2" json:"trade_date"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Vol       float64 `gorm:"column:vol" json:"vol"`
	Amount    float64 `json:"amount"`
}

// TableName は参照するテーブル名を返します。
func (DailyBar) TableName() string {
	return "stock_daily_data"
}
