package entity

// TechnicalIndicator は1銘柄の技術指標スナップショットです。
// 同一銘柄のうちidが最大の行を「最新」とみなします。
type TechnicalIndicator struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	TsCode    string  `gorm:"column:ts_code;size:16;not null;index" json:"ts_code"`
	TradeDate string  `gorm:"column:trade_date;type:date" json:"trade_date"`
	MA5       float64 `gorm:"column:ma5" json:"ma5"`
	MA10      float64 `gorm:"column:ma10" json:"ma10"`
	MA20      float64 `gorm:"column:ma20" json:"ma20"`
	RSI       float64 `gorm:"column:rsi" json:"rsi"`
	MACDDif   float64 `gorm:"column:macd_dif" json:"macd_dif"`
	MACDDea   float64 `gorm:"column:macd_dea" json:"macd_dea"`
	MACD      float64 `gorm:"column:macd" json:"macd"`
	BollUpper float64 `gorm:"column:boll_upper" json:"boll_upper"`
	BollMid   float64 `gorm:"column:boll_mid" json:"boll_mid"`
	BollLower float64 `gorm:"column:boll_lower" json:"boll_lower"`
}

// TableName は参照するテーブル名を返します。
func (TechnicalIndicator) TableName() string {
	return "stock_technical_indicators_clean"
}
