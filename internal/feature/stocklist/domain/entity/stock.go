// Package entity defines the domain models for the stocklist feature.
package entity

// Stock represents one listed company in the dataset.
// Records are externally maintained and read-only from this service;
// list queries are always ordered by ascending ID.
type Stock struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TsCode   string `gorm:"column:ts_code;size:16;not null;uniqueIndex" json:"ts_code"`
	Symbol   string `gorm:"size:16;not null" json:"symbol"`
	Name     string `gorm:"size:64;not null" json:"name"`
	Area     string `gorm:"size:32" json:"area"`
	Industry string `gorm:"size:32" json:"industry"`
	ListDate string `gorm:"column:list_date;size:10" json:"list_date"`
}

// TableName は参照するテーブル名を返します。
func (Stock) TableName() string {
	return "stocks"
}
