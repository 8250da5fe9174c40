// Package usecase は株式一覧のページング・検索のビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPage is returned when the requested page number is less than 1.
	ErrInvalidPage = errors.New("page number must be 1 or greater")

	// ErrEmptyArea is returned when the area filter value is empty.
	ErrEmptyArea = errors.New("area must not be empty")

	// ErrEmptyIndustry is returned when the industry filter value is empty.
	ErrEmptyIndustry = errors.New("industry must not be empty")

	// ErrEmptySymbol is returned when the symbol parameter is empty.
	ErrEmptySymbol = errors.New("symbol must not be empty")

	// ErrEmptyName is returned when the name parameter is empty.
	ErrEmptyName = errors.New("name must not be empty")
)

// PageOutOfRangeError は要求されたページ番号が現在の総ページ数を超えたことを表します。
// 呼び出し側が最終ページへ補正できるよう、要求値と実際の総ページ数の両方を保持します。
type PageOutOfRangeError struct {
	Page       int
	TotalPages int
}

// Error はエラーメッセージを返します。
func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("page %d exceeds total pages %d", e.Page, e.TotalPages)
}
