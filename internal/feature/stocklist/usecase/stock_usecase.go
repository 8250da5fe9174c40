package usecase

import (
	"context"
	"fmt"

	"stock_query_backend/internal/feature/stocklist/domain/entity"
)

// PageSize は一覧クエリ1ページあたりの固定件数です。
const PageSize = 20

// StockRepository は株式マスタの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type StockRepository interface {
	// Count は全レコード数を返します。
	Count(ctx context.Context) (int64, error)
	// CountByArea は指定地域のレコード数を返します。
	CountByArea(ctx context.Context, area string) (int64, error)
	// CountByIndustry は指定業種のレコード数を返します。
	CountByIndustry(ctx context.Context, industry string) (int64, error)
	// ListPage はid昇順でlimit/offsetに従った1ページ分を返します。
	ListPage(ctx context.Context, limit, offset int) ([]entity.Stock, error)
	// ListPageByArea は指定地域のid昇順1ページ分を返します。
	ListPageByArea(ctx context.Context, area string, limit, offset int) ([]entity.Stock, error)
	// ListPageByIndustry は指定業種のid昇順1ページ分を返します。
	ListPageByIndustry(ctx context.Context, industry string, limit, offset int) ([]entity.Stock, error)
	// FindBySymbol は銘柄コードに一致する最初の1件を返します。該当なしは (nil, nil)。
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)
	// FindByName は銘柄名に一致する最初の1件を返します。該当なしは (nil, nil)。
	FindByName(ctx context.Context, name string) (*entity.Stock, error)
}

// TotalPages はレコード数から総ページ数を導出します。
// count が 0 以下なら 0、それ以外は ceil(count / PageSize) です。
func TotalPages(count int64) int {
	if count <= 0 {
		return 0
	}
	return int((count + PageSize - 1) / PageSize)
}

// StockUsecase は株式一覧のページングと単体検索のユースケースを提供します。
// 総件数は呼び出しごとに取り直します。データセットは成長し続けるため、
// キャッシュせず直近の件数でページ境界を判定します。
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase は指定されたリポジトリでStockUsecaseの新しいインスタンスを生成します。
func NewStockUsecase(r StockRepository) *StockUsecase {
	return &StockUsecase{repo: r}
}

// GetStocksByPage は全銘柄のnページ目を返します（1ページ20件、id昇順）。
//
// n が 1 未満なら ErrInvalidPage、総ページ数を超えていれば PageOutOfRangeError を
// 返します。レコードが1件もない場合はどのページでも空スライスを返します（エラーではない）。
// limit は常に PageSize のままにし、件数確認とフェッチの間にデータが減った場合は
// 短いページをそのまま返します。
func (u *StockUsecase) GetStocksByPage(ctx context.Context, n int) ([]entity.Stock, error) {
	if n < 1 {
		return nil, ErrInvalidPage
	}

	count, err := u.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stocks: %w", err)
	}

	total := TotalPages(count)
	if total == 0 {
		return []entity.Stock{}, nil
	}
	if n > total {
		return nil, &PageOutOfRangeError{Page: n, TotalPages: total}
	}

	offset := PageSize * (n - 1)
	stocks, err := u.repo.ListPage(ctx, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks page %d: %w", n, err)
	}
	return stocks, nil
}

// GetStocksByPageAndArea は指定地域の銘柄のnページ目を返します。
//
// 地域に一致するレコードがない場合は空スライスを返します。最終ページの limit は
// 残り件数ちょうど（count - offset）を指定し、境界をまたいで余分な行を拾う余地を
// なくします。全件一覧と異なる limit の組み立てですが、これは意図的な非対称です。
func (u *StockUsecase) GetStocksByPageAndArea(ctx context.Context, n int, area string) ([]entity.Stock, error) {
	if n < 1 {
		return nil, ErrInvalidPage
	}
	if area == "" {
		return nil, ErrEmptyArea
	}

	count, err := u.repo.CountByArea(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("count stocks in area %q: %w", area, err)
	}

	total := TotalPages(count)
	if total == 0 {
		return []entity.Stock{}, nil
	}
	if n > total {
		return nil, &PageOutOfRangeError{Page: n, TotalPages: total}
	}

	offset := PageSize * (n - 1)
	limit := PageSize
	if n == total {
		limit = int(count) - offset
	}

	stocks, err := u.repo.ListPageByArea(ctx, area, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks in area %q page %d: %w", area, n, err)
	}
	return stocks, nil
}

// GetStocksByPageAndIndustry は指定業種の銘柄のnページ目を返します。
// ページ境界の扱いは GetStocksByPageAndArea と同じです。
func (u *StockUsecase) GetStocksByPageAndIndustry(ctx context.Context, n int, industry string) ([]entity.Stock, error) {
	if n < 1 {
		return nil, ErrInvalidPage
	}
	if industry == "" {
		return nil, ErrEmptyIndustry
	}

	count, err := u.repo.CountByIndustry(ctx, industry)
	if err != nil {
		return nil, fmt.Errorf("count stocks in industry %q: %w", industry, err)
	}

	total := TotalPages(count)
	if total == 0 {
		return []entity.Stock{}, nil
	}
	if n > total {
		return nil, &PageOutOfRangeError{Page: n, TotalPages: total}
	}

	offset := PageSize * (n - 1)
	limit := PageSize
	if n == total {
		limit = int(count) - offset
	}

	stocks, err := u.repo.ListPageByIndustry(ctx, industry, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks in industry %q page %d: %w", industry, n, err)
	}
	return stocks, nil
}

// GetStockBySymbol は銘柄コードで1件検索します。該当なしは (nil, nil) です。
func (u *StockUsecase) GetStockBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	stock, err := u.repo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("find stock by symbol %q: %w", symbol, err)
	}
	return stock, nil
}

// GetStockByName は銘柄名で1件検索します。該当なしは (nil, nil) です。
func (u *StockUsecase) GetStockByName(ctx context.Context, name string) (*entity.Stock, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	stock, err := u.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find stock by name %q: %w", name, err)
	}
	return stock, nil
}
