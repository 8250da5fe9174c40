package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_query_backend/internal/feature/stocklist/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Stock{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedStock はテスト用の銘柄1件をデータベースに登録します。
func seedStock(t *testing.T, db *gorm.DB, tsCode, symbol, name, area, industry string) *entity.Stock {
	t.Helper()

	stock := &entity.Stock{
		TsCode:   tsCode,
		Symbol:   symbol,
		Name:     name,
		Area:     area,
		Industry: industry,
		ListDate: "1991-04-03",
	}
	err := db.Create(stock).Error
	require.NoError(t, err, "failed to seed stock")

	return stock
}

// seedStocks は連番のダミー銘柄をn件登録します。areaとindustryは全件同じ値です。
func seedStocks(t *testing.T, db *gorm.DB, n int, area, industry string) {
	t.Helper()
	for i := 1; i <= n; i++ {
		seedStock(t, db,
			fmt.Sprintf("%06d.SZ", i),
			fmt.Sprintf("%06d", i),
			fmt.Sprintf("股票%d", i),
			area, industry)
	}
}

// TestNewStockRepository はコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewStockRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

// TestStockMySQL_Count は全件・地域別・業種別のカウントを検証します。
func TestStockMySQL_Count(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	seedStock(t, db, "000001.SZ", "000001", "平安银行", "深圳", "银行")
	seedStock(t, db, "000002.SZ", "000002", "万科A", "深圳", "全国地产")
	seedStock(t, db, "600000.SH", "600000", "浦发银行", "上海", "银行")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountByArea(ctx, "深圳")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByArea(ctx, "北京")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "unknown area counts zero, not error")

	count, err = repo.CountByIndustry(ctx, "银行")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// TestStockMySQL_ListPage はid昇順とLIMIT/OFFSETの境界を検証します。
func TestStockMySQL_ListPage(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	seedStocks(t, db, 45, "深圳", "银行")

	tests := []struct {
		name        string
		limit       int
		offset      int
		expectedLen int
		firstID     uint
	}{
		{name: "first page", limit: 20, offset: 0, expectedLen: 20, firstID: 1},
		{name: "second page", limit: 20, offset: 20, expectedLen: 20, firstID: 21},
		{name: "partial last page self-truncates", limit: 20, offset: 40, expectedLen: 5, firstID: 41},
		{name: "offset past the end returns empty", limit: 20, offset: 60, expectedLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stocks, err := repo.ListPage(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, stocks, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, tt.firstID, stocks[0].ID)
				// id昇順を確認
				for i := 1; i < len(stocks); i++ {
					assert.Greater(t, stocks[i].ID, stocks[i-1].ID)
				}
			}
		})
	}
}

// TestStockMySQL_ListPageByArea は地域フィルタが他地域の行を拾わないことを検証します。
func TestStockMySQL_ListPageByArea(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	// 深圳25件と上海5件を交互に混ぜず、idが連続しないよう先に上海を挟む
	seedStock(t, db, "600000.SH", "600000", "浦发银行", "上海", "银行")
	for i := 1; i <= 25; i++ {
		seedStock(t, db,
			fmt.Sprintf("%06d.SZ", i),
			fmt.Sprintf("%06d", i),
			fmt.Sprintf("深圳股票%d", i),
			"深圳", "电子")
	}
	seedStock(t, db, "600001.SH", "600001", "邯郸钢铁", "上海", "钢铁")

	// 最終ページは残り5件ちょうど
	stocks, err := repo.ListPageByArea(ctx, "深圳", 5, 20)
	require.NoError(t, err)
	require.Len(t, stocks, 5)
	for _, s := range stocks {
		assert.Equal(t, "深圳", s.Area)
	}

	// 一致ゼロの地域は空スライス
	stocks, err = repo.ListPageByArea(ctx, "北京", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

// TestStockMySQL_ListPageByIndustry は業種フィルタ付きページングを検証します。
func TestStockMySQL_ListPageByIndustry(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	seedStock(t, db, "000001.SZ", "000001", "平安银行", "深圳", "银行")
	seedStock(t, db, "000002.SZ", "000002", "万科A", "深圳", "全国地产")
	seedStock(t, db, "600000.SH", "600000", "浦发银行", "上海", "银行")

	stocks, err := repo.ListPageByIndustry(ctx, "银行", 20, 0)
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	assert.Equal(t, "000001.SZ", stocks[0].TsCode)
	assert.Equal(t, "600000.SH", stocks[1].TsCode)
}

// TestStockMySQL_FindBySymbol は銘柄コード検索と不在時の (nil, nil) を検証します。
func TestStockMySQL_FindBySymbol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	seedStock(t, db, "000001.SZ", "000001", "平安银行", "深圳", "银行")

	stock, err := repo.FindBySymbol(ctx, "000001")
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, "平安银行", stock.Name)

	stock, err = repo.FindBySymbol(ctx, "DOESNOTEXIST")
	require.NoError(t, err, "missing record is not an error")
	assert.Nil(t, stock)
}

// TestStockMySQL_FindByName は銘柄名検索を検証します。
func TestStockMySQL_FindByName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	seedStock(t, db, "000001.SZ", "000001", "平安银行", "深圳", "银行")

	stock, err := repo.FindByName(ctx, "平安银行")
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, "000001.SZ", stock.TsCode)

	stock, err = repo.FindByName(ctx, "不存在银行")
	require.NoError(t, err)
	assert.Nil(t, stock)
}

// TestStockMySQL_Idempotent は同一データセットに対する同一クエリが
// 同じ結果を返すことを検証します。
func TestStockMySQL_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	seedStocks(t, db, 30, "深圳", "银行")

	first, err := repo.ListPage(ctx, 20, 0)
	require.NoError(t, err)
	second, err := repo.ListPage(ctx, 20, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
