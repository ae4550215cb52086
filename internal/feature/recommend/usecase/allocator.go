package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"investment_backend/internal/feature/recommend/domain"
	"investment_backend/internal/feature/recommend/domain/entity"
)

// 選択数の上限。金額が selectionThreshold を超える場合（ちょうどは含まない）に
// 資産クラスごとに maxSelectionsLarge まで、それ以外は maxSelectionsSmall まで選びます。
const (
	selectionThreshold = 100000
	maxSelectionsSmall = 2
	maxSelectionsLarge = 3
)

// maxSelections は金額に応じた資産クラスごとの選択数上限を返します。
func maxSelections(amount float64) int {
	if amount > selectionThreshold {
		return maxSelectionsLarge
	}
	return maxSelectionsSmall
}

// allocate はスナップショットとリクエストから推奨アロケーションを計算する純粋関数です。
//
// 手順:
//  1. 両リストが空なら domain.ErrNoMarketData
//  2. リスクレベルの価格帯で株式・暗号資産を独立にフィルタ（元の順序を保持）
//  3. 資産クラスごとに maxSelections 件へ切り詰め
//  4. 選択ゼロなら空の成功結果
//  5. 金額を選択資産数で均等割りし、小数第2位へ丸める
func allocate(snap entity.Snapshot, amount float64, risk entity.RiskLevel, now time.Time) (entity.Recommendation, error) {
	if snap.Empty() {
		return entity.Recommendation{}, domain.ErrNoMarketData
	}

	limit := maxSelections(amount)

	selectedStocks := make([]entity.Stock, 0, limit)
	for _, s := range snap.Stocks {
		if len(selectedStocks) == limit {
			break
		}
		if risk.StockInBand(s.Price) {
			selectedStocks = append(selectedStocks, s)
		}
	}

	selectedCryptos := make([]entity.Crypto, 0, limit)
	for _, c := range snap.Cryptos {
		if len(selectedCryptos) == limit {
			break
		}
		if risk.CryptoInBand(c.Price) {
			selectedCryptos = append(selectedCryptos, c)
		}
	}

	rec := entity.Recommendation{
		Stocks:      []entity.AllocatedStock{},
		Cryptos:     []entity.AllocatedCrypto{},
		TotalAmount: amount,
		RiskLevel:   risk,
		TotalAssets: len(selectedStocks) + len(selectedCryptos),
		Timestamp:   now,
	}
	if rec.TotalAssets == 0 {
		// 条件に合う資産なし。エラーではなく空の成功結果として返す。
		return rec, nil
	}

	// 均等割り。金額の演算はdecimalで行い、2桁丸めの結果だけをfloatに戻す。
	perAsset, _ := decimal.NewFromFloat(amount).
		DivRound(decimal.NewFromInt(int64(rec.TotalAssets)), 2).
		Float64()

	for _, s := range selectedStocks {
		rec.Stocks = append(rec.Stocks, entity.AllocatedStock{Stock: s, AmountInvested: perAsset})
	}
	for _, c := range selectedCryptos {
		rec.Cryptos = append(rec.Cryptos, entity.AllocatedCrypto{Crypto: c, AmountInvested: perAsset})
	}
	return rec, nil
}
