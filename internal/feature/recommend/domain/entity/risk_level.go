package entity

// RiskLevel はリクエストで指定されるリスク許容度です。
// 値によって各資産クラスの価格帯フィルタが切り替わります。
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Valid は既知のリスクレベルかどうかを返します。
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Price band boundaries per asset class. Stock bands are in each security's
// market-native currency while crypto bands are in the reference currency
// (INR); the two scales are intentionally NOT comparable across classes.
const (
	StockBandLowMax     = 2000.0
	StockBandMediumMax  = 20000.0
	CryptoBandLowMax    = 5000.0
	CryptoBandMediumMax = 100000.0
)

// StockInBand は株式がこのリスクレベルの価格帯に入っているかを判定します。
func (r RiskLevel) StockInBand(price float64) bool {
	switch r {
	case RiskLow:
		return price < StockBandLowMax
	case RiskMedium:
		return price >= StockBandLowMax && price < StockBandMediumMax
	case RiskHigh:
		return price >= StockBandMediumMax
	}
	return false
}

// CryptoInBand は暗号資産がこのリスクレベルの価格帯に入っているかを判定します。
func (r RiskLevel) CryptoInBand(price float64) bool {
	switch r {
	case RiskLow:
		return price < CryptoBandLowMax
	case RiskMedium:
		return price >= CryptoBandLowMax && price < CryptoBandMediumMax
	case RiskHigh:
		return price >= CryptoBandMediumMax
	}
	return false
}
