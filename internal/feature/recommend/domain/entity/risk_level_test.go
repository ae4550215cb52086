package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"investment_backend/internal/feature/recommend/domain/entity"
)

// TestRiskLevel_Valid は既知・未知のリスクレベル判定を検証します。
func TestRiskLevel_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, entity.RiskLow.Valid())
	assert.True(t, entity.RiskMedium.Valid())
	assert.True(t, entity.RiskHigh.Valid())
	assert.False(t, entity.RiskLevel("Extreme").Valid())
	assert.False(t, entity.RiskLevel("").Valid())
	assert.False(t, entity.RiskLevel("low").Valid(), "risk levels are case sensitive")
}

// TestRiskLevel_StockInBand は株式の価格帯が半開区間で互いに排他であることを検証します。
func TestRiskLevel_StockInBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  entity.RiskLevel
	}{
		{price: 0, want: entity.RiskLow},
		{price: 1999.99, want: entity.RiskLow},
		{price: 2000, want: entity.RiskMedium}, // 下限は帯域に含まれる
		{price: 19999.99, want: entity.RiskMedium},
		{price: 20000, want: entity.RiskHigh},
		{price: 1000000, want: entity.RiskHigh},
	}

	levels := []entity.RiskLevel{entity.RiskLow, entity.RiskMedium, entity.RiskHigh}
	for _, tt := range tests {
		for _, level := range levels {
			got := level.StockInBand(tt.price)
			assert.Equal(t, level == tt.want, got, "price %v in %s band", tt.price, level)
		}
	}
}

// TestRiskLevel_CryptoInBand は暗号資産の価格帯が半開区間で互いに排他であることを検証します。
func TestRiskLevel_CryptoInBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  entity.RiskLevel
	}{
		{price: 0, want: entity.RiskLow},
		{price: 4999.99, want: entity.RiskLow},
		{price: 5000, want: entity.RiskMedium},
		{price: 99999.99, want: entity.RiskMedium},
		{price: 100000, want: entity.RiskHigh},
		{price: 9000000, want: entity.RiskHigh},
	}

	levels := []entity.RiskLevel{entity.RiskLow, entity.RiskMedium, entity.RiskHigh}
	for _, tt := range tests {
		for _, level := range levels {
			got := level.CryptoInBand(tt.price)
			assert.Equal(t, level == tt.want, got, "price %v in %s band", tt.price, level)
		}
	}
}
