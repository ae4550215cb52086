// Package dto defines data transfer objects for the recommend feature's HTTP transport layer.
package dto

// RecommendRequest represents the request body for /api/recommend-investments.
// It uses Gin's binding tags for validation (amount range, risk level enum).
// Validation failures are mapped to human-readable messages by the handler
// before any market data is fetched.
type RecommendRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0,lte=10000000"`
	RiskLevel string  `json:"riskLevel" binding:"required,oneof=Low Medium High"`
}
