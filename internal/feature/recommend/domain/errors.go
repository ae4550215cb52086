// Package domain defines domain-level errors for the recommend feature.
package domain

import "errors"

// Domain errors for recommendation operations.
// These errors represent business conditions and should be mapped to HTTP
// statuses by the transport layer.
var (
	// ErrNoMarketData indicates that both market data sources came back empty,
	// so no allocation can be computed. Distinct from a successful run that
	// simply selects zero assets.
	ErrNoMarketData = errors.New("market data temporarily unavailable")
)
