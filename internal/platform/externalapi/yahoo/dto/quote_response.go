package dto

// QuoteResponse is the envelope returned by the Yahoo Finance v7 quote API.
// ShortName and RegularMarketPrice are optional in the upstream payload.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			ShortName          string   `json:"shortName"`
			Symbol             string   `json:"symbol"`
			RegularMarketPrice *float64 `json:"regularMarketPrice"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}
