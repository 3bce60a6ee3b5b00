package response

// PricingSuggestionResponse carries the computed price for the selected
// vehicle types and services. Suggested is false when no base service
// matched, in which case Total must be ignored.
type PricingSuggestionResponse struct {
	Total     float64 `json:"total"`
	Suggested bool    `json:"suggested"`
}
