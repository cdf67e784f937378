package test

// ClassifyRequest represents a classification test request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents a classification test response
type ClassifyResponse struct {
	Success        bool   `json:"success"`
	Intent         string `json:"intent,omitempty"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
	Location       string `json:"location,omitempty"`
	HasLocation    bool   `json:"has_location"`
	Text           string `json:"text"`
	Error          string `json:"error,omitempty"`
	Details        string `json:"details,omitempty"`
}
