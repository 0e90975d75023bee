package model

// CheckRequest represents a password strength check request.
type CheckRequest struct {
	Password string `json:"password"`
}

// CheckResponse is the rendered evaluation of a password. Password is always masked.
type CheckResponse struct {
	Password string   `json:"password"`
	Strength string   `json:"strength"`
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Feedback []string `json:"feedback"`
}
