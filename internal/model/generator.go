package model

// GenerateRequest represents a password generation request.
// A zero Length selects the configured default.
type GenerateRequest struct {
	Length int `json:"length"`
}

// GenerateResponse carries the new password and its masked analysis.
type GenerateResponse struct {
	Password string        `json:"password"`
	Length   int           `json:"length"`
	Analysis CheckResponse `json:"analysis"`
}
