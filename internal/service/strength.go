package service

import (
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

// StrengthService handles password strength checks.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check evaluates the requested password. Empty passwords are rejected here,
// not by the evaluator, which accepts any string.
func (s *StrengthService) Check(req model.CheckRequest) (model.CheckResponse, error) {
	if req.Password == "" {
		return model.CheckResponse{}, ErrPasswordRequired
	}
	return toCheckResponse(strength.Evaluate(req.Password)), nil
}

// toCheckResponse renders a result with the password masked.
func toCheckResponse(res strength.Result) model.CheckResponse {
	return model.CheckResponse{
		Password: res.Masked(),
		Strength: res.Label.String(),
		Score:    res.Score,
		MaxScore: res.MaxScore,
		Feedback: res.Feedback,
	}
}
