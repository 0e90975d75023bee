package service

import (
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen           *crypto.Generator
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. defaultLength applies
// when a request leaves the length unset.
func NewGeneratorService(gen *crypto.Generator, defaultLength int) *GeneratorService {
	return &GeneratorService{gen: gen, defaultLength: defaultLength}
}

// Generate produces a password and evaluates it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.defaultLength
	}

	password, err := s.gen.Generate(length)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Analysis: toCheckResponse(strength.Evaluate(password)),
	}, nil
}
