package service

import (
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	password, err := crypto.Generate(optionsFromRequest(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:         password,
		Length:           utf8.RuneCountInString(password),
		StrengthResponse: s.Strength(password),
	}, nil
}

// GenerateBatch produces req.Count passwords, all or nothing.
func (s *GeneratorService) GenerateBatch(req model.BatchRequest) (model.BatchResponse, error) {
	passwords, err := crypto.GenerateBatch(optionsFromRequest(req.GenerateRequest), req.Count)
	if err != nil {
		return model.BatchResponse{}, err
	}

	return model.BatchResponse{
		Passwords: passwords,
		Count:     len(passwords),
	}, nil
}

// Strength scores a password.
func (s *GeneratorService) Strength(password string) model.StrengthResponse {
	score := crypto.Score(password)
	band := crypto.BandFor(score)
	return model.StrengthResponse{
		Score: score,
		Band:  band.String(),
		Color: band.Color(),
	}
}

// optionsFromRequest applies the defaults of crypto.DefaultOptions to missing fields.
func optionsFromRequest(req model.GenerateRequest) crypto.Options {
	def := crypto.DefaultOptions()

	opts := crypto.Options{
		Length:         req.Length,
		Lowercase:      boolOrDefault(req.Lowercase, def.Lowercase),
		Uppercase:      boolOrDefault(req.Uppercase, def.Uppercase),
		Digits:         boolOrDefault(req.Digits, def.Digits),
		Symbols:        boolOrDefault(req.Symbols, def.Symbols),
		ExcludeSimilar: boolOrDefault(req.ExcludeSimilar, def.ExcludeSimilar),
		Custom:         req.Custom,
	}
	if opts.Length == 0 {
		opts.Length = def.Length
	}

	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
