package directory

import (
	"context"
	_ "embed" // seed candidates
	"fmt"

	"github.com/candidatos-info/diretorio/candidates"
	"github.com/gocarina/gocsv"
)

//go:embed seed/candidates.csv
var seedCSV []byte

type seedCandidate struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Party       string `csv:"party"`
	Governorate string `csv:"governorate"`
	Gender      string `csv:"gender"`
}

// MockProvider serves a fixed list of candidates from memory. It is the
// last resort of the directory when the remote API is down.
type MockProvider struct {
	users []User
}

// NewMockProvider returns a provider over the embedded seed candidates.
func NewMockProvider() (*MockProvider, error) {
	var seed []*seedCandidate
	if err := gocsv.UnmarshalBytes(seedCSV, &seed); err != nil {
		return nil, fmt.Errorf("failed to load seed candidates, error %v", err)
	}
	records := make([]candidates.Record, 0, len(seed))
	for _, s := range seed {
		records = append(records, candidates.Record{
			"id":          s.ID,
			"name":        s.Name,
			"party":       s.Party,
			"governorate": s.Governorate,
			"gender":      s.Gender,
		})
	}
	return NewMockProviderWith(Normalize(records)), nil
}

// NewMockProviderWith returns a provider over the given users.
func NewMockProviderWith(users []User) *MockProvider {
	return &MockProvider{
		users: users,
	}
}

// Name of the provider
func (p *MockProvider) Name() string {
	return "mock"
}

// Candidates applies the filter over the in memory users.
func (p *MockProvider) Candidates(ctx context.Context, f Filter) ([]User, error) {
	return f.Apply(p.users), nil
}
