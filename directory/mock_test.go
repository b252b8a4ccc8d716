package directory

import (
	"context"
	"testing"
)

func TestMockProviderSeed(t *testing.T) {
	p, err := NewMockProvider()
	if err != nil {
		t.Fatalf("expected err nil when loading seed, got %v", err)
	}
	all, _ := p.Candidates(context.Background(), Filter{})
	if len(all) != 24 {
		t.Errorf("expected 24 seed candidates, got %d", len(all))
	}
	for _, u := range all {
		if ResolveGovernorate(u.Governorate).Defaulted {
			t.Errorf("expected seed governorate [%s] of [%s] to be known", u.Governorate, u.ID)
		}
	}
	baghdad, _ := p.Candidates(context.Background(), Filter{Governorate: "Baghdad"})
	if len(baghdad) != 3 {
		t.Errorf("expected 3 candidates in Baghdad, got %d", len(baghdad))
	}
	women, _ := p.Candidates(context.Background(), Filter{Gender: "Female"})
	if len(women) != 11 {
		t.Errorf("expected 11 female candidates, got %d", len(women))
	}
	none, err := p.Candidates(context.Background(), Filter{Party: "Nobody Party"})
	if err != nil || len(none) != 0 {
		t.Errorf("expected empty result without error, got %d users and err %v", len(none), err)
	}
}
