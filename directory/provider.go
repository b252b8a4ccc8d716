package directory

import (
	"context"
	"log"
)

// Provider is a source of directory candidates.
type Provider interface {
	Name() string
	Candidates(ctx context.Context, f Filter) ([]User, error)
}

// Directory asks its providers in order and keeps the first non empty
// answer. Every call starts again from the first provider, each
// provider is tried once.
type Directory struct {
	providers []Provider
}

// New returns a directory over the given providers, in priority order.
func New(providers ...Provider) *Directory {
	return &Directory{
		providers: providers,
	}
}

// Candidates never fails: provider errors are logged as warnings and the
// next provider is tried. When every provider fails or comes back empty
// the result is an empty list.
func (d *Directory) Candidates(ctx context.Context, f Filter) []User {
	for _, p := range d.providers {
		users, err := p.Candidates(ctx, f)
		if err != nil {
			log.Printf("warning: provider [%s] failed, error %v\n", p.Name(), err)
			continue
		}
		if len(users) == 0 {
			log.Printf("provider [%s] returned no candidates\n", p.Name())
			continue
		}
		log.Printf("provider [%s] returned [%d] candidates\n", p.Name(), len(users))
		return users
	}
	return []User{}
}
