package directory

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/datastore"
	"github.com/candidatos-info/diretorio/slug"
)

const (
	candidatesKind = "Candidate"
	maxBatch       = 500 // datastore limit of entities per call
)

// DatastoreProvider reads candidates saved on Google Cloud Datastore.
type DatastoreProvider struct {
	client *datastore.Client
}

// NewDatastoreProvider returns a provider over the given client.
func NewDatastoreProvider(client *datastore.Client) *DatastoreProvider {
	return &DatastoreProvider{
		client: client,
	}
}

// Name of the provider
func (p *DatastoreProvider) Name() string {
	return "datastore"
}

// Candidates filters governorate, party and gender on the query; search
// and pagination are applied after.
func (p *DatastoreProvider) Candidates(ctx context.Context, f Filter) ([]User, error) {
	query := datastore.NewQuery(candidatesKind)
	if Active(f.Governorate) {
		query = query.Filter("GovernorateSlug =", slug.Make(f.Governorate))
	}
	if Active(f.Party) {
		query = query.Filter("PartySlug =", slug.Make(f.Party))
	}
	if Active(f.Gender) {
		query = query.Filter("Gender =", canonicalGender(f.Gender))
	}
	var users []User
	if _, err := p.client.GetAll(ctx, query, &users); err != nil {
		return nil, fmt.Errorf("failed to query candidates on datastore, error %v", err)
	}
	rest := f
	rest.Governorate, rest.Party, rest.Gender = "", "", ""
	return rest.Apply(users), nil
}

// Save stores the users keyed by their IDs, replacing existing ones.
func (p *DatastoreProvider) Save(ctx context.Context, users []User) error {
	for start := 0; start < len(users); start += maxBatch {
		end := start + maxBatch
		if end > len(users) {
			end = len(users)
		}
		batch := users[start:end]
		keys := make([]*datastore.Key, len(batch))
		for i, u := range batch {
			keys[i] = datastore.NameKey(candidatesKind, u.ID, nil)
		}
		if _, err := p.client.PutMulti(ctx, keys, batch); err != nil {
			return fmt.Errorf("failed to save candidates [%d-%d] on datastore, error %v", start, end, err)
		}
	}
	return nil
}

func canonicalGender(g string) string {
	g = strings.TrimSpace(g)
	for _, c := range []string{Male, Female} {
		if strings.EqualFold(g, c) {
			return c
		}
	}
	return g
}
