package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/datastore"
	"github.com/candidatos-info/diretorio/directory"
	"github.com/candidatos-info/diretorio/filestorage"
	"github.com/matryer/try"
)

const (
	maxAttempts = 5 // number of times to retry an export upload
)

func main() {
	apiURL := flag.String("api", "http://localhost:4001", "base URL of the candidates API")
	timeout := flag.Duration("timeout", directory.DefaultTimeout, "timeout of the request to the candidates API")
	governorate := flag.String("governorate", "", "governorate filter (All or empty for every governorate)")
	party := flag.String("party", "", "party filter (All or empty for every party)")
	gender := flag.String("gender", "", "gender filter (Male, Female)")
	search := flag.String("search", "", "text to look for on candidate and party names")
	page := flag.Int("page", 0, "page to request")
	limit := flag.Int("limit", 0, "candidates per page")
	datastoreProject := flag.String("datastoreProject", "", "GCP project with candidates saved on datastore, tried after the API")
	seedDatastore := flag.Bool("seedDatastore", false, "save the mock candidates on datastore and exit")
	export := flag.String("export", "", "storage location to export the candidates as CSV (local path, gs://, s3:// or drive://)")
	flag.Parse()
	mock, err := directory.NewMockProvider()
	if err != nil {
		log.Fatalf("failed to load mock candidates, error %v", err)
	}
	ctx := context.Background()
	providers := []directory.Provider{directory.NewRemoteProvider(*apiURL, *timeout)}
	if *datastoreProject != "" {
		client, err := datastore.NewClient(ctx, *datastoreProject)
		if err != nil {
			log.Fatalf("failed to create datastore client for project [%s], error %v", *datastoreProject, err)
		}
		defer client.Close()
		ds := directory.NewDatastoreProvider(client)
		if *seedDatastore {
			users, err := mock.Candidates(ctx, directory.Filter{})
			if err != nil {
				log.Fatalf("failed to read mock candidates, error %v", err)
			}
			if err := ds.Save(ctx, users); err != nil {
				log.Fatal(err)
			}
			log.Printf("saved [%d] candidates on datastore project [%s]\n", len(users), *datastoreProject)
			return
		}
		providers = append(providers, ds)
	} else if *seedDatastore {
		log.Fatal("inform the datastore project to seed")
	}
	providers = append(providers, mock)
	f := directory.Filter{
		Governorate: *governorate,
		Party:       *party,
		Gender:      *gender,
		Search:      *search,
		Page:        *page,
		Limit:       *limit,
	}
	users := directory.New(providers...).Candidates(ctx, f)
	if *export != "" {
		if err := exportUsers(users, *export); err != nil {
			log.Fatalf("failed to export candidates, error %v", err)
		}
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		log.Fatalf("failed to print candidates, error %v", err)
	}
}

func exportUsers(users []directory.User, location string) error {
	loc, err := filestorage.ParseLocation(location)
	if err != nil {
		return err
	}
	storage, err := filestorage.ForLocation(loc)
	if err != nil {
		return err
	}
	return upload(users, loc, storage)
}

func upload(users []directory.User, loc filestorage.Location, storage filestorage.FileStorage) error {
	b, err := directory.ExportCSV(users)
	if err != nil {
		return err
	}
	var path string
	start := time.Now()
	err = try.Do(func(attempt int) (bool, error) {
		var err error
		path, err = storage.Upload(b, loc.Bucket, loc.Name)
		return attempt < maxAttempts, err
	})
	if err != nil {
		return fmt.Errorf("failed to upload file [%s], error %v", loc, err)
	}
	log.Printf("exported [%d] candidates to [%s] in %s\n", len(users), path, time.Since(start))
	return nil
}
