package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/candidatos-info/diretorio/api"
	"github.com/candidatos-info/diretorio/candidates"
	"github.com/candidatos-info/diretorio/csvimport"
	"github.com/candidatos-info/diretorio/filestorage"
	"github.com/matryer/try"
)

const (
	maxAttempts = 5 // attempts to read the candidates file
	defaultPort = 4001
	defaultCSV  = "data/candidates.csv"
)

type config struct {
	port     int
	csv      string
	encoding string
}

func loadConfig() (config, error) {
	cfg := config{
		port:     defaultPort,
		csv:      os.Getenv("CANDIDATES_CSV"),
		encoding: os.Getenv("CANDIDATES_CSV_ENCODING"),
	}
	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 {
			return config{}, fmt.Errorf("invalid PORT environment variable [%s]", p)
		}
		cfg.port = port
	}
	if cfg.csv == "" {
		cfg.csv = defaultCSV
	}
	if _, err := csvimport.Decoder(cfg.encoding); err != nil {
		return config{}, fmt.Errorf("invalid CANDIDATES_CSV_ENCODING environment variable, error %v", err)
	}
	return cfg, nil
}

// importCandidates reads the candidates file, retrying read failures.
// An unsupported encoding or a file without header is not retried.
func importCandidates(cfg config) (*candidates.Store, error) {
	loc, err := filestorage.ParseLocation(cfg.csv)
	if err != nil {
		return nil, err
	}
	storage, err := filestorage.ForLocation(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage for [%s], error %v", loc, err)
	}
	if _, err := csvimport.Decoder(cfg.encoding); err != nil {
		return nil, err
	}
	importer := csvimport.NewImporter(storage, cfg.encoding)
	var res *csvimport.Result
	err = try.Do(func(attempt int) (bool, error) {
		var err error
		res, err = importer.Import(loc)
		return attempt < maxAttempts && err != nil && err != csvimport.ErrMissingHeader, err
	})
	if err != nil {
		return nil, err
	}
	return candidates.NewStore(res.Records), nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	store, err := importCandidates(cfg)
	if err != nil {
		log.Fatalf("failed to import candidates from [%s], error %v", cfg.csv, err)
	}
	log.Printf("imported [%d] candidates from [%s]\n", store.Len(), cfg.csv)
	e := api.New(store)
	log.Println("server online at ", cfg.port)
	log.Fatal(e.Start(":" + strconv.Itoa(cfg.port)))
}
