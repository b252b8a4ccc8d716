package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/candidatos-info/diretorio/csvimport"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("PORT", "")
	os.Setenv("CANDIDATES_CSV", "")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("expected err nil with defaults, got %v", err)
	}
	if cfg.port != 4001 || cfg.csv != "data/candidates.csv" {
		t.Errorf("expected default port 4001 and csv data/candidates.csv, got %d and %s", cfg.port, cfg.csv)
	}
	os.Setenv("PORT", "8080")
	os.Setenv("CANDIDATES_CSV", "gs://elections/candidates.csv")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("CANDIDATES_CSV")
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("expected err nil, got %v", err)
	}
	if cfg.port != 8080 || cfg.csv != "gs://elections/candidates.csv" {
		t.Errorf("expected port 8080 and gs location, got %d and %s", cfg.port, cfg.csv)
	}
	os.Setenv("PORT", "eighty")
	if _, err := loadConfig(); err == nil {
		t.Errorf("expected error for invalid PORT")
	}
	os.Setenv("PORT", "")
	os.Setenv("CANDIDATES_CSV_ENCODING", "ebcdic")
	defer os.Unsetenv("CANDIDATES_CSV_ENCODING")
	if _, err := loadConfig(); err == nil {
		t.Errorf("expected error for unsupported CANDIDATES_CSV_ENCODING")
	}
}

func TestImportCandidates(t *testing.T) {
	dir, err := ioutil.TempDir("", "diretorio")
	if err != nil {
		t.Fatalf("expected err nil when creating temp dir, got %v", err)
	}
	defer os.RemoveAll(dir)
	good := filepath.Join(dir, "candidates.csv")
	if err := ioutil.WriteFile(good, []byte("name,gender,governorate\nAli,Male,Baghdad\nSara,,\n"), 0644); err != nil {
		t.Fatalf("expected err nil when writing file, got %v", err)
	}
	store, err := importCandidates(config{csv: good})
	if err != nil {
		t.Fatalf("expected err nil when importing, got %v", err)
	}
	if store.Len() != 2 || !store.Ready() {
		t.Errorf("expected ready store with 2 candidates, got %d", store.Len())
	}
	empty := filepath.Join(dir, "empty.csv")
	if err := ioutil.WriteFile(empty, []byte("\n"), 0644); err != nil {
		t.Fatalf("expected err nil when writing file, got %v", err)
	}
	if _, err := importCandidates(config{csv: empty}); err != csvimport.ErrMissingHeader {
		t.Errorf("expected ErrMissingHeader, got %v", err)
	}
	if _, err := importCandidates(config{csv: good, encoding: "ebcdic"}); err == nil {
		t.Errorf("expected error for unsupported encoding")
	}
}
