// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package configstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "configs.yaml"))
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s := testStore(t)

	configs, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(configs) != 0 {
		t.Errorf("expected empty collection, got %d entries", len(configs))
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := testStore(t)

	want := types.NamedConfig{
		InputPath:  "/books/anatomy.pdf",
		OutputPath: "/notes/anatomy.md",
	}
	if err := s.Save("default", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	configs, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := configs["default"]
	if !ok {
		t.Fatal("saved configuration not found")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	s := testStore(t)

	if err := s.Save("default", types.NamedConfig{InputPath: "old.pdf", OutputPath: "old.md"}); err != nil {
		t.Fatal(err)
	}
	want := types.NamedConfig{InputPath: "new.pdf", OutputPath: "new.md"}
	if err := s.Save("default", want); err != nil {
		t.Fatal(err)
	}

	configs, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(configs) != 1 {
		t.Errorf("expected 1 entry, got %d", len(configs))
	}
	if configs["default"] != want {
		t.Errorf("got %+v, want %+v", configs["default"], want)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	if err := s.Save("a", types.NamedConfig{InputPath: "a.pdf", OutputPath: "a.md"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("b", types.NamedConfig{InputPath: "b.pdf", OutputPath: "b.md"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	configs, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := configs["a"]; ok {
		t.Error("deleted entry still present")
	}
	if _, ok := configs["b"]; !ok {
		t.Error("unrelated entry was removed")
	}
}

func TestDeleteUnknownName(t *testing.T) {
	s := testStore(t)
	if err := s.Delete("ghost"); err == nil {
		t.Error("expected error deleting unknown name")
	}
}

func TestLoadMalformedFileIsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs.yaml")
	if err := os.WriteFile(path, []byte("{not: [valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(path).Load()
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestSaveEmptyName(t *testing.T) {
	s := testStore(t)
	err := s.Save("", types.NamedConfig{})
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}
