package project

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestDetect_MarkerInStartDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/kim/biology/.studywing", 0755); err != nil {
		t.Fatal(err)
	}

	got, err := NewDetector(fs).Detect("/home/kim/biology")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != "/home/kim/biology/.studywing" {
		t.Errorf("Detect() = %q, want the marker in the start dir", got)
	}
}

func TestDetect_WalksUpToAncestor(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/kim/biology/.studywing", 0755); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/home/kim/biology/notes/chapter-3", 0755); err != nil {
		t.Fatal(err)
	}

	got, err := NewDetector(fs).Detect("/home/kim/biology/notes/chapter-3")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != "/home/kim/biology/.studywing" {
		t.Errorf("Detect() = %q, want the ancestor marker", got)
	}
}

func TestDetect_NearestMarkerWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/kim/.studywing", 0755); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/home/kim/biology/.studywing", 0755); err != nil {
		t.Fatal(err)
	}

	got, err := NewDetector(fs).Detect("/home/kim/biology")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != "/home/kim/biology/.studywing" {
		t.Errorf("Detect() = %q, want the nearest marker, not the outer one", got)
	}
}

func TestDetect_IgnoresMarkerFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/kim/biology", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/home/kim/biology/.studywing", []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewDetector(fs).Detect("/home/kim/biology")
	if !errors.Is(err, ErrNoProjectFound) {
		t.Errorf("Detect() error = %v, want ErrNoProjectFound for a marker file", err)
	}
}

func TestDetect_NoProject(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/kim/biology", 0755); err != nil {
		t.Fatal(err)
	}

	_, err := NewDetector(fs).Detect("/home/kim/biology")
	if !errors.Is(err, ErrNoProjectFound) {
		t.Errorf("Detect() error = %v, want ErrNoProjectFound", err)
	}
}
