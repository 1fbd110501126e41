// Package project locates the .studywing directory that anchors a study
// project. Commands can run from anywhere inside the project tree; detection
// walks up from the working directory the way git finds its repository.
package project

import (
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
)

// MarkerDir is the directory name that marks a study project root.
const MarkerDir = ".studywing"

// ErrNoProjectFound is returned when no study project could be detected.
var ErrNoProjectFound = errors.New("no study project found")

// Detector finds the project directory for a given start path.
// The abstraction exists so tests can run against a memory filesystem.
type Detector interface {
	// Detect returns the nearest .studywing directory at or above startPath.
	Detect(startPath string) (string, error)
}

type detector struct {
	fs afero.Fs
}

// NewDetector creates a Detector over the provided filesystem.
func NewDetector(fs afero.Fs) Detector {
	return &detector{fs: fs}
}

// NewOsDetector creates a Detector over the operating system filesystem.
func NewOsDetector() Detector {
	return NewDetector(afero.NewOsFs())
}

// Detect finds the project directory from startPath using the OS filesystem.
func Detect(startPath string) (string, error) {
	return NewOsDetector().Detect(startPath)
}

// Detect walks from startPath toward the filesystem root and returns the
// first .studywing directory it finds. A plain file with the marker name
// does not count; the marker must be the project directory itself.
func (d *detector) Detect(startPath string) (string, error) {
	dir, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(dir, MarkerDir)
		if info, err := d.fs.Stat(marker); err == nil && info.IsDir() {
			return marker, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectFound
		}
		dir = parent
	}
}
