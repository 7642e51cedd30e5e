package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
)

// WriteArtifacts writes each artifact to dir under its stable file name.
// It returns the written paths in artifact order.
func WriteArtifacts(dir string, artifacts []models.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if a.FileName == "" {
			return paths, fmt.Errorf("artifact %q has no file name", a.Name)
		}
		path := filepath.Join(dir, a.FileName)
		if err := writeFileAtomic(path, []byte(a.Content)); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", a.FileName, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers never see a half-written artifact.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
