package fetch

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

// extractFromWheel pulls the named library artifacts out of a wheel (wheels
// are plain zip archives) into libDir. Every requested name must be found.
func extractFromWheel(wheelPath, libDir string, names []string) error {
	zr, err := zip.OpenReader(wheelPath)
	if err != nil {
		return errors.Wrapf(err, "opening wheel %s", wheelPath)
	}
	defer zr.Close()

	remaining := make(map[string]bool, len(names))
	for _, n := range names {
		remaining[n] = true
	}

	for _, f := range zr.File {
		name := matchArtifact(f.Name, remaining)
		if name == "" {
			continue
		}
		if err := extractOne(f, filepath.Join(libDir, name)); err != nil {
			return err
		}
		delete(remaining, name)
		if len(remaining) == 0 {
			return nil
		}
	}

	missing := make([]string, 0, len(remaining))
	for n := range remaining {
		missing = append(missing, n)
	}
	return errors.Newf("%s not found in wheel %s", strings.Join(missing, ", "), wheelPath)
}

// matchArtifact returns the wanted artifact name that the archive entry
// carries, or "" if the entry is not one of them.
func matchArtifact(entry string, wanted map[string]bool) string {
	base := entry[strings.LastIndexByte(entry, '/')+1:]
	if wanted[base] {
		return base
	}
	return ""
}

func extractOne(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, "opening %s in wheel", f.Name)
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.Wrap(err, "creating library directory")
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dest)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return errors.Wrapf(err, "extracting %s", f.Name)
	}
	return out.Close()
}
