// Package archive manages the on-disk layout of the measurement archive.
//
// Every measurement lives under <base>/data/M<id>/ with a fixed set of
// category folders. Raw instrument files are staged into the "raw" category
// and decoded from there; the other categories hold the material that
// accumulates around a measurement.
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Categories are the fixed subfolders of a measurement directory.
var Categories = []string{"raw", "scripts", "figures", "additional_info", "literature"}

// FormatBES3T identifies a Bruker BES3T raw data set (.DSC + .DTA pair).
const FormatBES3T = "bruker_bes3t"

// supportedFormats maps a format name to the lower-cased suffixes that must
// all be present for the format to be detected.
var supportedFormats = map[string][]string{
	FormatBES3T: {".dsc", ".dta"},
}

var (
	ErrExists      = errors.New("already exists")
	ErrNotFound    = errors.New("not found")
	ErrBadCategory = errors.New("unknown category")
)

// Archive provides access to one archive root directory.
type Archive struct {
	baseDir string
}

// New returns an Archive rooted at baseDir. The root is created lazily by
// CreateMeasurement.
func New(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

// MeasurementDir returns the directory of measurement id, whether or not it
// exists.
func (a *Archive) MeasurementDir(id int64) string {
	return filepath.Join(a.baseDir, "data", fmt.Sprintf("M%d", id))
}

// CreateMeasurement creates the folder tree for a new measurement and
// returns its directory. It fails if the measurement already exists.
func (a *Archive) CreateMeasurement(id int64) (string, error) {
	dir := a.MeasurementDir(id)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("measurement folder %s: %w", dir, ErrExists)
	}
	for _, category := range Categories {
		if err := os.MkdirAll(filepath.Join(dir, category), 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return dir, nil
}

// measurementDir returns the directory of an existing measurement.
func (a *Archive) measurementDir(id int64) (string, error) {
	dir := a.MeasurementDir(id)
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("measurement folder %s: %w", dir, ErrNotFound)
	}
	return dir, nil
}

// AddFile copies src into the given category of measurement id. Existing
// files are only replaced when overwrite is set.
func (a *Archive) AddFile(src string, id int64, category string, overwrite bool) error {
	if !validCategory(category) {
		return fmt.Errorf("category %q: %w (allowed: %s)",
			category, ErrBadCategory, strings.Join(Categories, ", "))
	}
	dir, err := a.measurementDir(id)
	if err != nil {
		return err
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("source file %s: %w", src, ErrNotFound)
	}

	targetDir := filepath.Join(dir, category)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	target := filepath.Join(targetDir, filepath.Base(src))
	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("file %s: %w", target, ErrExists)
		}
	}
	return copyFile(src, target)
}

// ListFiles returns the files of one category, or of the whole measurement
// when category is empty.
func (a *Archive) ListFiles(id int64, category string) ([]string, error) {
	if category != "" && !validCategory(category) {
		return nil, fmt.Errorf("category %q: %w", category, ErrBadCategory)
	}
	dir, err := a.measurementDir(id)
	if err != nil {
		return nil, err
	}

	root := filepath.Join(dir, category)
	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return files, nil
}

// RemoveFile deletes one file from a category.
func (a *Archive) RemoveFile(id int64, category, name string) error {
	if !validCategory(category) {
		return fmt.Errorf("category %q: %w", category, ErrBadCategory)
	}
	dir, err := a.measurementDir(id)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, category, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file %s: %w", path, ErrNotFound)
	}
	return os.Remove(path)
}

// StageRawData copies a BES3T file set (descriptor, data, optional YGF
// companion) into the raw category of measurement id. base is the source
// path without extension.
func (a *Archive) StageRawData(id int64, base string) error {
	dsc, ok := findWithSuffix(base, ".DSC")
	if !ok {
		return fmt.Errorf("raw data %s.DSC: %w", base, ErrNotFound)
	}
	dta, ok := findWithSuffix(base, ".DTA")
	if !ok {
		return fmt.Errorf("raw data %s.DTA: %w", base, ErrNotFound)
	}

	if err := a.AddFile(dsc, id, "raw", true); err != nil {
		return err
	}
	if err := a.AddFile(dta, id, "raw", true); err != nil {
		return err
	}
	if ygf, ok := findWithSuffix(base, ".YGF"); ok {
		if err := a.AddFile(ygf, id, "raw", true); err != nil {
			return err
		}
	}
	return nil
}

// RawBasePath locates the staged BES3T pair of a measurement and returns the
// decode base path plus the descriptor extension as found on disk.
func (a *Archive) RawBasePath(id int64) (base, ext string, err error) {
	dir, err := a.measurementDir(id)
	if err != nil {
		return "", "", err
	}
	rawDir := filepath.Join(dir, "raw")

	var dsc, dta string
	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return "", "", err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".dsc":
			dsc = e.Name()
		case ".dta":
			dta = e.Name()
		}
	}
	if dsc == "" || dta == "" {
		return "", "", fmt.Errorf("BES3T pair in %s: %w", rawDir, ErrNotFound)
	}

	dscStem := strings.TrimSuffix(dsc, filepath.Ext(dsc))
	dtaStem := strings.TrimSuffix(dta, filepath.Ext(dta))
	if dscStem != dtaStem {
		return "", "", fmt.Errorf("descriptor %s and data file %s have different base names", dsc, dta)
	}
	return filepath.Join(rawDir, dscStem), filepath.Ext(dsc), nil
}

// DetectFormat inspects the file suffixes in dir and returns the name of the
// first supported raw format whose required suffixes are all present.
func DetectFormat(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	present := make(map[string]bool)
	for _, e := range entries {
		if !e.IsDir() {
			present[strings.ToLower(filepath.Ext(e.Name()))] = true
		}
	}
	for name, required := range supportedFormats {
		all := true
		for _, suffix := range required {
			if !present[suffix] {
				all = false
				break
			}
		}
		if all {
			return name, true
		}
	}
	return "", false
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// findWithSuffix returns base+suffix in whichever case exists on disk,
// preferring the given (upper-case) spelling.
func findWithSuffix(base, suffix string) (string, bool) {
	for _, s := range []string{suffix, strings.ToLower(suffix)} {
		path := base + s
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
