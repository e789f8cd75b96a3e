package vob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// File describes a single discovered video-object fragment.
type File struct {
	Path     string
	TitleSet string
	Sequence int
	Size     int64
}

// Sentinel errors surfaced by Scan.
var (
	ErrDirectoryMissing = errors.New("input directory not found")
	ErrNoMatches        = errors.New("no video-object files found")
)

// Pattern matches DVD title-set fragment names such as VTS_01_1.VOB. The
// first capture is the title-set prefix, the second the sequence index.
var pattern = regexp.MustCompile(`^(VTS_\d{2})_(\d+)\.VOB$`)

// Scan returns the video-object fragments inside dir, sorted by file name.
// Zero-padded DVD numbering makes lexical order equal numeric order, both
// across title sets and within one.
func Scan(dir string) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryMissing, dir)
		}
		return nil, fmt.Errorf("stat input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryMissing, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := pattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		sequence, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		entryInfo, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, File{
			Path:     filepath.Join(dir, entry.Name()),
			TitleSet: match[1],
			Sequence: sequence,
			Size:     entryInfo.Size(),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMatches, dir)
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i].Path) < filepath.Base(files[j].Path)
	})
	return files, nil
}
