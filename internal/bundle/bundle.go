// Package bundle packs generated theme files into compressed tar archives
// and reads them back.
package bundle

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// Size limits applied when reading bundles.
const (
	MaxFileSize  = 16 << 20
	MaxTotalSize = 64 << 20
)

var (
	// ErrUnsupportedArchive is returned for archive names that are neither
	// .tar.gz nor .tar.xz.
	ErrUnsupportedArchive = errors.New("unsupported archive format")

	// ErrUnsafePath is returned for entry names that are absolute or
	// escape the archive root.
	ErrUnsafePath = errors.New("unsafe path in archive")
)

// Format is a supported compression.
type Format int

const (
	TarGz Format = iota
	TarXz
)

func (f Format) String() string {
	switch f {
	case TarGz:
		return "tar.gz"
	case TarXz:
		return "tar.xz"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromName picks the format from an archive file name.
func FormatFromName(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return TarGz, nil
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		return TarXz, nil
	default:
		return 0, fmt.Errorf("%w: %s (use .tar.gz or .tar.xz)", ErrUnsupportedArchive, name)
	}
}

// modTime is stamped on every entry so equal inputs give equal archives.
var modTime = time.Unix(0, 0).UTC()

// Write creates the archive at name holding files. The format follows the
// file extension.
func Write(name string, files map[string][]byte) error {
	format, err := FormatFromName(name)
	if err != nil {
		return err
	}

	out, err := os.Create(name) // #nosec G304 - archive path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}

	writeErr := Encode(out, format, files)
	closeErr := out.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close bundle: %w", closeErr)
	}
	return nil
}

// Encode writes files to w as a compressed tar stream, entries in lexical
// order.
func Encode(w io.Writer, format Format, files map[string][]byte) error {
	var (
		cw  io.WriteCloser
		err error
	)
	switch format {
	case TarGz:
		cw = gzip.NewWriter(w)
	case TarXz:
		cw, err = xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedArchive, format)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tar.NewWriter(cw)
	for _, name := range names {
		entry, err := CleanName(name)
		if err != nil {
			return err
		}
		hdr := &tar.Header{
			Name:     entry,
			Mode:     0o644,
			Size:     int64(len(files[name])),
			ModTime:  modTime,
			Typeflag: tar.TypeReg,
			Format:   tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", entry, err)
		}
		if _, err := tw.Write(files[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("failed to finish %s stream: %w", format, err)
	}
	return nil
}

// Read loads every regular file of the archive at name.
func Read(name string) (map[string][]byte, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(name) // #nosec G304 - archive path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a compressed tar stream. Directories are skipped; links and
// other special entries are rejected, as are entry names that would escape
// the archive root. Files larger than MaxFileSize, or archives expanding
// past MaxTotalSize, fail with ErrSizeLimit.
func Decode(r io.Reader, format Format) (map[string][]byte, error) {
	return decode(r, format, MaxFileSize, MaxTotalSize)
}

func decode(r io.Reader, format Format, maxFile, maxTotal int64) (map[string][]byte, error) {
	var src io.Reader
	switch format {
	case TarGz:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		src = gzr
	case TarXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		src = xzr
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchive, format)
	}

	total := NewLimitedReader(src, maxTotal)
	tr := tar.NewReader(total)
	files := make(map[string][]byte)

	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return files, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			continue
		case tar.TypeReg:
		default:
			return nil, fmt.Errorf("%w: %s is not a regular file", ErrUnsafePath, hdr.Name)
		}

		name, err := CleanName(hdr.Name)
		if err != nil {
			return nil, err
		}

		content, err := io.ReadAll(NewLimitedReader(tr, maxFile))
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", name, err)
		}
		files[name] = content
	}
}

// CleanName returns the slash-separated archive form of name, rejecting
// empty, absolute and parent-relative names.
func CleanName(name string) (string, error) {
	slashed := strings.ReplaceAll(name, `\`, "/")
	if slashed == "" || path.IsAbs(slashed) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	clean := path.Clean(slashed)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return clean, nil
}
