// Package cache implements the File Cache component (spec §4.E): mapping a
// release's file descriptor to a canonical local path, downloading it
// atomically with progress reporting, and validating it by checksum. It is
// the spec's replacement for the teacher's checksum-over-a-separate-URL
// design — here the expected digest travels inline on the descriptor.
package cache

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"

	"github.com/caldera-labs/aupdate/internal/app/update"
	"github.com/caldera-labs/aupdate/internal/constants"
	"github.com/caldera-labs/aupdate/internal/domain/release"
	updateerr "github.com/caldera-labs/aupdate/internal/errors"
)

// sniffBufSize is how many leading bytes of a downloaded file are sniffed
// for a recognizable container format before checksum validation runs.
const sniffBufSize = 262

// Cache stores downloaded installers under a single directory, keyed by the
// final path segment of each release's download URL.
type Cache struct {
	httpClient *http.Client
	dir        string
}

// New constructs a Cache rooted at dir, creating it if necessary.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, constants.DirPerm); err != nil {
		return nil, updateerr.New("cache.New", updateerr.FilesystemFailed, err)
	}

	return &Cache{
		httpClient: &http.Client{Timeout: constants.DefaultTimeout},
		dir:        dir,
	}, nil
}

// LocalPath returns the canonical on-disk path for file: the cache directory
// joined with the final path segment of its download URL, per spec §4.E.
func (c *Cache) LocalPath(file release.FileDescriptor) string {
	return filepath.Join(c.dir, filepath.Base(file.URL()))
}

// Exists reports whether file's canonical path is present on disk.
func (c *Cache) Exists(file release.FileDescriptor) bool {
	_, err := os.Stat(c.LocalPath(file))

	return err == nil
}

// Download streams file's URL to its canonical path, reporting progress
// 0-100 as bytes arrive. It writes through a sibling temp file and renames
// into place only on success, so a failed or cancelled download never
// leaves a partial file at the canonical path.
func (c *Cache) Download(
	ctx context.Context, file release.FileDescriptor, progress update.ProgressFunc,
) (string, error) {
	dest := c.LocalPath(file)

	logrus.Debugf("Downloading %s -> %s", file.URL(), dest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL(), nil)
	if err != nil {
		return "", updateerr.New("cache.Download", updateerr.TransportFailed, err)
	}

	req.Header.Set("User-Agent", "aupdate")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", updateerr.Normalize("cache.Download", 0, err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", updateerr.New("cache.Download", updateerr.ResponseUnsuccessful,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	tmp, err := os.CreateTemp(c.dir, ".download-*")
	if err != nil {
		return "", updateerr.New("cache.Download", updateerr.FilesystemFailed, err)
	}

	tmpPath := tmp.Name()

	defer func() { _ = os.Remove(tmpPath) }() // no-op once renamed

	reader := &progressReader{reader: resp.Body, total: resp.ContentLength, callback: progress}

	if _, err := io.Copy(tmp, reader); err != nil {
		_ = tmp.Close()

		return "", updateerr.New("cache.Download", updateerr.FilesystemFailed, err)
	}

	if err := tmp.Close(); err != nil {
		return "", updateerr.New("cache.Download", updateerr.FilesystemFailed, err)
	}

	if err := os.Chmod(tmpPath, constants.FilePerm); err != nil {
		return "", updateerr.New("cache.Download", updateerr.FilesystemFailed, err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return "", updateerr.New("cache.Download", updateerr.FilesystemFailed, err)
	}

	return dest, nil
}

// Validate reports whether file's canonical local path exists and its
// SHA-512 digest matches the descriptor's expected checksum. A missing file
// is false, never an error — spec §4.E treats "not yet downloaded" and
// "downloaded but corrupt" alike as not-ready.
func (c *Cache) Validate(file release.FileDescriptor) bool {
	path := c.LocalPath(file)

	f, err := os.Open(path)
	if err != nil {
		return false
	}

	defer func() { _ = f.Close() }()

	if kind := sniff(f); kind == filetype.Unknown {
		logrus.Debugf("cache: %s does not match any known container format", path)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false
	}

	hasher := sha512.New()

	if _, err := io.Copy(hasher, f); err != nil {
		return false
	}

	actual := hex.EncodeToString(hasher.Sum(nil))

	return actual == file.SHA512()
}

// sniff inspects the leading bytes of f to identify its container format,
// restoring the read position afterward. Identification failures are
// tolerated: a feed is free to ship formats filetype doesn't recognize, and
// Validate falls through to the checksum regardless.
func sniff(f *os.File) filetype.Type {
	buf := make([]byte, sniffBufSize)

	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return filetype.Unknown
	}

	kind, err := filetype.Match(buf[:n])
	if err != nil {
		return filetype.Unknown
	}

	return kind
}

// progressReader wraps an io.Reader, invoking callback with 0-100 as bytes
// are read, proportional to total (when known).
type progressReader struct {
	reader   io.Reader
	total    int64
	read     int64
	callback update.ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)

	pr.read += int64(n)
	if pr.callback != nil && pr.total > 0 {
		pr.callback(int((pr.read * constants.ProgressMax) / pr.total))
	}

	return n, err
}
