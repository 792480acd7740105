// Package source resolves a user-given identifier, either a local path or
// a remote URL, into a local decodable audio file.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrSourceUnavailable means a remote reference could not be fetched.
	ErrSourceUnavailable = errors.New("failed to download audio (invalid URL?)")

	// ErrFileNotFound means a local path does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// IsRemote reports whether the identifier is a URL to download rather
// than a local path.
func IsRemote(identifier string) bool {
	return strings.HasPrefix(identifier, "http")
}

// Resolver fetches remote sources into a working directory.
type Resolver struct {
	// Format is the audio format downloads are extracted to, e.g. "flac".
	Format string
}

// Resolve turns an identifier into a local file path. Remote identifiers
// are downloaded with yt-dlp and extracted to the configured format;
// local paths are checked for existence.
func (r *Resolver) Resolve(ctx context.Context, identifier, workDir string) (string, error) {
	if IsRemote(identifier) {
		return r.download(ctx, identifier, workDir)
	}

	if _, err := os.Stat(identifier); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, identifier)
	}
	return identifier, nil
}

func (r *Resolver) download(ctx context.Context, url, workDir string) (string, error) {
	out := filepath.Join(workDir, "audio."+r.Format)

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", r.Format,
		"--audio-quality", "0",
		"--output", strings.TrimSuffix(out, filepath.Ext(out)),
		"--no-playlist",
		"--quiet",
		url,
	)

	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceUnavailable, strings.TrimSpace(string(output)))
	}

	return out, nil
}

// Persist copies a downloaded file to dst, forcing dst's extension to
// match the source. Best effort: callers treat a failure as non-fatal.
func Persist(src, dst string) error {
	dst = strings.TrimSuffix(dst, filepath.Ext(dst)) + filepath.Ext(src)

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}

	return dstFile.Close()
}
