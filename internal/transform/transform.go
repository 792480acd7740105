// Package transform produces the playback-ready audio file by applying
// optional trim and tempo effects with sox.
package transform

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/llehouerou/tempo/internal/audio"
)

// Options describes the requested transformation. Zero values mean
// "leave the audio alone".
type Options struct {
	// Start is the trim start in seconds.
	Start float64
	// End is the trim end in seconds; 0 means play to the end.
	End float64
	// Tempo is the tempo multiplier; 1 (or 0) means unchanged.
	Tempo float64
}

// active reports whether any effect is requested.
func (o Options) active() bool {
	return o.Start != 0 || o.End > 0 || (o.Tempo != 0 && o.Tempo != 1)
}

// Apply renders the playback file into workDir and returns its path and
// duration in seconds. When no effect is requested the input file is
// returned untouched; the duration is measured by decoding either way.
func Apply(ctx context.Context, inputPath, workDir, format string, opts Options) (string, float64, error) {
	path := inputPath

	if opts.active() {
		path = filepath.Join(workDir, "playback."+format)
		if err := run(ctx, inputPath, path, opts); err != nil {
			return "", 0, err
		}
	}

	duration, err := audio.Probe(path)
	if err != nil {
		return "", 0, fmt.Errorf("measure duration: %w", err)
	}

	return path, duration, nil
}

func run(ctx context.Context, in, out string, opts Options) error {
	cmd := exec.CommandContext(ctx, "sox", soxArgs(in, out, opts)...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("sox failed: %w\n%s", err, string(output))
	}
	return nil
}

// soxArgs builds the sox command line. Trim uses an absolute end position
// and tempo uses the music-optimized segment profile.
func soxArgs(in, out string, opts Options) []string {
	args := []string{in, out}

	if opts.Start != 0 || opts.End > 0 {
		args = append(args, "trim", formatSeconds(opts.Start))
		if opts.End > 0 {
			args = append(args, "="+formatSeconds(opts.End))
		}
	}
	if opts.Tempo != 0 && opts.Tempo != 1 {
		args = append(args, "tempo", "-m", formatSeconds(opts.Tempo))
	}

	return args
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
