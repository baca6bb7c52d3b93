// Package media wraps ffprobe for inspecting uploaded media files.
package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Prober reports the duration of a local media file.
type Prober interface {
	// Duration returns the duration of the file at path in seconds.
	Duration(ctx context.Context, path string) (float64, error)
}

// FFprobeConfig holds configuration for the ffprobe-based prober.
type FFprobeConfig struct {
	// FFprobePath is the path to the ffprobe binary.
	// If empty, "ffprobe" will be used (assumes it's in PATH).
	FFprobePath string
}

// DefaultFFprobeConfig returns an FFprobeConfig with defaults.
func DefaultFFprobeConfig() FFprobeConfig {
	return FFprobeConfig{FFprobePath: "ffprobe"}
}

// FFprobe implements Prober using the ffprobe CLI.
type FFprobe struct {
	config FFprobeConfig
}

// Compile-time verification that FFprobe implements Prober.
var _ Prober = (*FFprobe)(nil)

// NewFFprobe creates a new ffprobe-based prober.
func NewFFprobe(cfg FFprobeConfig) *FFprobe {
	return &FFprobe{config: cfg}
}

// Duration runs ffprobe against the file and parses the reported duration.
func (p *FFprobe) Duration(ctx context.Context, path string) (float64, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("input file does not exist: %s", path)
		}
		return 0, fmt.Errorf("failed to access input file: %w", err)
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	cmd := exec.CommandContext(ctx, p.config.FFprobePath, args...)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("probe cancelled: %w", ctx.Err())
		}
		return 0, fmt.Errorf("ffprobe execution failed: %w", err)
	}

	return parseDuration(string(out))
}

// parseDuration converts ffprobe's duration output to seconds.
func parseDuration(out string) (float64, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", strings.TrimSpace(out), err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative duration %f", seconds)
	}
	return seconds, nil
}
