package source

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// probeFPS asks ffprobe for the video stream's frame rate. Any failure,
// including an unparsable or zero rate, falls back to [FallbackFPS].
func probeFPS(videoPath string) float64 {
	_, err := exec.LookPath("ffprobe")
	if err != nil {
		return FallbackFPS
	}

	//nolint:gosec // videoPath is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(
		context.Background(),
		"ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)

	out, err := cmd.Output()
	if err != nil {
		return FallbackFPS
	}

	fps := parseRate(strings.TrimSpace(string(out)))
	if fps <= 0 {
		return FallbackFPS
	}

	return fps
}

// parseRate parses ffprobe's rational frame rate ("30000/1001" or "25").
func parseRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}

		return f
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}

	return n / d
}
