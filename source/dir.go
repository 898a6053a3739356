package source

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// dirSource reads PNG frames from a directory, sorted by filename. Frames
// are decoded one per Read; only the index moves on Seek.
type dirSource struct {
	dir     string
	names   []string
	cleanup func()
	pos     int
	width   int
	height  int
	fps     float64
}

// openDir builds a [Source] over the PNG files in dir. The first frame is
// decoded eagerly to learn the source dimensions. cleanup, if non-nil, runs
// on Close (used to remove ffmpeg extraction directories).
func openDir(dir string, fps float64, cleanup func()) (Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading frame directory: %w", err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, dir)
	}

	first, err := decodePNG(filepath.Join(dir, names[0]))
	if err != nil {
		return nil, fmt.Errorf("decoding first frame: %w", err)
	}

	return &dirSource{
		dir:     dir,
		names:   names,
		cleanup: cleanup,
		width:   first.Bounds().Dx(),
		height:  first.Bounds().Dy(),
		fps:     fps,
	}, nil
}

func (s *dirSource) Read() (*image.RGBA, bool) {
	if s.pos >= len(s.names) {
		return nil, false
	}

	img, err := decodePNG(filepath.Join(s.dir, s.names[s.pos]))
	if err != nil {
		// A frame that cannot be decoded mid-stream is treated as
		// end-of-stream rather than surfaced; playback loops or
		// transitions on exhaustion either way.
		return nil, false
	}

	s.pos++

	return img, true
}

func (s *dirSource) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}

	if frame > len(s.names) {
		frame = len(s.names)
	}

	s.pos = frame
}

func (s *dirSource) Pos() int        { return s.pos }
func (s *dirSource) Width() int      { return s.width }
func (s *dirSource) Height() int     { return s.height }
func (s *dirSource) FrameCount() int { return len(s.names) }
func (s *dirSource) FPS() float64    { return s.fps }

func (s *dirSource) Close() error {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}

	return nil
}

func decodePNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck // Read-only file.

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	return rgba, nil
}
