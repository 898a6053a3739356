package main

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/source"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <video_file|frame_directory>",
		Short: "Preview a single clip in a loop",
		Long: `preview plays one clip in an alt-screen loop without the player state
machine, for checking how a clip rasterizes before wiring it into the
configuration. Press q, esc, or ctrl+c to exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPreview(args[0])
		},
	}

	return cmd
}

func runPreview(path string) error {
	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	var frames []*image.RGBA

	for {
		frame, ok := src.Read()
		if !ok {
			break
		}

		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return source.ErrNoFrames
	}

	p := tea.NewProgram(newPreviewModel(frames, src.FPS()))

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("running preview: %w", err)
	}

	return nil
}

// tickMsg signals that it is time to advance to the next frame.
type tickMsg struct{}

// previewModel is the bubbletea model for the clip preview loop.
type previewModel struct {
	frames []*image.RGBA
	rast   *ascii.Rasterizer
	delay  time.Duration
	cols   int
	rows   int
	index  int
}

func newPreviewModel(frames []*image.RGBA, fps float64) *previewModel {
	if fps <= 0 {
		fps = source.FallbackFPS
	}

	return &previewModel{
		frames: frames,
		rast:   ascii.NewRasterizer(nil),
		delay:  time.Duration(float64(time.Second) / fps),
	}
}

func (m *previewModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Init returns the first tick command to start playback.
func (m *previewModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles tick, resize, and quit messages.
func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height

	case tickMsg:
		m.index = (m.index + 1) % len(m.frames)

		return m, m.tick()
	}

	return m, nil
}

// View rasterizes the current frame at the current terminal size.
func (m *previewModel) View() tea.View {
	var body string

	if m.cols > 0 && m.rows > 0 {
		resized := ascii.Resize(m.frames[m.index], m.rows)
		body = strings.Join(m.rast.Lines(resized, m.cols), "\n")
	}

	v := tea.NewView(body)
	v.AltScreen = true

	return v
}
