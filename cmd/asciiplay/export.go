package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/sink"
	"go.jacobcolvin.com/asciiplay/source"
)

// exportSink is a capture sink with an optional flush step.
type exportSink interface {
	sink.Sink
	io.Closer
}

// nopCloserSink adapts a flushless sink to exportSink.
type nopCloserSink struct{ sink.Sink }

func (nopCloserSink) Close() error { return nil }

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
		cols   int
		rows   int
	)

	cmd := &cobra.Command{
		Use:   "export <video_file|frame_directory>",
		Short: "Render a clip to a replay artifact",
		Long: `export renders every frame of a clip through the rasterizer and writes a
replay artifact: a self-contained shell script that plays the clip back in
any terminal, or a JSON document with one array of row strings per frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], format, output, cols, rows)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "sh", "output format, one of: [sh json]")
	cmd.Flags().StringVarP(&output, "output", "o", "-", `output file ("-" for stdout)`)
	cmd.Flags().IntVar(&cols, "cols", 80, "capture width in columns")
	cmd.Flags().IntVar(&rows, "rows", 25, "capture height in rows")

	return cmd
}

func runExport(path, format, output string, cols, rows int) error {
	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, closeOut, err := openOutput(output, format)
	if err != nil {
		return err
	}
	defer closeOut()

	rast := ascii.NewRasterizer(nil)
	dims := sink.Dimensions{Cols: cols, Rows: rows}

	var capture exportSink

	switch format {
	case "sh":
		capture = nopCloserSink{sink.NewScript(w, rast, dims)}
	case "json":
		capture = sink.NewJSON(w, rast, dims)
	default:
		return fmt.Errorf("unknown export format %q, one of: [sh json]", format)
	}

	for {
		frame, ok := src.Read()
		if !ok {
			break
		}

		err = capture.WriteFrame(ascii.Resize(frame, dims.Rows), dims)
		if err != nil {
			return err
		}
	}

	err = capture.Close()
	if err != nil {
		return err
	}

	return nil
}

// openOutput returns the export writer. Script exports to a file are made
// executable so the artifact replays directly.
func openOutput(output, format string) (io.Writer, func(), error) {
	if output == "" || output == "-" {
		return os.Stdout, func() {}, nil
	}

	perm := os.FileMode(0o644)
	if format == "sh" {
		perm = 0o755
	}

	//nolint:gosec // Output path from CLI flag is expected.
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return nil, nil, fmt.Errorf("creating export output: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
