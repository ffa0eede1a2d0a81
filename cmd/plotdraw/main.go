// Command plotdraw records a demo chart once and exports it to PNG, PDF and
// SVG in parallel.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
	"github.com/gogpu/plotdraw/recording/backends/pdf"
	"github.com/gogpu/plotdraw/recording/backends/raster"
	"github.com/gogpu/plotdraw/recording/backends/svg"
)

// Export holds the command line options.
type Export struct {
	Width   float64 `short:"W" default:"640" desc:"Logical width"`
	Height  float64 `short:"H" default:"400" desc:"Logical height"`
	Scale   float64 `short:"s" default:"1" desc:"Device pixel scale for PNG output"`
	Formats string  `short:"f" default:"raster,pdf,svg" desc:"Comma separated exporters"`
	Output  string  `short:"o" default:"plotdraw" desc:"Output file prefix"`
	Title   string  `default:"plotdraw demo" desc:"PDF document title"`
	Minify  bool    `desc:"Minify SVG output"`
	Verbose bool    `short:"v" desc:"Log debug output to stderr"`
}

func main() {
	root := argp.NewCmd(&Export{}, "Record a chart and export it to raster, PDF and SVG")
	root.Parse()
	root.PrintHelp()
}

// Run exports the demo scene in every requested format.
func (cmd *Export) Run() error {
	if cmd.Verbose {
		plotdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	size := recording.Size{Width: cmd.Width, Height: cmd.Height}
	if err := size.Validate(); err != nil {
		return fmt.Errorf("size %gx%g: %w", cmd.Width, cmd.Height, err)
	}

	formats, err := cmd.exporters()
	if err != nil {
		return err
	}

	r := demoScene(size)

	// Replays only read the recording, so formats export concurrently.
	var g errgroup.Group
	for name, e := range formats {
		path := cmd.Output + extension(name)
		g.Go(func() error {
			if err := recording.WriteFile(path, e, r, size); err != nil {
				return err
			}
			fmt.Printf("%-6s %s\n", name, path)
			return nil
		})
	}
	return g.Wait()
}

// exporters builds the configured exporter for each requested format.
// Names other than the built-in three go through the registry.
func (cmd *Export) exporters() (map[string]recording.Exporter, error) {
	out := make(map[string]recording.Exporter)
	for _, name := range strings.Split(cmd.Formats, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		switch name {
		case "raster":
			out[name] = raster.New(raster.WithScale(cmd.Scale))
		case "pdf":
			out[name] = pdf.New(pdf.WithTitle(cmd.Title))
		case "svg":
			var opts []svg.Option
			if cmd.Minify {
				opts = append(opts, svg.WithMinify())
			}
			out[name] = svg.New(opts...)
		default:
			e, err := recording.NewExporter(name)
			if err != nil {
				return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(recording.Exporters(), ", "))
			}
			out[name] = e
		}
	}
	if len(out) == 0 {
		return nil, argp.ShowUsage
	}
	return out, nil
}

// extension returns the output file extension for an exporter name.
func extension(name string) string {
	switch name {
	case "raster":
		return ".png"
	default:
		return "." + name
	}
}
