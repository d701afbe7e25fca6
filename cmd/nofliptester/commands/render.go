package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamil-cwintal/no-flip-tester/pkg/config"
	"github.com/kamil-cwintal/no-flip-tester/pkg/dot"
	"github.com/kamil-cwintal/no-flip-tester/pkg/generator"
)

// ErrNoOutputPath is returned when --output is not set.
var ErrNoOutputPath = errors.New("output path is required (use --output)")

// NewRenderCommand builds the "render" subcommand: generate one
// instance from the configured parameters and write its final graph,
// as DOT or SVG, to a file.
func NewRenderCommand() *cobra.Command {
	var (
		configPath string
		outputPath string
		asSVG      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a generated instance's final graph as DOT or SVG",
		RunE: func(_ *cobra.Command, _ []string) error {
			if outputPath == "" {
				return ErrNoOutputPath
			}

			return renderInstance(configPath, outputPath, asSVG)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&asSVG, "svg", false, "rasterize to SVG instead of writing raw DOT")

	return cmd
}

func renderInstance(configPath, outputPath string, asSVG bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gen := generator.New(generator.Config{
		V:       cfg.Graph.VertexCount,
		Alpha:   cfg.Graph.Alpha,
		Delta:   cfg.Sequence.Density,
		Purge:   cfg.Sequence.Purge,
		Length:  cfg.Sequence.Length,
		Seed:    cfg.Run.Seed,
		Sampler: resolveSampler(cfg.Sequence),
	})

	gen.Generate()

	source := dot.BoundedArbGraph(gen.Graph())

	payload := []byte(source)

	if asSVG {
		svg, err := dot.RenderSVG(source)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}

		payload = svg
	}

	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
