package main

import (
	"fmt"
	"io"
	"os"

	"pentagram/render"
	"pentagram/validation"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the default star and writes it to w, one line per canvas row.
func run(w io.Writer) error {
	cfg := render.DefaultConfig()

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		return fmt.Errorf("bad built-in configuration: %w", err)
	}

	output, err := renderer.RenderString()
	if err != nil {
		return fmt.Errorf("failed to render star: %w", err)
	}

	validator := validation.NewOutputValidator(cfg.Width, cfg.Height, cfg.Blank, cfg.Marker)
	if errs := validator.Validate(output); len(errs) > 0 {
		return fmt.Errorf("rendered output failed validation: %w", errs[0])
	}

	_, err = fmt.Fprintln(w, output)
	return err
}
