package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ntBre/image/pixel"
	"github.com/ntBre/image/scene"
)

func main() {
	outputFlag := flag.String("o", "", "Output PNG file (default: output from the scene)")
	debugFlag := flag.Bool("debug", os.Getenv("IMAGEDRAW_DEBUG") != "", "Enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o <output.png>] [-debug] <scene.toml>\n", os.Args[0])
		os.Exit(1)
	}

	if *debugFlag {
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := scene.LoadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	output := s.Path(s.Output)
	if *outputFlag != "" {
		output = *outputFlag
	}
	if output == "" {
		fatal(fmt.Errorf("no output file, set output in %s or use -o", flag.Arg(0)))
	}

	b, err := s.Render()
	if err != nil {
		fatal(err)
	}
	if err = b.Save(output); err != nil {
		fatal(err)
	}

	w, h := b.Shape()
	fmt.Printf("wrote %dx%d image to %s\n", w, h, output)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
