// vatbake is a CLI tool that bakes vertex animation sequences into
// GPU-sampleable vertex animation textures.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vatforge/vatbake/internal/config"
	"github.com/vatforge/vatbake/internal/logger"
	"github.com/vatforge/vatbake/internal/writer"
	"github.com/vatforge/vatbake/pkg/vat"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "bake":
		cmdBake(args)
	case "info":
		cmdInfo(args)
	case "uv":
		cmdUV(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vatbake - vertex animation texture baker

Usage:
  vatbake <command> [options]

Commands:
  bake <anim.vanm>   Bake position/normal textures, UVs and metadata
  info <anim.vanm>   Show sequence and chunk layout information
  uv <anim.vanm>     Print the per-vertex atlas UVs
  help               Show this help

Bake options:
  -out <dir>         Output directory (default from config)
  -chunk <width>     Atlas chunk width in texels (default 128)
  -name <name>       Base name for output files (default: input file name)
  -config <path>     Explicit config file
  -debug             Enable debug logging

Examples:
  vatbake bake flag.vanm -out ./textures
  vatbake info flag.vanm
  vatbake uv flag.vanm -chunk 64`)
}

func cmdBake(args []string) {
	fs := flag.NewFlagSet("bake", flag.ExitOnError)
	out := fs.String("out", "", "Output directory")
	chunk := fs.Int("chunk", 0, "Atlas chunk width in texels")
	name := fs.String("name", "", "Base name for output files")
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vatbake bake <anim.vanm> [options]")
		os.Exit(1)
	}
	input := fs.Arg(0)

	cfg, err := config.Load(*configPath, config.Overrides{
		ChunkWidth: *chunk,
		OutputDir:  *out,
		Debug:      *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	baseName := *name
	if baseName == "" {
		baseName = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	seq, err := vat.ParseSequenceFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := vat.Bake(seq, baseName, cfg.VAT())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files, err := writer.WriteBake(cfg.Output.Dir, result, cfg.VAT())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Baked:        %s\n", baseName)
	fmt.Printf("Vertices:     %d\n", result.VertexCount)
	fmt.Printf("Frames:       %d\n", result.FrameCount)
	fmt.Printf("Scale factor: %g\n", result.ScaleFactor)
	fmt.Printf("Files:        %d written to %s\n", len(files), cfg.Output.Dir)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	chunk := fs.Int("chunk", 128, "Atlas chunk width in texels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vatbake info <anim.vanm>")
		os.Exit(1)
	}

	seq, err := vat.ParseSequenceFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	vertexCount := seq.VertexCount()
	chunks := vertexCount / *chunk
	remainder := vertexCount % *chunk
	total := chunks
	if remainder > 0 {
		total++
	}

	fmt.Printf("Sequence:   %s\n", fs.Arg(0))
	fmt.Printf("Vertices:   %d\n", vertexCount)
	fmt.Printf("Frames:     %d\n", seq.FrameCount())
	fmt.Printf("Max offset: %g\n", vat.MaxOffset(seq))
	fmt.Printf("Chunks:     %d at width %d", total, *chunk)
	if remainder > 0 {
		fmt.Printf(" (last chunk %d texels)", remainder)
	}
	fmt.Println()
}

func cmdUV(args []string) {
	fs := flag.NewFlagSet("uv", flag.ExitOnError)
	chunk := fs.Int("chunk", 128, "Atlas chunk width in texels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vatbake uv <anim.vanm>")
		os.Exit(1)
	}

	seq, err := vat.ParseSequenceFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	uvs, err := vat.AtlasUVs(seq.VertexCount(), *chunk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, uv := range uvs {
		fmt.Printf("%d\t%g\t%g\n", i, uv.X, uv.Y)
	}
}
