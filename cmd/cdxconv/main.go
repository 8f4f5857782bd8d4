// Command cdxconv is a thin CLI wrapper over cdxlib: convert between
// CDX binary and CDXML text, and optionally normalize a drawing's
// style in the same pass. It holds no codec logic of its own - every
// decision lives in pkg/cdx, pkg/cdxml and pkg/styler.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dimelords/cdxlib/pkg/cdx"
	"github.com/dimelords/cdxlib/pkg/cdxml"
	"github.com/dimelords/cdxlib/pkg/styler"
	"github.com/dimelords/cdxlib/pkg/tree"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	inPath := flag.String("in", "", "Path to input file (.cdx or .cdxml, required)")
	outPath := flag.String("out", "", "Path to output file (extension selects the format if -to is unset)")
	to := flag.String("to", "", "Output format: cdx or cdxml (default: inferred from -out's extension)")
	style := flag.String("style", "", `Style preset to apply before writing: "ACS 1996", "Wiley", or a path to a donor .cdxml file`)
	diff := flag.Bool("diff", false, "After converting, re-parse the output and report any structural differences from the tree that was written")

	flag.Parse()

	if *inPath == "" || *outPath == "" {
		slog.Error("both -in and -out are required")
		flag.Usage()
		os.Exit(1)
	}

	root, err := readDocument(*inPath)
	if err != nil {
		slog.Error("failed to read input", "error", err, "path", *inPath)
		os.Exit(1)
	}

	if *style != "" {
		preset, err := resolvePreset(*style)
		if err != nil {
			slog.Error("failed to resolve style preset", "error", err, "style", *style)
			os.Exit(1)
		}
		root, err = styler.New(preset).Apply(root)
		if err != nil {
			slog.Error("failed to apply style", "error", err)
			os.Exit(1)
		}
		slog.Info("applied style", "preset", *style)
	}

	format := *to
	if format == "" {
		format = formatFromExt(*outPath)
	}

	if err := writeDocument(root, *outPath, format); err != nil {
		slog.Error("failed to write output", "error", err, "path", *outPath)
		os.Exit(1)
	}
	slog.Info("wrote output", "path", *outPath, "format", format)

	if *diff {
		runDiff(root, *outPath, format)
	}
}

func readDocument(path string) (*tree.Element, error) {
	data, err := os.ReadFile(path) // #nosec G304 - operator-supplied path
	if err != nil {
		return nil, err
	}
	if formatFromExt(path) == "cdx" {
		return cdx.Read(data)
	}
	return cdxml.Parse(data)
}

func writeDocument(root *tree.Element, path, format string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	var data []byte
	var err error
	switch format {
	case "cdx":
		data, err = cdx.Write(root, tree.NewIDGenerator())
	case "cdxml":
		data, err = cdxml.Format(root)
	default:
		slog.Error("unknown output format", "format", format)
		os.Exit(1)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644) // #nosec G306 - operator-supplied path
}

func formatFromExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".cdx") {
		return "cdx"
	}
	return "cdxml"
}

func resolvePreset(style string) (styler.Preset, error) {
	if style == "ACS 1996" || style == "Wiley" {
		return styler.BuiltinPreset(style)
	}
	data, err := os.ReadFile(style) // #nosec G304 - operator-supplied path
	if err != nil {
		return styler.Preset{}, err
	}
	donor, err := cdxml.Parse(data)
	if err != nil {
		return styler.Preset{}, err
	}
	return styler.PresetFromDocument(donor)
}

// runDiff re-reads the file cdxconv just wrote and reports any
// structural differences from the in-memory tree it was built from -
// a self-check that conversion didn't silently drop anything.
func runDiff(root *tree.Element, path, format string) {
	data, err := os.ReadFile(path) // #nosec G304 - operator-supplied path
	if err != nil {
		slog.Error("diff: failed to re-read output", "error", err)
		return
	}
	var reparsed *tree.Element
	switch format {
	case "cdx":
		reparsed, err = cdx.Read(data)
	case "cdxml":
		reparsed, err = cdxml.Parse(data)
	}
	if err != nil {
		slog.Error("diff: failed to re-parse output", "error", err)
		return
	}
	diffs := cdxml.Compare(root, reparsed)
	slog.Info(cdxml.FormatDifferences(diffs))
}
