// Command cli is an interactive Bubbletea front end over cdxlib:
// it prompts for an input path, a direction or style preset, and an
// output path, then delegates the actual conversion to pkg/cdx,
// pkg/cdxml and pkg/styler - exactly the codec/normalizer pair
// cmd/cdxconv wraps with flags instead of prompts.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dimelords/cdxlib/cmd/cli/tui"
	"github.com/dimelords/cdxlib/pkg/cdx"
	"github.com/dimelords/cdxlib/pkg/cdxml"
	"github.com/dimelords/cdxlib/pkg/styler"
	"github.com/dimelords/cdxlib/pkg/tree"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	for {
		menu := tui.NewMainMenu()
		p := tea.NewProgram(menu)
		m, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch m.(*tui.MainMenu).GetSelected() {
		case 0:
			runConvert(tui.CDXToCDXML)
		case 1:
			runConvert(tui.CDXMLToCDX)
		case 2:
			runStyle()
		case 3:
			fmt.Println("\nGoodbye!")
			os.Exit(0)
		default:
			fmt.Println()
			os.Exit(0)
		}

		fmt.Println("\n" + strings.Repeat("─", 50) + "\n")
	}
}

func promptPath(prompt, placeholder string) (string, bool) {
	input := tui.NewTextInput(prompt, placeholder)
	p := tea.NewProgram(input)
	m, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return "", false
	}
	result := m.(*tui.TextInput)
	if result.WasCancelled() || result.GetValue() == "" {
		return "", false
	}
	return result.GetValue(), true
}

func runConvert(dir tui.Direction) {
	inPath, ok := promptPath("Input file path:", "path/to/input"+reverseExt(dir))
	if !ok {
		return
	}
	outPath, ok := promptPath("Output file path:", "path/to/output"+dir.DefaultExtension())
	if !ok {
		return
	}

	var root *tree.Element
	data, err := os.ReadFile(inPath) // #nosec G304 - operator-supplied path from interactive prompt
	if err != nil {
		fmt.Printf("✗ Failed to read %s: %v\n", inPath, err)
		return
	}

	if dir == tui.CDXToCDXML {
		root, err = cdx.Read(data)
	} else {
		root, err = cdxml.Parse(data)
	}
	if err != nil {
		fmt.Printf("✗ Failed to parse %s: %v\n", inPath, err)
		return
	}

	var out []byte
	if dir == tui.CDXToCDXML {
		out, err = cdxml.Format(root)
	} else {
		out, err = cdx.Write(root, tree.NewIDGenerator())
	}
	if err != nil {
		fmt.Printf("✗ Failed to write output: %v\n", err)
		return
	}

	if err := writeFile(outPath, out); err != nil {
		fmt.Printf("✗ Failed to save %s: %v\n", outPath, err)
		return
	}
	fmt.Printf("\n✓ Wrote %s\n", outPath)
}

func runStyle() {
	action := tui.NewActionMenu("Choose a style preset", tui.PresetOptions)
	p := tea.NewProgram(action)
	m, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	choice := m.(*tui.ActionMenu).GetSelected()
	if choice < 0 {
		return
	}

	var preset styler.Preset
	switch choice {
	case 0:
		preset, err = styler.BuiltinPreset("ACS 1996")
	case 1:
		preset, err = styler.BuiltinPreset("Wiley")
	case 2:
		donorPath, ok := promptPath("Donor CDXML file path:", "path/to/style-source.cdxml")
		if !ok {
			return
		}
		data, readErr := os.ReadFile(donorPath) // #nosec G304 - operator-supplied path from interactive prompt
		if readErr != nil {
			fmt.Printf("✗ Failed to read %s: %v\n", donorPath, readErr)
			return
		}
		donor, parseErr := cdxml.Parse(data)
		if parseErr != nil {
			fmt.Printf("✗ Failed to parse %s: %v\n", donorPath, parseErr)
			return
		}
		preset, err = styler.PresetFromDocument(donor)
	}
	if err != nil {
		fmt.Printf("✗ Failed to resolve preset: %v\n", err)
		return
	}

	inPath, ok := promptPath("CDXML file to restyle:", "path/to/input.cdxml")
	if !ok {
		return
	}
	outPath, ok := promptPath("Output file path:", "path/to/output.cdxml")
	if !ok {
		return
	}

	data, err := os.ReadFile(inPath) // #nosec G304 - operator-supplied path from interactive prompt
	if err != nil {
		fmt.Printf("✗ Failed to read %s: %v\n", inPath, err)
		return
	}
	root, err := cdxml.Parse(data)
	if err != nil {
		fmt.Printf("✗ Failed to parse %s: %v\n", inPath, err)
		return
	}
	styled, err := styler.New(preset).Apply(root)
	if err != nil {
		fmt.Printf("✗ Failed to apply style: %v\n", err)
		return
	}
	out, err := cdxml.Format(styled)
	if err != nil {
		fmt.Printf("✗ Failed to format output: %v\n", err)
		return
	}
	if err := writeFile(outPath, out); err != nil {
		fmt.Printf("✗ Failed to save %s: %v\n", outPath, err)
		return
	}
	fmt.Printf("\n✓ Wrote %s\n", outPath)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644) // #nosec G306 - operator-supplied path from interactive prompt
}

func reverseExt(dir tui.Direction) string {
	if dir == tui.CDXToCDXML {
		return ".cdx"
	}
	return ".cdxml"
}
