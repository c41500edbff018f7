package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/glaze/internal/effects"
	"bennypowers.dev/glaze/internal/log"
	"bennypowers.dev/glaze/internal/registry"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	checkMode     string
	checkBaseline string
	checkFormat   string
)

// checkCmd parses stylesheets and reports the engine's findings
var checkCmd = &cobra.Command{
	Use:   "check [files or globs...]",
	Short: "Parse stylesheets and report diagnostics",
	Long: `Parse one or more CSS files (or stdin with "-") against an effect
mode and report diagnostics, ghost properties, clamped fields and the
accessibility analysis.

Examples:
  # Check a single stylesheet as glassmorphism
  glaze check --mode glassmorphism card.css

  # Check every stylesheet under src/, seeded from a baseline file
  glaze check --mode liquid-glass --baseline defaults.jsonc 'src/**/*.css'

  # Pipe a fragment on stdin and get JSON out
  echo 'backdrop-filter: blur(20px);' | glaze check --mode glow --format json -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkMode, "mode", "m", string(registry.ModeGlassmorphism), "effect mode to parse against")
	checkCmd.Flags().StringVarP(&checkBaseline, "baseline", "b", "", "baseline settings file (json, jsonc or yaml)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format (text, json)")
}

type fileReport struct {
	File   string          `json:"file"`
	Result *effects.Result `json:"result"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	mode, ok := registry.ParseMode(checkMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (valid: %v)", checkMode, registry.Modes())
	}

	baseline := effects.DefaultSettings(mode)
	if checkBaseline != "" {
		if err := loadBaseline(checkBaseline, baseline); err != nil {
			return fmt.Errorf("loading baseline: %w", err)
		}
	}

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	var reports []fileReport
	failed := false
	for _, path := range paths {
		source, err := readInput(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		log.Debug("parsing %s as %s", path, mode)

		result := effects.Parse(mode, source, baseline)
		reports = append(reports, fileReport{File: path, Result: result})
		for _, d := range result.Diagnostics {
			if d.Severity == effects.SeverityError {
				failed = true
			}
		}
	}

	switch checkFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	case "text":
		for _, r := range reports {
			printReport(cmd.OutOrStdout(), r)
		}
	default:
		return fmt.Errorf("unknown format %q (valid: text, json)", checkFormat)
	}

	if failed {
		return fmt.Errorf("one or more stylesheets failed to parse")
	}
	return nil
}

// expandArgs resolves glob patterns to file paths, passing literal paths and
// "-" (stdin) through unchanged.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if arg == "-" || !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			log.Warn("glob %q matched no files", arg)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	return paths, nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// loadBaseline overlays a settings file onto the mode's defaults. JSON and
// JSONC files go through the jsonc translator first; yaml files are decoded
// directly.
func loadBaseline(path string, baseline effects.Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, baseline)
	default:
		return json.Unmarshal(jsonc.ToJSON(data), baseline)
	}
}

func printReport(w io.Writer, r fileReport) {
	fmt.Fprintf(w, "%s:\n", r.File)

	if r.Result.Settings == nil {
		fmt.Fprintf(w, "  parse failed\n")
	}
	for _, d := range r.Result.Diagnostics {
		loc := ""
		if d.Line != nil && d.Column != nil {
			loc = fmt.Sprintf("%d:%d ", *d.Line+1, *d.Column+1)
		}
		fmt.Fprintf(w, "  %s[%s] %s\n", loc, d.Severity, d.Message)
	}
	for _, g := range r.Result.GhostProperties {
		fmt.Fprintf(w, "  [ghost] %s: %s (%s)\n", g.Property, g.Value, g.Reason)
	}
	if len(r.Result.ClampedFields) > 0 {
		fmt.Fprintf(w, "  clamped: %s\n", strings.Join(r.Result.ClampedFields, ", "))
	}
	if a := r.Result.Accessibility; a != nil {
		fmt.Fprintf(w, "  contrast %.2f:1 with %s text; %s\n",
			a.ContrastRatio, a.RecommendedTextColor, a.Recommendation)
	}
}
