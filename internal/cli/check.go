package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dshills/titlelint/internal/config"
	"github.com/dshills/titlelint/internal/gitctx"
	"github.com/dshills/titlelint/internal/lint"
	"github.com/dshills/titlelint/internal/output"
	"github.com/spf13/cobra"
)

// Shared flags across the checking commands.
var (
	flagStrict    bool
	flagMaxLength int
	flagFormat    string
	flagOut       string
	flagTypes     string
	flagFile      string
)

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagStrict, "strict", true, "Enable stylistic rules (lowercase, no period, imperative mood)")
	cmd.Flags().IntVar(&flagMaxLength, "max-length", 0, "Maximum description length")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagTypes, "types", "", "Extra allowed types (comma-separated)")
}

// buildOverrides collects only the flags the user explicitly set, so config
// file and environment values are not clobbered by flag defaults.
func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	if cmd.Flags().Changed("strict") {
		m["strict"] = strconv.FormatBool(flagStrict)
	}
	if cmd.Flags().Changed("max-length") {
		m["maxLength"] = strconv.Itoa(flagMaxLength)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagTypes != "" {
		m["types"] = flagTypes
	}
	return m
}

func loadConfig(cmd *cobra.Command) (config.Config, bool) {
	cfg, err := config.Load(gitctx.RepoRoot(), buildOverrides(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return config.Config{}, false
	}
	return cfg, true
}

// titleItem is one title queued for checking plus where it came from.
type titleItem struct {
	title  string
	source string
}

// lintTitles runs the configured linter over the items, writes the report,
// and sets the exit code.
func lintTitles(mode string, items []titleItem, cfg config.Config) {
	linter, err := lint.New(lint.Options{
		Strict:               cfg.Strict,
		MaxDescriptionLength: cfg.MaxDescriptionLength,
		ExtraTypes:           cfg.Types,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	report := lint.NewReport(mode, version, lint.Options{
		Strict:               cfg.Strict,
		MaxDescriptionLength: cfg.MaxDescriptionLength,
	})
	if mode == "commit" || mode == "range" {
		if meta, err := gitctx.GetRepoMeta(); err == nil {
			report.Branch = meta.Branch
		}
	}
	for _, item := range items {
		report.Add(item.title, item.source, linter.Check(item.title))
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if !report.Valid() {
		exitCode = ExitInvalid
	}
}

var checkCmd = &cobra.Command{
	Use:   "check [title]",
	Short: "Check a single title",
	Long:  "Check a title given as an argument, read from a commit message file with --file, or read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := loadConfig(cmd)
		if !ok {
			return nil
		}

		title, source, err := resolveTitle(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		lintTitles("check", []titleItem{{title: title, source: source}}, cfg)
		return nil
	},
}

func resolveTitle(args []string) (title, source string, err error) {
	if len(args) == 1 {
		return args[0], "", nil
	}
	if flagFile != "" {
		subject, err := gitctx.ReadMessageFile(flagFile)
		if err != nil {
			return "", "", err
		}
		return subject, "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	title = gitctx.FirstLine(string(data))
	if title == "" {
		return "", "", fmt.Errorf("no title given; pass one as an argument, via --file, or on stdin")
	}
	return title, "", nil
}

func init() {
	addCheckFlags(checkCmd)
	checkCmd.Flags().StringVar(&flagFile, "file", "", "Read the title from a commit message file")
}
