package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"obsidian2latex"
	"obsidian2latex/internal/config"
	"obsidian2latex/internal/logger"
)

// cliFlags holds the flag values for the convert command.
type cliFlags struct {
	output      string
	figuresDir  string
	levelAdjust int
	overwrite   string
	verbose     bool
	logFile     string
	configPath  string
}

// newRootCmd builds the obsidian2latex command.
func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:     "obsidian2latex <input.md>",
		Short:   "Convert Obsidian markdown to LaTeX sections for multi-file projects",
		Version: Version,
		Args:    cobra.ExactArgs(1),
		Example: `  Basic conversion:
    obsidian2latex my_note.md -o sections/my_section.tex

  Specify figures directory:
    obsidian2latex my_note.md -o sections/my_section.tex -f custom_figures

  Adjust header levels:
    obsidian2latex my_note.md -o sections/my_section.tex -l 1

  Handle existing files:
    obsidian2latex my_note.md -o sections/my_section.tex --overwrite backup`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args[0])
		},
	}

	addConvertFlags(cmd.Flags(), flags)
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// addConvertFlags registers the convert flags on fs.
func addConvertFlags(fs *flag.FlagSet, flags *cliFlags) {
	fs.StringVarP(&flags.output, "output", "o", "", "output LaTeX section file (required)")
	fs.StringVarP(&flags.figuresDir, "figures", "f", "figures", "figures directory")
	fs.IntVarP(&flags.levelAdjust, "level-adjust", "l", 0, "adjust header levels by this amount")
	fs.StringVar(&flags.overwrite, "overwrite", "overwrite", "how to handle existing files (overwrite, backup, skip)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	fs.StringVar(&flags.logFile, "log-file", "", "log file path (empty = stderr only)")
	fs.StringVar(&flags.configPath, "config", "", "YAML config file with flag defaults")
}

// runConvert wires flags, config, and logging, then runs the conversion.
func runConvert(cmd *cobra.Command, flags *cliFlags, inputPath string) error {
	if err := applyConfigDefaults(cmd, flags); err != nil {
		return err
	}

	if err := obsidian2latex.ValidateSaveMode(flags.overwrite); err != nil {
		return err
	}

	lg, cleanup, err := buildLogger(flags)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer cleanup()

	conv := obsidian2latex.NewConverter(
		obsidian2latex.WithFiguresDir(flags.figuresDir),
		obsidian2latex.WithLevelAdjust(flags.levelAdjust),
		obsidian2latex.WithSaveMode(strings.ToLower(flags.overwrite)),
		obsidian2latex.WithLogger(lg),
	)

	if err := conv.ConvertAndSave(inputPath, flags.output); err != nil {
		lg.Error("conversion failed", "error", err)
		return err
	}

	lg.Info("conversion completed successfully", "output", flags.output)
	printIncludeHint(lg, flags.output)
	return nil
}

// applyConfigDefaults loads --config (when given) and fills in values for
// flags the user did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command, flags *cliFlags) error {
	if flags.configPath == "" {
		return nil
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("figures") {
		flags.figuresDir = cfg.FiguresDir
	}
	if !cmd.Flags().Changed("level-adjust") {
		flags.levelAdjust = cfg.LevelAdjust
	}
	if !cmd.Flags().Changed("overwrite") {
		flags.overwrite = cfg.Overwrite
	}
	if !cmd.Flags().Changed("log-file") {
		flags.logFile = cfg.LogFile
	}
	if !cmd.Flags().Changed("verbose") {
		flags.verbose = cfg.Verbose
	}
	return nil
}

// buildLogger creates the CLI logger from the verbosity and log-file flags.
func buildLogger(flags *cliFlags) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flags.verbose {
		level = log.DebugLevel
	}

	if flags.logFile != "" {
		return logger.NewWithFile(os.Stderr, flags.logFile, level)
	}
	return logger.New(os.Stderr, level), func() {}, nil
}

// printIncludeHint logs the \input directive for the generated section.
func printIncludeHint(lg *log.Logger, outputPath string) {
	includePath := outputPath
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, outputPath); err == nil && !strings.HasPrefix(rel, "..") {
			includePath = rel
		}
	}
	lg.Info("to include this section in your main LaTeX document, add", "directive", `\input{`+includePath+`}`)
}
