package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crillab/gophertableau/tableau"
)

var (
	premisesPath string
	scriptPath   string
	debug        bool
	noColor      bool
	unicode      bool

	rootCmd = &cobra.Command{
		Use:   "gophertableau",
		Short: "An interactive builder for propositional truth trees",
		Long: `gophertableau is an interactive builder for propositional truth trees.

Premises are entered in prefix notation, for instance (if P (and Q R)).
The tree is then grown step by step: expanding a statement appends its
decomposition to every open branch below it, and a branch is closed by
naming a statement and its negation sitting on it. A tree whose branches
all close proves the premises inconsistent; a saturated open branch
describes a way to satisfy them.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
)

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.Flags().StringVarP(&premisesPath, "premises", "f", "", "load premises from a file (.yaml, .yml or plain text) instead of prompting")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "read shell commands from a file instead of stdin")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log every operation to stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&unicode, "unicode", false, "render connectives with logical symbols")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if noColor || (!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		color.NoColor = true
	}

	in := cmd.InOrStdin()
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("could not open %q: %v", scriptPath, err)
		}
		defer f.Close()
		in = f
		log.Debug("reading commands", "path", scriptPath)
	}

	sh := newShell(in, cmd.OutOrStdout(), log)
	sh.unicode = unicode
	if premisesPath != "" {
		pb, err := loadProblem(premisesPath)
		if err != nil {
			return err
		}
		tree, err := pb.Tableau()
		if err != nil {
			return err
		}
		log.Debug("loaded problem", "path", premisesPath, "premises", len(pb.Premises))
		sh.tree = tree
		sh.name = pb.Name
	}
	return sh.run()
}

func loadProblem(path string) (*tableau.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return tableau.ParseYAML(f)
	}
	return tableau.ParseText(f)
}
