package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/trivote-org/trivote/apportion"
	"github.com/trivote-org/trivote/internal/config"
	"github.com/trivote-org/trivote/internal/logging"
	"github.com/trivote-org/trivote/report"
	"github.com/trivote-org/trivote/survey"
)

// ============================================================================
// TRIVOTE CLI — Survey tallies and largest-remainder vote allocation
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	votes := flag.Int("votes", 3, "Vote total to allocate per question (>= 0)")
	metaCols := flag.Int("meta-cols", survey.DefaultMetaColumns, "Leading respondent-metadata columns to skip")
	configPath := flag.String("config", "", "Path to optional YAML config")
	logLevel := flag.String("log-level", "info", "Diagnostic level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Trivote — survey tallies and largest-remainder vote allocation

Usage:
  trivote [flags] <csv_file_path> [output_directory]

Reads a survey CSV (header row holds the question texts after the metadata
columns), tallies each question's answers, allocates the vote total across
them with the largest remainder method, and writes one figure per question
into the output directory (default "plots").

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  trivote responses.csv
  trivote responses.csv out/figures
  trivote -votes 5 -meta-cols 2 responses.csv
  trivote -config trivote.yaml responses.csv
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("trivote %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: a CSV path is required (plus at most an output directory)")
		flag.Usage()
		os.Exit(1)
	}

	// ── Configuration ─────────────────────────────────────────────────────
	// Precedence: built-in defaults < config file < explicitly set flags.
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "votes":
			cfg.Votes = *votes
		case "meta-cols":
			cfg.MetaColumns = *metaCols
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if flag.NArg() == 2 {
		cfg.OutputDir = flag.Arg(1)
	}

	logging.Init(cfg.Log.Level)

	if cfg.Votes < 0 {
		fatalf("vote total must be >= 0, got %d", cfg.Votes)
	}
	if cfg.MetaColumns < 0 {
		fatalf("meta columns must be >= 0, got %d", cfg.MetaColumns)
	}
	if cfg.OutputDir == "" {
		fatalf("output directory must not be empty")
	}

	if err := run(flag.Arg(0), cfg); err != nil {
		fatalf("%v", err)
	}
}

// run drives the pipeline: load once, then tally → allocate → render for
// each question, strictly in CSV column order. Questions nobody answered
// are reported and skipped; the run still succeeds.
func run(csvPath string, cfg *config.Config) error {
	log := logging.Log

	fmt.Printf("Processing survey data from: %s\n", csvPath)
	fmt.Printf("Results will be saved to: %s\n", cfg.OutputDir)

	table, err := survey.Load(csvPath, survey.WithMetaColumns(cfg.MetaColumns))
	if err != nil {
		return err
	}
	log.Debugf("parsed %d questions from %d respondent rows", len(table.Questions), table.Respondents)

	renderer := report.New(cfg.OutputDir,
		report.WithWidth(cfg.Chart.Width),
		report.WithColors(cfg.Chart.Colors),
	)

	for _, q := range table.Questions {
		fmt.Printf("\nAnalyzing question: %s\n", q.Text)

		tally, err := q.Tally()
		if err != nil {
			if errors.Is(err, survey.ErrNoData) {
				fmt.Println("  No valid responses for this question.")
				log.Warnf("skipping question %q: no meaningful responses", q.Text)
				continue
			}
			return err
		}

		printTally(tally)

		shares := make([]apportion.Share, 0, len(tally.Answers))
		for _, a := range tally.Answers {
			shares = append(shares, apportion.Share{Label: a.Label, Percent: a.Percent})
		}
		res, err := apportion.LargestRemainder(shares, cfg.Votes)
		if err != nil {
			return err
		}

		printAllocation(res)

		path, err := renderer.RenderQuestion(tally, res)
		if err != nil {
			return err
		}
		log.Debugf("figure written: %s", path)
	}

	fmt.Printf("\nAnalysis complete. Plots saved in the '%s' directory.\n", cfg.OutputDir)
	return nil
}

// ============================================================================
// CONSOLE SUMMARY
// ============================================================================

func printTally(t *survey.Tally) {
	fmt.Printf("  Total valid responses: %d\n", t.TotalValid)
	fmt.Printf("  'No Selection' responses: %d\n", t.NoSelection)
	fmt.Println("  Response percentages:")
	for _, a := range t.ByPercentDesc() {
		fmt.Printf("    %s: %.1f%% (%d response(s))\n", a.Label, a.Percent, a.Count)
	}
}

func printAllocation(res *apportion.Result) {
	fmt.Printf("  %d-vote allocation:\n", res.Target)
	for _, al := range res.ByVotesDesc() {
		if al.Votes > 0 {
			fmt.Printf("    %s: %d vote(s)\n", al.Label, al.Votes)
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
