package main

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/K0bin/twoless/internal/config"
	"github.com/K0bin/twoless/pkg/model"
	"github.com/K0bin/twoless/pkg/sat"
	"github.com/K0bin/twoless/pkg/triplet"
)

const usage = "Usage: twoless n k filename.cnf"

type arguments struct {
	n, k     uint64
	filename string
}

type options struct {
	configPath string
	policy     string
	noComments bool
	count      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "twoless n k filename",
		Short: "Generates a DIMACS-CNF instance for the two-less sequence problem",
		Long: `Generates a DIMACS-CNF instance that is satisfiable iff there is a sequence of k
pairwise distinct triplets of {1..n}^3 in which every triplet is two-less than all the
following ones (at least two of its coordinates are strictly smaller).

n and k must be numbers between 0 and 255, n must be at least 1.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return errors.New(usage)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments, err := parseArguments(args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), arguments, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the config file; if empty, config.json next to the executable is used when present")
	cmd.Flags().StringVar(&opts.policy, "policy", "", `Triplet index range policy: "compatible" (historical ranges) or "normalized" (every family uses [0, n³)); overrides the config`)
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "Omit the variable comments")
	cmd.Flags().BoolVar(&opts.count, "count", false, "Print the expected number of variables and clauses without writing any file")
	// glog flags (-v, -logtostderr, ...)
	cmd.Flags().AddGoFlagSet(goflag.CommandLine)

	return cmd
}

func parseArguments(args []string) (arguments, error) {
	n, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return arguments{}, errors.New("Parameter n has to be a number!")
	}

	k, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return arguments{}, errors.New("Parameter k has to be a number!")
	}

	filename := args[2]
	if filename == "" {
		return arguments{}, errors.New("Please specify a filename!")
	}

	return arguments{n: n, k: k, filename: filename}, nil
}

func loadConfig(opts options) (config.Config, error) {
	configPath := opts.configPath
	if configPath == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			log.Warningf("using default config: %v", err)
			return config.Default(), nil
		}
		configPath = defaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	log.Infof("config loaded from %v: %+v", configPath, cfg)

	if opts.policy != "" {
		cfg.RangePolicy = opts.policy
	}
	if opts.noComments {
		cfg.Comments = false
	}
	return cfg, nil
}

func run(out io.Writer, arguments arguments, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	// Validate n before touching the file system
	universe, err := triplet.NewUniverse(arguments.n)
	if err != nil {
		return err
	}
	sequence := model.NewSequence(universe, arguments.k, policy)
	log.Infof("range policy: %v", policy)

	if opts.count {
		printCounts(out, sequence.Expected())
		return nil
	}

	file, err := os.Create(arguments.filename)
	if err != nil {
		return fmt.Errorf("Failed to open file %v!", arguments.filename)
	}

	// Never leave a truncated instance behind, including when the encoder panics
	completed := false
	defer func() {
		if !completed {
			file.Close()
			os.Remove(arguments.filename)
		}
	}()

	fmt.Fprintf(out, "Generating SAT for n=%v, k=%v\n", arguments.n, arguments.k)
	stats, err := sat.WriteDIMACS(file, sequence, cfg.WriteOptions()...)
	if err != nil {
		return fmt.Errorf("an error occurred while writing %v: %w", arguments.filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("an error occurred while closing %v: %w", arguments.filename, err)
	}
	completed = true

	fmt.Fprintf(out, "Variables: %v\n", stats.Variables)
	fmt.Fprintf(out, "Clauses: %v\n", stats.Clauses)
	fmt.Fprintln(out, "Done!")
	return nil
}

func printCounts(out io.Writer, counts model.Counts) {
	fmt.Fprintf(out, "Variables: %v\n", counts.Variables)
	fmt.Fprintf(out, "Clauses: %v\n", counts.Clauses())
	fmt.Fprintf(out, "\tcoverage: %v\n", counts.Coverage)
	fmt.Fprintf(out, "\tuniqueness: %v\n", counts.Uniqueness)
	fmt.Fprintf(out, "\tordering: %v\n", counts.Ordering)
}
