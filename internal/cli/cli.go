// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package cli implements the algebra command line tool.
//
// Global settings are read from flags, an optional YAML configuration file (--config) and
// ALGEBRA_* environment variables, in this order of precedence. Nested keys use underscores in
// environment variables, e.g. ALGEBRA_RANDOM_SEED for random.seed.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"znkr.io/algebra/internal/random"
)

// Config is the configuration shared by all commands.
type Config struct {
	Reference     string       `mapstructure:"reference"`
	ReferenceFile string       `mapstructure:"reference-file"`
	Offset        int          `mapstructure:"offset"`
	MaxDistance   int          `mapstructure:"max-distance"`
	Verbose       bool         `mapstructure:"verbose"`
	LogJSON       bool         `mapstructure:"log-json"`
	Random        RandomConfig `mapstructure:"random"`
	Batch         BatchConfig  `mapstructure:"batch"`
}

// RandomConfig controls the generation of random sequences and variants.
type RandomConfig struct {
	// Length bounds of random sequences. A minimum of 0 uses the maximum.
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`

	// Probability per reference symbol to start a random variant, 0 uses 1/len(reference).
	P float64 `mapstructure:"p"`

	// Seed for the random number generator, 0 picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// BatchConfig configures the batch command.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

type app struct {
	v         *viper.Viper
	cfg       Config
	rng       *rand.Rand
	reference string
}

// New returns the root command. Results are written to stdout, logs to stderr.
func New(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "algebra",
		Short: "A boolean algebra for genetic variants",
		Long: `Compare, extract and apply genetic variants.

Without a reference, a random reference sequence is generated and printed first. The same holds
for observed sequences and variants of individual commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("reference", "", "a reference sequence as string")
	flags.String("reference-file", "", "a reference sequence from a FASTA file")
	flags.Int("offset", 10, "initial number of reference symbols around an allele when searching for its supremal variant")
	flags.Int("max-distance", 0, "maximum edit distance between sequences, 0 for no limit")
	flags.BoolP("verbose", "v", false, "log debug output")
	flags.Bool("log-json", false, "log in JSON format")
	flags.Int("random-sequence-min", 0, "minimum length for random sequences (default: maximum)")
	flags.Int("random-sequence-max", 1000, "maximum length for random sequences")
	flags.Float64("random-variant-p", 0, "chance per symbol of a random variant (default: 1/len(reference))")
	flags.Uint64("seed", 0, "seed for random sequences and variants (default: random)")
	root.MarkFlagsMutuallyExclusive("reference", "reference-file")

	a.bind(flags, map[string]string{
		"reference":           "reference",
		"reference-file":      "reference-file",
		"offset":              "offset",
		"max-distance":        "max-distance",
		"verbose":             "verbose",
		"log-json":            "log-json",
		"random-sequence-min": "random.min",
		"random-sequence-max": "random.max",
		"random-variant-p":    "random.p",
		"seed":                "random.seed",
	})
	a.v.SetEnvPrefix("ALGEBRA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.compareCommand(),
		a.extractCommand(),
		a.patchCommand(),
		a.sliceCommand(),
		a.batchCommand(),
	)
	return root
}

// bind binds flags to configuration keys.
func (a *app) bind(flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %q: %v", name, err))
		}
	}
}

// init loads the configuration, sets up logging and resolves the reference sequence.
func (a *app) init(cmd *cobra.Command, stderr io.Writer) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if a.cfg.Verbose {
		opts.Level = slog.LevelDebug
	}
	ctx := cmd.Context()
	if a.cfg.LogJSON {
		ctx = ctxlog.NewJSONLogger(ctx, stderr, opts)
	} else {
		ctx = ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(stderr, opts)))
	}
	ctx = ctxlog.WithAttributes(ctx, "command", cmd.Name())
	cmd.SetContext(ctx)

	seed := a.cfg.Random.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	a.rng = random.New(seed, seed)
	if a.cfg.Random.Min <= 0 {
		a.cfg.Random.Min = a.cfg.Random.Max
	}
	if a.cfg.Random.Min > a.cfg.Random.Max {
		return fmt.Errorf("invalid random sequence length range [%d, %d]", a.cfg.Random.Min, a.cfg.Random.Max)
	}
	ctxlog.Logger(ctx).Debug("configured", "seed", seed, "config", a.v.ConfigFileUsed())

	switch {
	case a.cfg.ReferenceFile != "":
		a.reference, err = readFASTA(a.cfg.ReferenceFile)
		if err != nil {
			return err
		}
	case a.v.IsSet("reference"):
		a.reference = a.cfg.Reference
	default:
		a.reference = a.randomSequence()
		fmt.Fprintln(cmd.OutOrStdout(), a.reference)
	}
	ctxlog.Logger(ctx).Debug("reference", "length", len(a.reference))
	return nil
}

func (a *app) randomSequence() string {
	return random.Sequence(a.rng, a.cfg.Random.Min, a.cfg.Random.Max)
}
