package cmd

import (
	"io"
	"log"
	"os"

	"github.com/eolymp/go-htex"
	"github.com/eolymp/go-htex/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	outputDir string
	packages  string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "htex <input.htex>",
	Short: "Converts HTex documents to LaTeX",
	Long: `htex converts documents written in HTex, a small markup with ASCII math
such as sum(i=1, n, i) and frac(a, b), into compilable LaTeX.

The output file has the base name of the input with extension replaced
and is written next to the input or into the configured output directory.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("missing input file")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		_, err = convert(cfg, args[0], newLogger(cfg))
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./htex.toml, $HTEX_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&packages, "packages", "", "preamble packages, for example: inputenc=utf8, amsmath")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
}

// loadConfig reads configuration file and applies command line flags on top of it
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}

	if err != nil {
		return nil, errors.Wrap(err, "could not load config")
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if packages != "" {
		cfg.Document.Packages = nil
		for _, pkg := range htex.ParsePackages(packages) {
			cfg.Document.Packages = append(cfg.Document.Packages, config.PackageConfig{Name: pkg.Name, Options: pkg.Options})
		}
	}

	if verbose {
		cfg.Log.Verbose = true
	}

	return cfg, nil
}

// newLogger returns logger printing progress to stderr, it's silent unless verbose output is enabled
func newLogger(cfg *config.Config) *log.Logger {
	if !cfg.Log.Verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(os.Stderr, "htex: ", log.Ltime)
}
