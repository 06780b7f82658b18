// The maskop command applies set operations to index masks.
//
// A mask argument is a comma-separated list of indices such as
// "3,4,7", "-" for the empty mask, or "@path" to read indices
// separated by commas or white space from a file. Each resulting
// mask is printed on its own line as a comma-separated list.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger: zap.NewNop(),
	}
	cmd := &cobra.Command{
		Use:   "maskop",
		Short: "Set algebra on index masks",
		Long: `maskop computes unions, intersections, differences and complements
of index masks, and draws random train/test splits of a universe.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("loaded config",
				zap.String("path", a.configPath),
				zap.Int("universe", cfg.Universe),
				zap.Float64("ratio", cfg.Ratio),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file holding default settings")
	cmd.AddCommand(
		a.unionCmd(),
		a.intersectCmd(),
		a.differenceCmd(),
		a.complementCmd(),
		a.splitCmd(),
	)
	return cmd
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run executes the command line args, writing results to out.
func run(args []string, out io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	return cmd.Execute()
}
