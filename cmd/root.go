package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorMode string
	configErr error
	Version   = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Generate batched SQL seed scripts for the animals and plants tables",
	Long: `
seedgen writes animals.sql and plants.sql: a create table statement, three
hand-authored rows with negative ids, and a large block of generated rows
split into batched insert statements.

Running seedgen without a subcommand is the same as "seedgen generate".`,

	SilenceErrors:     true,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: applyColorMode,
	RunE:              runGenerate,
}

// Run executes the CLI and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	color.Output = stdout
	color.Error = stderr

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	return 0
}

func applyColorMode(cmd *cobra.Command, args []string) error {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = os.Getenv("NO_COLOR") != "" ||
			!(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	default:
		return fmt.Errorf("invalid --color value %q: must be always, auto, or never", colorMode)
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./seedgen.config.json)")
	flags.StringVar(&colorMode, "color", "auto", "Color output: always, auto, never")

	flags.String("out", "", "Directory for the generated .sql files (default is the current directory)")
	flags.Int("rows", 0, "Generated rows per table (default 200000)")
	flags.Int("batches", 0, "Number of insert statements the generated rows are split into (default 20)")
	flags.String("dialect", "", "SQL dialect: mysql or sqlite (default mysql)")
	flags.Bool("legacy-plants-lag", false, "Give each plants row the category and elevation of the previous id")
	flags.StringSlice("table", nil, "Tables to generate (default animals,plants)")

	bindFlag(flags, "output_dir", "out")
	bindFlag(flags, "row_count", "rows")
	bindFlag(flags, "batch_divisor", "batches")
	bindFlag(flags, "dialect", "dialect")
	bindFlag(flags, "legacy_plants_lag", "legacy-plants-lag")
	bindFlag(flags, "tables", "table")
}

func bindFlag(flags *pflag.FlagSet, key, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
	}
}

func initConfig() {
	// godotenv never overrides, so .env.local wins over .env.
	godotenv.Load(".env.local")
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("seedgen.config")
	}

	viper.SetEnvPrefix("SEEDGEN")
	viper.AutomaticEnv()

	// A missing default config file is fine; an explicit one must load.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		configErr = fmt.Errorf("failed to read config file: %w", err)
	}
}
