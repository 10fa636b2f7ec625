package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/neolex/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	dataRoot string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "neolex",
	Short: "Neolex - Lexical neologism frequency in early 20th-century fiction",
	Long: `Neolex estimates how often newly coined words appear in early
20th-century Science Fiction versus Romance novels.

The pipeline runs in discrete batch stages that hand off through files:

  novels     retrieve the studied novels from a local Gutenberg archive
  dict       build the period exclusion dictionaries
  annotate   annotate raw novel text via an external NLP service
  aggregate  fold annotations into per-genre unique-token counts
  classify   filter tokens against the dictionaries into candidates
  validate   review candidates interactively against Google Ngram
  report     compute the final per-genre neologism frequencies

Each stage reads its complete input from disk and writes its complete
output, so any stage can be re-run in isolation.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Neolex.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("neolex v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.neolex/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "data directory (default: ./data)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.root", rootCmd.PersistentFlags().Lookup("data-root"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.neolex")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match NEOLEX_*
	viper.SetEnvPrefix("NEOLEX")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration from defaults, the
// config file, environment variables and global flags.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if dataRoot != "" {
		cfg.Data.Root = dataRoot
	}
	cfg.Output.Verbose = verbose

	// API keys come from the environment, never from the config file
	if cfg.Annotation.Provider == "openai" {
		cfg.Annotation.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg, nil
}

// genresFromArg resolves an optional genre argument to the genres a
// stage should process. No argument means every configured genre.
func genresFromArg(args []string) ([]model.Genre, error) {
	if len(args) == 0 {
		return model.Genres, nil
	}
	g, err := model.ParseGenre(args[0])
	if err != nil {
		return nil, err
	}
	return []model.Genre{g}, nil
}
