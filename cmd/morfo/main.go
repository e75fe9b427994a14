package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/morfo-lang/morfo"
	"github.com/morfo-lang/morfo/adapters/cardstore"
	"github.com/morfo-lang/morfo/adapters/literallexicon"
	"github.com/morfo-lang/morfo/adapters/staticlexicon"
	"github.com/morfo-lang/morfo/service"
)

var (
	cardDir     string
	lexiconFile string
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "morfo",
	Short: "morfo renders template sentences across languages from declarative cards",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newService(cmd *cobra.Command) (*service.Service, error) {
	store, err := cardstore.Open(cmd.Context(), cardDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open card directory: %w", err)
	}
	logger.Debug("cards loaded", zap.Int("count", store.CardCount()))

	lexicons := morfo.CombinedLexicon{}
	if lexiconFile != "" {
		static, err := staticlexicon.Open(lexiconFile, true)
		if err != nil {
			return nil, fmt.Errorf("failed to open lexicon file: %w", err)
		}
		lexicons = append(lexicons, static)
	}
	lexicons = append(lexicons, literallexicon.New())

	return &service.Service{
		Lexicon: lexicons,
		Cards:   store,
		Logger:  logger,
	}, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cardDir, "cards", "./cards", "Directory with language card files")
	rootCmd.PersistentFlags().StringVar(&lexiconFile, "lexicon", "", "Optional JSON lexicon file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd, bioCmd, languagesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
