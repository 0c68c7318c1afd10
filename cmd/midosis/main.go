// Package main provides the Mi Dosis CLI entry point. It exposes the
// command-interpretation engine and the variation generator for scripting
// and offline corpus building; speech recognition, audio synthesis and
// reminder scheduling live in external collaborators.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"midosis/internal/config"
	"midosis/internal/corpus"
	"midosis/internal/interpreter"
	"midosis/internal/lexicon"
	"midosis/internal/logger"
	"midosis/internal/variations"
	"midosis/internal/version"
)

var (
	logLevel    string
	logFile     string
	testMode    bool
	lexiconPath string
	envFile     string
)

// rootCmd interprets its arguments as one sentence by default.
var rootCmd = &cobra.Command{
	Use:   "midosis",
	Short: "Mi Dosis - medication voice command interpreter",
	Long: `Mi Dosis interprets free-form Spanish medication instructions into
structured, confidence-scored command records for a reminder scheduler.`,
	Args: cobra.ArbitraryArgs,
	Run:  runInterpret,
}

var interpretCmd = &cobra.Command{
	Use:   "interpret <sentence>",
	Short: "Interpret a sentence into a structured command record",
	Long: `Interpret a medication instruction and print the resulting record as
JSON. The record always includes the original text and a confidence score;
an unrecognizable sentence yields an unknown action with zero confidence.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runInterpret,
}

var respondCmd = &cobra.Command{
	Use:   "respond <sentence>",
	Short: "Print the spoken confirmation for a sentence",
	Long:  `Interpret a sentence and print the plain-text confirmation a TTS collaborator would speak.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   runRespond,
}

var variationsCmd = &cobra.Command{
	Use:   "variations <sentence>",
	Short: "Generate paraphrases of a canonical command sentence",
	Long: `Decompose a canonical command sentence into its slots and print up to
--cap distinct paraphrases, one per line.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runVariations,
}

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Build a training corpus from seed sentences",
	Long: `Read seed sentences from --seeds (one per line), expand each into
paraphrases and write the tagged corpus as YAML to --out.`,
	Run: runCorpus,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

var (
	variationsCap int
	seedsPath     string
	corpusOut     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Load lexicon tables from a YAML file instead of the embedded defaults")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read settings from an env file [default: .midosis.env]")

	for _, flag := range []string{"log-level", "log-file", "test-mode", "lexicon"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	variationsCmd.Flags().IntVar(&variationsCap, "cap", 50, "Maximum number of paraphrases to generate")
	corpusCmd.Flags().IntVar(&variationsCap, "cap", 50, "Maximum paraphrases per seed")
	corpusCmd.Flags().StringVar(&seedsPath, "seeds", "", "Seed sentence file, one sentence per line")
	corpusCmd.Flags().StringVar(&corpusOut, "out", "corpus.yaml", "Output corpus file")
	if err := corpusCmd.MarkFlagRequired("seeds"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking seeds flag required: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(respondCmd)
	rootCmd.AddCommand(variationsCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	if logFile == "" {
		logFile = cfg.LogFile
	}
	if lexiconPath == "" {
		lexiconPath = cfg.LexiconPath
	}

	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func loadLexicon() *lexicon.Lexicon {
	var (
		lex *lexicon.Lexicon
		err error
	)
	if lexiconPath != "" {
		lex, err = lexicon.LoadFile(lexiconPath)
	} else {
		lex, err = lexicon.Default()
	}
	if err != nil {
		logger.Fatal("Failed to load lexicon", "error", err)
	}
	return lex
}

func runInterpret(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: midosis interpret <sentence>")
		os.Exit(1)
	}
	sentence := strings.Join(args, " ")

	in := interpreter.New(loadLexicon())
	record := in.Interpret(sentence)

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode record", "error", err)
	}
	fmt.Println(string(out))
}

func runRespond(_ *cobra.Command, args []string) {
	sentence := strings.Join(args, " ")
	in := interpreter.New(loadLexicon())
	fmt.Println(interpreter.ConfirmationText(in.Interpret(sentence)))
}

func runVariations(_ *cobra.Command, args []string) {
	sentence := strings.Join(args, " ")
	gen := variations.New(loadLexicon())
	for _, v := range gen.Generate(sentence, variationsCap) {
		fmt.Println(v)
	}
}

func runCorpus(_ *cobra.Command, _ []string) {
	seeds, err := corpus.ReadSeeds(seedsPath)
	if err != nil {
		logger.Fatal("Failed to read seeds", "error", err)
	}

	builder := corpus.NewBuilder(loadLexicon())
	c := builder.Build(seeds, variationsCap)
	if err := builder.Write(c, corpusOut); err != nil {
		logger.Fatal("Failed to write corpus", "error", err)
	}
	logger.Info("Corpus written", "id", c.ID, "seeds", len(c.Entries), "path", corpusOut)
}
