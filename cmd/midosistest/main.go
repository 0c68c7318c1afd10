// Package main provides midosistest, the golden-file regression runner for
// the interpretation engine. Each test case is a <name>.txt file holding one
// sentence; the expected JSON record lives next to it in <name>.expected.
// "record" refreshes the golden files, "run" compares against them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"midosis/internal/interpreter"
	"midosis/internal/lexicon"
	"midosis/internal/logger"
)

var (
	testDir     string
	lexiconPath string
)

var rootCmd = &cobra.Command{
	Use:   "midosistest",
	Short: "Golden-file regression runner for the Mi Dosis interpreter",
}

var runCmd = &cobra.Command{
	Use:   "run [name...]",
	Short: "Run golden tests (all by default)",
	RunE: func(_ *cobra.Command, args []string) error {
		return runTests(args)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record [name...]",
	Short: "Record or refresh golden files",
	RunE: func(_ *cobra.Command, args []string) error {
		return recordTests(args)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&testDir, "tests", "testdata/golden", "Directory with .txt cases and .expected goldens")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Lexicon YAML file (embedded defaults when empty)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(recordCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newInterpreter() (*interpreter.Interpreter, error) {
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
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return interpreter.New(lex), nil
}

// caseNames lists the requested cases, or every .txt case in the test dir.
func caseNames(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	matches, err := filepath.Glob(filepath.Join(testDir, "*.txt"))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

// actualOutput interprets the case sentence and renders the canonical JSON
// form used in golden files.
func actualOutput(in *interpreter.Interpreter, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(testDir, name+".txt"))
	if err != nil {
		return "", fmt.Errorf("read case %s: %w", name, err)
	}
	record := in.Interpret(strings.TrimSpace(string(data)))
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode record for %s: %w", name, err)
	}
	return string(out) + "\n", nil
}

func runTests(args []string) error {
	in, err := newInterpreter()
	if err != nil {
		return err
	}
	names, err := caseNames(args)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no test cases found in %s", testDir)
	}

	failed := 0
	for _, name := range names {
		actual, err := actualOutput(in, name)
		if err != nil {
			return err
		}
		expected, err := os.ReadFile(filepath.Join(testDir, name+".expected"))
		if err != nil {
			return fmt.Errorf("read golden for %s (run 'record' first?): %w", name, err)
		}
		if actual == string(expected) {
			fmt.Printf("PASS %s\n", name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", name)
		showDiff(string(expected), actual)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d golden tests failed", failed, len(names))
	}
	logger.Info("All golden tests passed", "count", len(names))
	return nil
}

func recordTests(args []string) error {
	in, err := newInterpreter()
	if err != nil {
		return err
	}
	names, err := caseNames(args)
	if err != nil {
		return err
	}
	for _, name := range names {
		actual, err := actualOutput(in, name)
		if err != nil {
			return err
		}
		golden := filepath.Join(testDir, name+".expected")
		if err := os.WriteFile(golden, []byte(actual), 0644); err != nil {
			return fmt.Errorf("write golden for %s: %w", name, err)
		}
		fmt.Printf("RECORDED %s\n", name)
	}
	return nil
}

// showDiff prints a readable expected/actual diff for a failing case.
func showDiff(expected, actual string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	dmp.DiffCleanupSemantic(diffs)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
