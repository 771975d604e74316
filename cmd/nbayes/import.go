package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	classifier "github.com/samuel/go-naivebayes"
)

var (
	importDir string
	spamDir   string
	hamDir    string
)

func init() {
	importCmd.Flags().StringVarP(&importDir, "dir", "d", "email", "corpus root directory")
	importCmd.Flags().StringVar(&spamDir, "positive", "spam", "subdirectory of positive (label 1) documents")
	importCmd.Flags().StringVar(&hamDir, "negative", "ham", "subdirectory of negative (label 0) documents")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "load labeled text files into the corpus store",
	Long:  `Tokenize every *.txt file under the positive and negative subdirectories and store it with its label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		total := 0
		for _, src := range []struct {
			dir   string
			label classifier.Label
		}{
			{filepath.Join(importDir, spamDir), classifier.Positive},
			{filepath.Join(importDir, hamDir), classifier.Negative},
		} {
			n, err := importFiles(a, src.dir, src.label)
			if err != nil {
				return err
			}
			total += n
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d documents\n", total)
		return nil
	},
}

func importFiles(a *app, dir string, label classifier.Label) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return 0, errors.Wrapf(err, "list %s", dir)
	}
	sort.Strings(paths)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, errors.Wrapf(err, "read %s", path)
		}
		tokens, err := classifier.SimpleTokenizer.Tokenize(string(data))
		if err != nil {
			return 0, errors.Wrapf(err, "tokenize %s", path)
		}
		if err := a.store.AddDocument(label, path, tokens); err != nil {
			return 0, err
		}
		a.log.Debug("imported document",
			zap.String("path", path),
			zap.Stringer("label", label),
			zap.Int("tokens", len(tokens)),
		)
	}
	return len(paths), nil
}
