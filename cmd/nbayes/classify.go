package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	classifier "github.com/samuel/go-naivebayes"
	"github.com/samuel/go-naivebayes/internal/metrics"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <text>...",
	Short: "fit on the whole corpus and label the given text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		docs, labels, err := a.corpus()
		if err != nil {
			return err
		}
		bc, err := classifier.Fit(docs, labels, a.cfg.Mode())
		if err != nil {
			return err
		}
		recorder := metrics.NewRecorder()
		bc = bc.WithObserver(recorder)

		tokens, err := classifier.SimpleTokenizer.Tokenize(strings.Join(args, " "))
		if err != nil {
			return err
		}
		label, missing, err := bc.Classify(tokens)
		if err != nil {
			return err
		}
		for _, m := range missing {
			a.log.Debug("ignored token", zap.String("token", m.Token))
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)

		if path := a.cfg.Metrics.Textfile; path != "" {
			return recorder.WriteTextfile(path)
		}
		return nil
	},
}
