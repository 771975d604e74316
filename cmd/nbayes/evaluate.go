package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	classifier "github.com/samuel/go-naivebayes"
	"github.com/samuel/go-naivebayes/internal/metrics"
)

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "measure the error rate on random held-out splits",
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

		seed := a.cfg.Evaluation.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		recorder := metrics.NewRecorder()
		evaluator := classifier.NewEvaluator(
			rand.New(rand.NewSource(seed)),
			classifier.WithMode(a.cfg.Mode()),
			classifier.WithLogger(a.log),
			classifier.WithObserver(recorder),
		)

		testSize := a.cfg.TestSizeFor(len(docs))
		a.log.Info("evaluating",
			zap.Int("documents", len(docs)),
			zap.Int("test_size", testSize),
			zap.Int("rounds", a.cfg.Evaluation.Rounds),
			zap.Int64("seed", seed),
		)
		result, err := evaluator.EvaluateRounds(docs, labels, testSize, a.cfg.Evaluation.Rounds)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, r := range result.Rounds {
			for _, m := range r.Misclassified {
				fmt.Fprintf(out, "round %d: misclassified #%d (want %s, got %s): %s\n",
					i+1, m.Index, m.Want, m.Got, strings.Join(m.Document, " "))
			}
			fmt.Fprintf(out, "round %d: error rate %.2f%% (%d/%d)\n", i+1, r.ErrorRate*100, r.Errors, r.TestSize)
		}
		fmt.Fprintf(out, "mean error rate: %.2f%%\n", result.MeanErrorRate*100)

		if path := a.cfg.Metrics.Textfile; path != "" {
			if err := recorder.WriteTextfile(path); err != nil {
				return errors.Wrapf(err, "write metrics to %s", path)
			}
		}
		return nil
	},
}
