package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	classifier "github.com/samuel/go-naivebayes"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "classify two phrases with a model fit on six sample posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs := []classifier.Document{
			{"my", "dog", "has", "flea", "problems", "help", "please"},
			{"maybe", "not", "take", "him", "to", "dog", "park", "stupid"},
			{"my", "dalmation", "is", "so", "cute", "I", "love", "him"},
			{"stop", "posting", "stupid", "worthless", "garbage"},
			{"mr", "licks", "ate", "my", "steak", "how", "to", "stop", "him"},
			{"quit", "buying", "worthless", "dog", "food", "stupid"},
		}
		labels := []classifier.Label{0, 1, 0, 1, 0, 1}

		bc, err := classifier.Fit(docs, labels, classifier.SetMode)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, entry := range []classifier.Document{
			{"love", "my", "dalmation"},
			{"stupid", "garbage"},
		} {
			label, _, err := bc.Classify(entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", strings.Join(entry, " "), label)
		}
		return nil
	},
}
