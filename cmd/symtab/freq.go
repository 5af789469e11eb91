package main

import (
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/cobra"

	"github.com/treeshape/go-symtab/Freq"
)

var (
	metricWordCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symtab_word_count",
		Help: "Total qualifying words processed.",
	})
	metricDistinctWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "symtab_distinct_words",
		Help: "Distinct words in the last counted file.",
	})
)

func freqCommand() *cobra.Command {
	var minLen int
	cmd := &cobra.Command{
		Use:   "freq [file]",
		Short: "count word frequencies in a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := Freq.CountFile(args[0], minLen)
			if err != nil {
				return err
			}
			metricWordCount.Add(float64(c.Words))
			metricDistinctWords.Set(float64(c.Distinct))
			log.Info().
				Str("file", args[0]).
				Str("words", humanize.Comma(int64(c.Words))).
				Str("distinct", humanize.Comma(int64(c.Distinct))).
				Str("max", c.Max).
				Uint32("frequency", c.Frequency).
				Msg("counted")
			return nil
		},
	}
	cmd.Flags().IntVar(&minLen, "min-length", 1, "Words shorter than this many bytes are skipped.")
	return cmd
}
