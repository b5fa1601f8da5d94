package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-planner/internal/recurrence"
)

// planner describe
var describeCmd = &cobra.Command{
	Use:   "describe <pattern-json>",
	Short: "Render a recurrence pattern as a human-readable phrase",
	Long: `Render a recurrence pattern as a human-readable phrase.

The argument is a pattern in JSON form, e.g.
'{"type":"weekly","interval":2}' renders as "Every 2 weeks".
With --reverse the argument is a phrase instead, and the matching
pattern is printed as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

var describeReverse bool

// planner next
var nextCmd = &cobra.Command{
	Use:   "next <phrase>...",
	Short: "Compute upcoming occurrences of a recurrence phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNext,
}

var (
	nextFrom  string
	nextCount int
)

func init() {
	describeCmd.Flags().BoolVar(&describeReverse, "reverse", false, "parse a phrase back into a pattern")
	rootCmd.AddCommand(describeCmd)

	nextCmd.Flags().StringVar(&nextFrom, "from", "", "start date as YYYY-MM-DD (default today)")
	nextCmd.Flags().IntVar(&nextCount, "count", 1, "number of occurrences to print")
	rootCmd.AddCommand(nextCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	if describeReverse {
		p, ok := recurrence.ParseFormatted(input)
		if !ok {
			return fmt.Errorf("unrecognized recurrence phrase %q", input)
		}
		return printJSON(p)
	}

	var p recurrence.Pattern
	if err := json.Unmarshal([]byte(input), &p); err != nil {
		return fmt.Errorf("invalid pattern JSON: %w", err)
	}
	fmt.Println(recurrence.Format(p))
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	phrase := strings.Join(args, " ")
	p, ok := recurrence.ParseFormatted(phrase)
	if !ok {
		return fmt.Errorf("unrecognized recurrence phrase %q", phrase)
	}

	from := nowLocal()
	if nextFrom != "" {
		parsed, err := time.ParseInLocation("2006-01-02", nextFrom, loc)
		if err != nil {
			return fmt.Errorf("invalid --from date: %w", err)
		}
		from = parsed
	}

	current := from
	for i := 0; i < nextCount; i++ {
		next, ok := recurrence.NextOccurrence(current, p)
		if !ok {
			return fmt.Errorf("pattern %q cannot produce a next occurrence", phrase)
		}
		fmt.Println(next.Format("Mon, 2006-01-02"))
		current = next
	}
	return nil
}
