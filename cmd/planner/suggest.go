package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-planner/internal/scheduler"
	"task-planner/internal/task"
	"task-planner/pkg/gcalendar"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>...",
	Short: "Suggest time slots for a task described in quick-add text",
	Long: `Suggest time slots for a task described in quick-add text.

Slots fall inside configured working hours, avoid calendar commitments
when Google Calendar credentials are configured, and finish before the
task's deadline when the text carries one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

var (
	suggestCount    int
	suggestEstimate int
)

func init() {
	suggestCmd.Flags().IntVar(&suggestCount, "count", 0, "number of suggestions (1-20, default 5)")
	suggestCmd.Flags().IntVar(&suggestEstimate, "estimate", 0, "estimated duration in minutes")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	uc := newTaskUseCase()
	out, err := uc.Create(ctx, task.CreateInput{
		RawText:  strings.Join(args, " "),
		Estimate: suggestEstimate,
	})
	if err != nil {
		return err
	}

	engine := scheduler.New(logger, busyProvider(ctx), scheduler.Options{
		WorkdayStartHour: cfg.Scheduler.WorkdayStartHour,
		WorkdayEndHour:   cfg.Scheduler.WorkdayEndHour,
		SlotStepMinutes:  cfg.Scheduler.SlotStepMinutes,
		LookaheadDays:    cfg.Scheduler.LookaheadDays,
	}, nowLocal)

	suggestions, err := engine.SuggestSlots(ctx, out.Task, suggestCount)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Println("No free slots found in the look-ahead window.")
		return nil
	}

	for i, s := range suggestions {
		fmt.Printf("%2d. %s - %s  [%3d] %s\n",
			i+1,
			s.StartTime.Format("Mon Jan 2 15:04"),
			s.EndTime.Format("15:04"),
			s.Score,
			s.Reason,
		)
	}
	return nil
}

// busyProvider connects Google Calendar when credentials are configured and
// falls back to an empty static provider otherwise. Calendar being
// unreachable is not fatal for suggestions.
func busyProvider(ctx context.Context) scheduler.BusyProvider {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return &scheduler.StaticBusyProvider{}
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return &scheduler.StaticBusyProvider{}
	}

	return scheduler.BusyProviderFunc(func(ctx context.Context, from, to time.Time) ([]scheduler.Interval, error) {
		periods, err := client.BusyIntervals(ctx, from, to)
		if err != nil {
			return nil, err
		}
		intervals := make([]scheduler.Interval, 0, len(periods))
		for _, p := range periods {
			intervals = append(intervals, scheduler.Interval{Start: p.Start, End: p.End})
		}
		return intervals, nil
	})
}
