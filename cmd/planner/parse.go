package main

import (
	"strings"

	"github.com/spf13/cobra"

	"task-planner/internal/quickadd"
	"task-planner/internal/task"
	"task-planner/internal/task/repository/memory"
	"task-planner/internal/task/usecase"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Parse quick-add text into a task",
	Long: `Parse quick-add text into a task.

Recognizes priority keywords ("urgent", "low priority"), list references
("in Work", "#errands"), and date or time phrases ("tomorrow", "next
friday", "at 3 pm"). Whatever is left over becomes the task name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var parseEstimate int

func init() {
	parseCmd.Flags().IntVar(&parseEstimate, "estimate", 0, "estimated duration in minutes")
	rootCmd.AddCommand(parseCmd)
}

func newTaskUseCase() task.UseCase {
	return usecase.New(
		logger,
		memory.New(),
		quickadd.NewCachedParser(cfg.Parser.CacheSize, cfg.Parser.CacheTTL),
		nowLocal,
	)
}

func runParse(cmd *cobra.Command, args []string) error {
	uc := newTaskUseCase()
	out, err := uc.Create(cmd.Context(), task.CreateInput{
		RawText:  strings.Join(args, " "),
		Estimate: parseEstimate,
	})
	if err != nil {
		return err
	}
	return printJSON(out.Task)
}
