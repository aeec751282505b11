package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forexschool/riskmaster/academy"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Browse the academy curriculum",
	RunE:  runLessons,
}

var lessonsStage string

func init() {
	rootCmd.AddCommand(lessonsCmd)

	lessonsCmd.Flags().StringVar(&lessonsStage, "stage", "", `filter by stage, e.g. "Fundamentals"`)
}

func runLessons(cmd *cobra.Command, args []string) error {
	lessons := academy.Lessons
	if lessonsStage != "" {
		lessons = academy.LessonsForStage(academy.Stage(lessonsStage))
		if len(lessons) == 0 {
			return fmt.Errorf("no lessons for stage %q", lessonsStage)
		}
	}

	for _, l := range lessons {
		fmt.Printf("%s  [%s / %s]\n", l.ID, l.Stage, l.Category)
		fmt.Printf("  %s\n\n", l.Title)
	}
	return nil
}
