package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swasthya/internal/models"
	"swasthya/internal/plans"
)

var routineLevel string

func newPlansCmd() *cobra.Command {
	plansCmd := &cobra.Command{
		Use:   "plans",
		Short: "Show meal plans, exercise routines and condition diets",
	}

	routineCmd := &cobra.Command{
		Use:   "routine <kind>",
		Short: "Show an exercise routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := plans.RoutineFor(plans.Level(routineLevel), plans.RoutineKind(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "EXERCISE\tDURATION\tKCAL\tDESCRIPTION")
			for _, e := range r.Exercises {
				fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", e.Name, e.Duration, e.Calories, e.Description)
			}
			fmt.Fprintf(out, "TOTAL\t%d min\t%d\t\n", r.TotalMinutes, r.TotalCalories)
			return nil
		},
	}
	routineCmd.Flags().StringVar(&routineLevel, "level", string(plans.LevelBeginner), "Beginner, Intermediate or Advanced")

	plansCmd.AddCommand(
		&cobra.Command{
			Use:   "meal <day>",
			Short: "Show the meal plan for a weekday",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				day, err := plans.ParseWeekday(args[0])
				if err != nil {
					return err
				}
				plan := plans.MealPlanFor(day)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "MEAL\tTIME\tNAME\tKCAL")
				for _, m := range plan.Meals {
					fmt.Fprintf(out, "%s\t%s\t%s\t%d\n", m.Meal, m.Time, m.Name, m.Calories)
				}
				fmt.Fprintf(out, "TOTAL\t\t%s\t%d\n", plan.Day, plan.TotalCalories)
				return nil
			},
		},
		routineCmd,
		&cobra.Command{
			Use:   "condition <condition>",
			Short: "Show the diet sheet for a health condition",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				diet, err := plans.ConditionPlan(models.HealthCondition(args[0]))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Condition\t%s\n", diet.Condition)
				fmt.Fprintf(out, "Recommended\t%s\n", strings.Join(diet.Recommended, ", "))
				fmt.Fprintf(out, "Avoid\t%s\n", strings.Join(diet.Avoid, ", "))
				fmt.Fprintf(out, "Tips\t%s\n", strings.Join(diet.Tips, ", "))
				return nil
			},
		},
	)
	return plansCmd
}
