package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"swasthya/internal/models"
)

func newFoodsCmd() *cobra.Command {
	foodsCmd := &cobra.Command{
		Use:   "foods",
		Short: "Browse the food catalog",
	}

	foodsCmd.AddCommand(
		&cobra.Command{
			Use:   "search [query]",
			Short: "Search names, categories and ingredients",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := loadCatalog()
				if err != nil {
					return err
				}
				query := ""
				if len(args) == 1 {
					query = args[0]
				}
				printFoods(cmd.OutOrStdout(), cat.Search(query))
				return nil
			},
		},
		&cobra.Command{
			Use:   "category <name>",
			Short: "List foods in a category (exact match)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := loadCatalog()
				if err != nil {
					return err
				}
				printFoods(cmd.OutOrStdout(), cat.ByCategory(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "flag <diabetic_friendly|heart_healthy|low_sodium>",
			Short: "List foods carrying a dietary flag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				flag, ok := models.ParseFlag(args[0])
				if !ok {
					return fmt.Errorf("unknown flag %q", args[0])
				}
				cat, err := loadCatalog()
				if err != nil {
					return err
				}
				printFoods(cmd.OutOrStdout(), cat.FilterByFlag(flag))
				return nil
			},
		},
		&cobra.Command{
			Use:   "recommend [condition...]",
			Short: "Group suitable foods by health condition",
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := loadCatalog()
				if err != nil {
					return err
				}
				conditions := make([]models.HealthCondition, 0, len(args))
				for _, a := range args {
					conditions = append(conditions, models.HealthCondition(a))
				}
				groups := cat.RecommendForConditions(conditions)
				labels := make([]string, 0, len(groups))
				for label := range groups {
					labels = append(labels, label)
				}
				sort.Strings(labels)

				fmt.Fprintln(cmd.OutOrStdout(), "GROUP\tNAME\tKCAL")
				for _, label := range labels {
					for _, f := range groups[label] {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\n", label, f.Name, f.Calories)
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Show one food in full",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := loadCatalog()
				if err != nil {
					return err
				}
				f, err := cat.Find(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name\t%s\n", f.Name)
				fmt.Fprintf(out, "Category\t%s\n", f.Category)
				fmt.Fprintf(out, "Calories\t%g kcal\n", f.Calories)
				fmt.Fprintf(out, "Protein/Carbs/Fat\t%g/%g/%g g\n", f.Protein, f.Carbs, f.Fat)
				fmt.Fprintf(out, "Fiber\t%g g\n", f.Fiber)
				fmt.Fprintf(out, "Sodium\t%g mg\n", f.Sodium)
				fmt.Fprintf(out, "Ingredients\t%s\n", strings.Join(f.Ingredients, ", "))
				fmt.Fprintf(out, "Preparation\t%s\n", f.Preparation)
				fmt.Fprintf(out, "Benefits\t%s\n", strings.Join(f.HealthBenefits, ", "))
				return nil
			},
		},
	)
	return foodsCmd
}

func printFoods(out io.Writer, foods []models.FoodRecord) {
	fmt.Fprintln(out, "NAME\tCATEGORY\tKCAL\tPROTEIN\tCARBS\tFAT\tFLAGS")
	for _, f := range foods {
		var flags []string
		for _, flag := range models.Flags {
			if f.Has(flag) {
				flags = append(flags, string(flag))
			}
		}
		fmt.Fprintf(out, "%s\t%s\t%g\t%g\t%g\t%g\t%s\n", f.Name, f.Category, f.Calories, f.Protein, f.Carbs, f.Fat, strings.Join(flags, ","))
	}
}
