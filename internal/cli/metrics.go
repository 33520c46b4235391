package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swasthya/internal/health"
	"swasthya/internal/models"
)

var (
	profileName       string
	profileAge        int
	profileWeight     float64
	profileHeight     float64
	profileGender     string
	profileActivity   string
	profileGoal       string
	profileConditions []string
)

func addProfileFlags(cmd *cobra.Command) {
	d := models.DefaultProfile()
	cmd.Flags().StringVar(&profileName, "name", d.Name, "Name")
	cmd.Flags().IntVar(&profileAge, "age", d.Age, "Age in years")
	cmd.Flags().Float64Var(&profileWeight, "weight", d.Weight, "Weight in kg")
	cmd.Flags().Float64Var(&profileHeight, "height", d.Height, "Height in cm")
	cmd.Flags().StringVar(&profileGender, "gender", string(d.Gender), "Female, Male or Other")
	cmd.Flags().StringVar(&profileActivity, "activity", string(d.ActivityLevel), "Sedentary, Light, Moderate, Active or Very Active")
	cmd.Flags().StringVar(&profileGoal, "goal", string(d.Goal), "Lose Weight, Maintain Weight or Gain Weight")
	cmd.Flags().StringSliceVar(&profileConditions, "conditions", []string{string(models.ConditionNone)}, "Comma-separated health conditions")
}

func profileFromFlags() models.UserProfile {
	p := models.UserProfile{
		Name:          profileName,
		Age:           profileAge,
		Weight:        profileWeight,
		Height:        profileHeight,
		Gender:        models.Gender(profileGender),
		ActivityLevel: models.ActivityLevel(profileActivity),
		Goal:          models.Goal(profileGoal),
	}
	for _, c := range profileConditions {
		p.HealthConditions = append(p.HealthConditions, models.HealthCondition(strings.TrimSpace(c)))
	}
	return p.Normalize()
}

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show BMI, BMR, calorie and macro targets for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := health.Evaluate(profileFromFlags())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "METRIC\tVALUE")
			fmt.Fprintf(out, "BMI\t%.1f (%s)\n", report.BMI, report.BMICategory.Category)
			fmt.Fprintf(out, "BMR\t%d kcal\n", report.BMR)
			fmt.Fprintf(out, "Daily calories\t%d kcal\n", report.DailyCalories)
			fmt.Fprintf(out, "Protein\t%.1f g (%d%%)\n", report.Macros.ProteinGrams, report.Macros.ProteinPct)
			fmt.Fprintf(out, "Carbs\t%.1f g (%d%%)\n", report.Macros.CarbGrams, report.Macros.CarbPct)
			fmt.Fprintf(out, "Fat\t%.1f g (%d%%)\n", report.Macros.FatGrams, report.Macros.FatPct)
			fmt.Fprintf(out, "Water\t%.1f L\n", report.WaterLiters)
			for _, r := range report.Recommendations {
				fmt.Fprintf(out, "Advice\t%s\n", r)
			}
			return nil
		},
	}
	addProfileFlags(cmd)
	return cmd
}

var (
	burnMinutes float64
	burnWeight  float64
)

func newBurnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn <exercise>",
		Short: "Estimate calories burned by an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise := models.ExerciseType(args[0])
			if parsed, ok := models.ParseExerciseType(args[0]); ok {
				exercise = parsed
			}
			burned, err := health.CaloriesBurned(exercise, burnMinutes, burnWeight)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "EXERCISE\tMET\tMINUTES\tKCAL")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%g\t%d\n", exercise, health.MET(exercise), burnMinutes, burned)
			return nil
		},
	}
	cmd.Flags().Float64Var(&burnMinutes, "minutes", 30, "Duration in minutes")
	cmd.Flags().Float64Var(&burnWeight, "weight", models.DefaultProfile().Weight, "Body weight in kg")
	return cmd
}
