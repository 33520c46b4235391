package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"swasthya/internal/detection"
	"swasthya/internal/models"
)

var (
	scanSeed       uint64
	scanConditions []string
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Detect dishes in a JPEG or PNG photo and estimate nutrition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			img, _, err := detection.DecodeImage(f)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(scanSeed, scanSeed))
			}
			conditions := make([]models.HealthCondition, 0, len(scanConditions))
			for _, c := range scanConditions {
				conditions = append(conditions, models.HealthCondition(strings.TrimSpace(c)))
			}

			result, err := detection.Analyze(cmd.Context(), detection.NewRandomDetector(rng), img, conditions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "FOOD\tCONFIDENCE\tSERVING\tKCAL")
			for _, d := range result.DetectedFoods {
				fmt.Fprintf(out, "%s\t%.0f%%\t%s\t%d\n", d.Name, d.Confidence*100, d.ServingInfo, d.Calories)
			}
			n := result.Nutrition
			fmt.Fprintf(out, "TOTAL\t\t\t%d\n", n.TotalCalories)
			fmt.Fprintf(out, "Protein/Carbs/Fat\t%.1f/%.1f/%.1f g\n", n.Protein, n.Carbohydrates, n.Fat)
			for _, r := range result.Recommendations {
				fmt.Fprintf(out, "Advice\t%s\n", r)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&scanSeed, "seed", 0, "Seed the detector for repeatable output")
	cmd.Flags().StringSliceVar(&scanConditions, "conditions", nil, "Comma-separated health conditions")
	return cmd
}
