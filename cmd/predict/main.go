package main

import (
	"fmt"
	"os"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/dataset"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// register the component types a saved model may refer to
	_ "github.com/Thomas-WG/skillbotml/costfuncs"
	_ "github.com/Thomas-WG/skillbotml/hyperparams"
	_ "github.com/Thomas-WG/skillbotml/operators"
	_ "github.com/Thomas-WG/skillbotml/optimizers"
	_ "github.com/Thomas-WG/skillbotml/penalties"
)

func main() {
	var modelDir, inputPath string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run a trained model over a CSV of features",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			net, err := sb.Load(modelDir)
			if err != nil {
				return err
			}

			x, _, err := dataset.LoadFeatures(inputPath)
			if err != nil {
				return err
			}

			preds, err := net.Predict(x)
			if err != nil {
				return err
			}

			rows, cols := preds.Dims()
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if c != 0 {
						fmt.Print(", ")
					}
					fmt.Printf("%g", preds.At(r, c))
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&modelDir, "model", "m", "model", "directory of the saved model")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV file of features to predict on")
	cmd.MarkFlagRequired("input")
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
