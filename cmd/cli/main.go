package main

import (
	"encoding/json"
	"fmt"
	"os"

	"misweep/adapters/excel"
	"misweep/app"
	"misweep/internal"
	"misweep/internal/analysis/sweep"
	"misweep/internal/config"
	"misweep/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env file; environment wins over defaults either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "misweep",
		Short: "Lag-swept mutual information estimation over binned series",
	}

	rootCmd.AddCommand(newSweepCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSweepCmd() *cobra.Command {
	var (
		shiftFrom, shiftTo, shiftStep int
		binsX, binsY                  int
		minX, maxX, minY, maxY        float64
		samples                       int
		seed                          int64
		workers                       int
		file, colX, colY              string
		points, lag                   int
		noise                         float64
		asJSON                        bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep mutual information across a range of lags",
		Long: `Sweep mutual information between two series across integer lags.

Data comes from --file (CSV or XLSX with --col-x/--col-y), or from a
generated sinusoid pair when no file is given.

Example: misweep sweep --from -100 --to 100 --bootstrap 0 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := internal.DefaultLogger

			if file == "" {
				file = cfg.Data.File
			}
			if colX == "" {
				colX = cfg.Data.ColumnX
			}
			if colY == "" {
				colY = cfg.Data.ColumnY
			}
			if binsX == 0 {
				binsX = cfg.Sweep.BinsX
			}
			if binsY == 0 {
				binsY = cfg.Sweep.BinsY
			}
			if workers == 0 {
				workers = cfg.Sweep.MaxWorkers
			}
			if seed == 0 {
				seed = cfg.Sweep.Seed
			}

			var dataX, dataY []float64
			varX, varY := colX, colY
			if file != "" {
				reader := excel.NewSeriesReader(file)
				dataX, dataY, err = reader.ReadPair(colX, colY)
				if err != nil {
					return err
				}
			} else {
				logger.Info("no data file given, generating %d-sample coupled sinusoid (lag %d)", points, lag)
				dataX, dataY = testkit.CoupledPair(points, lag, noise, seed)
				varX, varY = "synthetic_x", "synthetic_y"
			}

			service := app.NewSweepService(logger)
			report, err := service.Run(cmd.Context(), app.SweepRequest{
				VarX:  varX,
				VarY:  varY,
				DataX: dataX,
				DataY: dataY,
				Config: sweep.Config{
					ShiftFrom:  shiftFrom,
					ShiftTo:    shiftTo,
					ShiftStep:  shiftStep,
					BinsX:      binsX,
					BinsY:      binsY,
					MinX:       minX,
					MaxX:       maxX,
					MinY:       minY,
					MaxY:       maxY,
					MaxWorkers: workers,
					Seed:       seed,
				},
				Bootstrap: samples > 0,
				Samples:   samples,
			})
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("Sweep %s (%s vs %s)\n", report.SweepID, report.VarX, report.VarY)
			for i, mi := range report.Values {
				fmt.Printf("  lag %+4d  MI %.6f\n", report.LagAt(i), mi)
			}
			fmt.Printf("Peak MI %.6f at lag %d (p=%.4g), mean %.6f, %dms\n",
				report.PeakMI, report.PeakLag, report.PeakPValue, report.MeanMI, report.RuntimeMs)
			return nil
		},
	}

	cmd.Flags().IntVar(&shiftFrom, "from", -10, "first lag of the sweep")
	cmd.Flags().IntVar(&shiftTo, "to", 10, "last lag of the sweep")
	cmd.Flags().IntVar(&shiftStep, "step", 1, "lag increment")
	cmd.Flags().IntVar(&binsX, "bins-x", 0, "x-axis bin count (default from env, 10)")
	cmd.Flags().IntVar(&binsY, "bins-y", 0, "y-axis bin count (default from env, 10)")
	cmd.Flags().Float64Var(&minX, "min-x", 0, "x-axis minimum (derived from data when min==max)")
	cmd.Flags().Float64Var(&maxX, "max-x", 0, "x-axis maximum")
	cmd.Flags().Float64Var(&minY, "min-y", 0, "y-axis minimum")
	cmd.Flags().Float64Var(&maxY, "max-y", 0, "y-axis maximum")
	cmd.Flags().IntVar(&samples, "bootstrap", 0, "bootstrap sample count, 0 disables bootstrapping")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the bootstrap path, 0 means OS entropy")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent lag tasks, 0 means NumCPU")
	cmd.Flags().StringVar(&file, "file", "", "CSV or XLSX input file")
	cmd.Flags().StringVar(&colX, "col-x", "", "column name of the first series")
	cmd.Flags().StringVar(&colY, "col-y", "", "column name of the second series")
	cmd.Flags().IntVar(&points, "points", 1000, "synthetic data size when no file is given")
	cmd.Flags().IntVar(&lag, "lag", 0, "coupling delay injected into synthetic data")
	cmd.Flags().Float64Var(&noise, "noise", 0.1, "noise amplitude for synthetic data")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")

	return cmd
}
