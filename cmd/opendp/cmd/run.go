package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [design]",
	Short: "Import, grid and validate a design, then write it back",
	Long: `Run the full preparation pipeline: import the design, apply the
constraints file, build the site grid, check utilization and order cells by
area. Cell locations are written back in database units and, when --output
is given, the design is saved there.

Examples:
  opendp run top.dsn --constraints top.cons --output top.out.dsn
  opendp run -c run.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var (
	runConstraints string
	runOutput      string
	ignoreGroups   bool
	noFixed        bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runConstraints, "constraints", "", "constraints file")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the design here")
	runCmd.Flags().BoolVar(&ignoreGroups, "ignore-groups", false, "skip fence and guide groups")
	runCmd.Flags().BoolVar(&noFixed, "no-fixed", false, "leave fixed cells off the grid")
}

func runRun(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("constraints") {
		cfg.Constraints = runConstraints
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if ignoreGroups {
		cfg.Grid.IgnoreGroups = true
	}
	if noFixed {
		cfg.Grid.MarkFixed = false
	}

	db, err := loadDesign()
	if err != nil {
		return err
	}

	c, res, err := prepare(db)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(db.Name, c, res.Stats))

	if len(res.Order) > 0 {
		largest := c.Cells[res.Order[0].Cell]
		logger.Debug("largest cell", "name", largest.Name, "area", res.Order[0].Area)
	}

	if err := c.WriteBack(db); err != nil {
		return err
	}
	if cfg.Output == "" {
		return nil
	}
	if err := db.WriteFile(cfg.Output); err != nil {
		return err
	}
	logger.Info("design written", "file", cfg.Output)
	return nil
}
