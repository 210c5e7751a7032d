package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

var infoCmd = &cobra.Command{
	Use:   "info [design]",
	Short: "Print the design analysis",
	Long: `Import a design and print its analysis without building the grid.
An over-utilized design is reported and then fails.

Examples:
  opendp info top.dsn
  opendp info -v top.dsn`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	db, err := loadDesign()
	if err != nil {
		return err
	}
	cons, err := loadConstraints()
	if err != nil {
		return err
	}

	c := newCircuit()
	if err := c.Import(db); err != nil {
		return err
	}
	if cons != nil {
		if err := cons.Apply(c); err != nil {
			return err
		}
	}

	stats, err := c.CalcDesignStats()
	if err != nil && !errors.Is(err, errors.ErrCodeUtilization) {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(db.Name, c, stats))
	return err
}
