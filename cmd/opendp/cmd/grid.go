package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/circuit"
)

var gridCmd = &cobra.Command{
	Use:   "grid [design]",
	Short: "Print the site grid",
	Long: `Import a design, build its site grid and print it top row first.

  .  no row covers the site
  _  free site
  #  site held by a fixed cell
  a  free site owned by group a, b, ...

Examples:
  opendp grid top.dsn
  opendp grid --ignore-groups top.dsn`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)

	gridCmd.Flags().BoolVar(&ignoreGroups, "ignore-groups", false, "skip fence and guide groups")
}

func runGrid(cmd *cobra.Command, args []string) error {
	if ignoreGroups {
		cfg.Grid.IgnoreGroups = true
	}

	db, err := loadDesign()
	if err != nil {
		return err
	}

	c := newCircuit()
	if err := c.Import(db); err != nil {
		return err
	}
	g, err := c.BuildGrid(c.Marker, c.Assigner)
	if err != nil {
		return err
	}

	writeGrid(cmd.OutOrStdout(), g)
	return nil
}

func writeGrid(w io.Writer, g *circuit.Grid) {
	var b strings.Builder
	for r := g.NumRows - 1; r >= 0; r-- {
		b.Reset()
		fmt.Fprintf(&b, "%4d ", r)
		for col := 0; col < g.NumCols; col++ {
			b.WriteByte(pixelRune(g.At(r, col)))
		}
		fmt.Fprintln(w, b.String())
	}
}

func pixelRune(p *circuit.Pixel) byte {
	switch {
	case p.Occupied():
		return '#'
	case !p.Valid:
		return '.'
	case p.Group != circuit.NoGroup:
		return 'a' + byte(p.Group%26)
	}
	return '_'
}
