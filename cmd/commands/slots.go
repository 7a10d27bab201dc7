package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/internal/cli"
	"github.com/pluqqy/maskedit/pkg/mask"
)

var slotsOutput string

// slotPosition describes one display offset
type slotPosition struct {
	Offset  int    `json:"offset" yaml:"offset"`
	Char    string `json:"char" yaml:"char"`
	Kind    string `json:"kind" yaml:"kind"`
	Legal   bool   `json:"legal" yaml:"legal"`
	RealIdx *int   `json:"real_index,omitempty" yaml:"real_index,omitempty"`
}

type slotsResult struct {
	Mask      string         `json:"mask" yaml:"mask"`
	RealText  string         `json:"real_text" yaml:"real_text"`
	Display   string         `json:"display" yaml:"display"`
	Slots     []int          `json:"slots" yaml:"slots"`
	Positions []slotPosition `json:"positions" yaml:"positions"`
}

// NewSlotsCommand creates the slots command
func NewSlotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots <mask> [value]",
		Short: "Show legal caret slots and the display to value mapping",
		Long: `Show where the caret may rest for a mask and value, and which index of the
value each display offset maps to.

Examples:
  maskedit slots 99/99/9999
  maskedit slots "(999) 999-9999" 555
  maskedit slots 99/99/9999 12 -o yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runSlots,
	}

	addOutputFlag(cmd, &slotsOutput)

	return cmd
}

func runSlots(cmd *cobra.Command, args []string) error {
	m := args[0]
	value := ""
	if len(args) > 1 {
		value = args[1]
	}

	ctx := cli.NewCommandContext()
	format, err := ctx.OutputFormat(slotsOutput)
	if err != nil {
		return err
	}
	if err := cli.ValidateMask(m); err != nil {
		return err
	}

	result := buildSlots(m, value)

	if format != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Display:     %s\n", result.Display)
	fmt.Fprintf(out, "Legal slots: %s\n\n", cli.FormatSlots(result.Slots))

	table := cli.NewTableFormatter(out)
	table.Header("OFFSET", "CHAR", "KIND", "LEGAL", "REAL INDEX")
	for _, p := range result.Positions {
		realIdx := "-"
		if p.RealIdx != nil {
			realIdx = strconv.Itoa(*p.RealIdx)
		}
		table.Row(strconv.Itoa(p.Offset), p.Char, p.Kind, strconv.FormatBool(p.Legal), realIdx)
	}
	table.Flush()

	return nil
}

func buildSlots(m, value string) slotsResult {
	slots := mask.LegalSlots(m, value)
	display := mask.Project(m, value)

	legal := make(map[int]bool, len(slots))
	for _, s := range slots {
		legal[s] = true
	}

	result := slotsResult{
		Mask:     m,
		RealText: value,
		Display:  display,
		Slots:    slots,
	}

	for i := 0; i <= len(m); i++ {
		p := slotPosition{Offset: i, Legal: legal[i], Kind: "end"}
		if i < len(m) {
			p.Char = string(display[i])
			p.Kind = "literal"
			if kind, ok := mask.KindOf(m[i]); ok {
				p.Kind = kind.Name
			}
		}
		if idx, ok := mask.DisplayToReal(m, value, i); ok {
			p.RealIdx = &idx
		}
		result.Positions = append(result.Positions, p)
	}

	return result
}
