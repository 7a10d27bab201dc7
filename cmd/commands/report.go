package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/internal/cli"
	"github.com/pluqqy/maskedit/pkg/mask"
)

// fieldReport is the serialisable state of a field
type fieldReport struct {
	Mask     string `json:"mask" yaml:"mask"`
	RealText string `json:"real_text" yaml:"real_text"`
	Display  string `json:"display" yaml:"display"`
	Caret    int    `json:"caret" yaml:"caret"`
	Complete bool   `json:"complete" yaml:"complete"`
}

func reportOf(f *mask.Field) fieldReport {
	return fieldReport{
		Mask:     f.Mask(),
		RealText: f.RealText(),
		Display:  f.DisplayText(),
		Caret:    f.SelectionStart(),
		Complete: f.IsComplete(),
	}
}

// newField builds a field with an initial value and caret. A negative caret
// puts the caret on the last legal slot.
func newField(m, value string, caret int) *mask.Field {
	f := mask.NewField(m)
	if value != "" {
		f.SetRealText(value)
	}
	if caret < 0 {
		caret = len(m)
	}
	f.SetSelectionStart(caret)
	return f
}

// addOutputFlag registers the --output flag shared by all reporting commands
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "", "Output format: text, json, or yaml (default from settings)")
}

func writeDisplay(w io.Writer, f *mask.Field, showCaret bool) {
	fmt.Fprintln(w, f.DisplayText())
	if showCaret {
		fmt.Fprintln(w, cli.CaretLine(f.SelectionStart()))
	}
}
