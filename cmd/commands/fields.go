package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/internal/cli"
	"github.com/pluqqy/maskedit/pkg/mask"
)

var fieldsOutput string

type fieldListing struct {
	Name         string `json:"name" yaml:"name"`
	Label        string `json:"label" yaml:"label"`
	Mask         string `json:"mask" yaml:"mask"`
	Placeholders int    `json:"placeholders" yaml:"placeholders"`
	RealText     string `json:"real_text" yaml:"real_text"`
	Display      string `json:"display" yaml:"display"`
}

// NewFieldsCommand creates the fields command
func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fields",
		Aliases: []string{"ls", "list"},
		Short:   "List configured fields and their saved values",
		Long: `List the masked fields configured in .maskedit/settings.yaml together with
their saved values. Without a project the built-in default fields are shown.`,
		Args: cobra.NoArgs,
		RunE: runFields,
	}

	addOutputFlag(cmd, &fieldsOutput)

	return cmd
}

func runFields(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	format, err := ctx.OutputFormat(fieldsOutput)
	if err != nil {
		return err
	}

	settings := ctx.LoadSettingsWithDefault()
	values := ctx.LoadValuesWithDefault()

	var listings []fieldListing
	for _, field := range settings.Fields {
		real := values.Get(field.Name)
		listings = append(listings, fieldListing{
			Name:         field.Name,
			Label:        field.DisplayLabel(),
			Mask:         field.Mask,
			Placeholders: mask.PlaceholderCount(field.Mask),
			RealText:     real,
			Display:      mask.Project(field.Mask, real),
		})
	}

	if format != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), format, listings)
	}

	if len(listings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No fields configured")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("NAME", "LABEL", "MASK", "SLOTS", "DISPLAY")
	for _, l := range listings {
		table.Row(l.Name, l.Label, l.Mask, strconv.Itoa(l.Placeholders), l.Display)
	}
	table.Flush()

	return nil
}
