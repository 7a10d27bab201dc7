package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/internal/cli"
	"github.com/pluqqy/maskedit/pkg/mask"
)

var (
	clipboardReal bool

	// writeClipboard is replaced in tests
	writeClipboard = clipboard.WriteAll
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <field>",
		Short: "Copy a field's saved value to the clipboard",
		Long: `Copy the display text of a saved field to the system clipboard.

Examples:
  # Copy the formatted phone number
  maskedit clipboard phone

  # Copy only the digits
  maskedit clipboard phone --real`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runClipboard,
	}

	cmd.Flags().BoolVar(&clipboardReal, "real", false, "Copy the real value instead of the display text")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	field, real, err := ctx.ResolveField(args[0])
	if err != nil {
		return err
	}
	if real == "" {
		return fmt.Errorf("field '%s' has no saved value", field.Name)
	}

	content := mask.Project(field.Mask, real)
	if clipboardReal {
		content = real
	}

	if err := writeClipboard(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied %s to clipboard", field.DisplayLabel())
	fmt.Fprintln(cmd.OutOrStdout(), content)

	return nil
}
