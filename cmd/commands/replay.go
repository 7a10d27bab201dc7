package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/internal/cli"
	"github.com/pluqqy/maskedit/pkg/mask"
)

var (
	replayMask   string
	replayField  string
	replayValue  string
	replayCaret  int
	replayOutput string
)

// replayStep records the field state after one key
type replayStep struct {
	Key     string `json:"key" yaml:"key"`
	Handled bool   `json:"handled" yaml:"handled"`
	fieldReport `yaml:",inline"`
}

// replayResult is the full output of a replay
type replayResult struct {
	Mask  string       `json:"mask" yaml:"mask"`
	Steps []replayStep `json:"steps" yaml:"steps"`
	Final fieldReport  `json:"final" yaml:"final"`
}

// NewReplayCommand creates the replay command
func NewReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <key>...",
		Short: "Feed a key sequence through a masked field",
		Long: `Feed a sequence of keys through a masked field and print the state after
each key.

Keys may be given as separate arguments or comma separated:
  0-9            digits
  kp0-kp9        keypad digits (same as 0-9)
  backspace      remove the character at the caret
  left, right    move the caret
  tab            not consumed by the field
  anything else  consumed without effect

Examples:
  # Type a date
  maskedit replay --mask 99/99/9999 1 2 3 1 2 0 2 4

  # Start from a value with the caret on the separator
  maskedit replay --mask 99/99/9999 --value 12 --caret 2 3

  # Edit a configured field using its saved value
  maskedit replay --field phone backspace,backspace,9

  # JSON output
  maskedit replay --mask 99 5,backspace -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReplay,
	}

	cmd.Flags().StringVar(&replayMask, "mask", "", "Mask to edit")
	cmd.Flags().StringVar(&replayField, "field", "", "Configured field to edit (uses its mask and saved value)")
	cmd.Flags().StringVar(&replayValue, "value", "", "Initial real value")
	cmd.Flags().IntVar(&replayCaret, "caret", -1, "Initial caret offset (default: end of the value)")
	addOutputFlag(cmd, &replayOutput)

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	format, err := ctx.OutputFormat(replayOutput)
	if err != nil {
		return err
	}

	m, value := replayMask, replayValue
	if replayField != "" {
		if replayMask != "" {
			return fmt.Errorf("--mask and --field cannot be used together")
		}
		field, saved, err := ctx.ResolveField(replayField)
		if err != nil {
			return err
		}
		m = field.Mask
		if value == "" {
			value = saved
		}
	}

	if m == "" {
		return fmt.Errorf("a mask is required: use --mask or --field")
	}
	if err := cli.ValidateMask(m); err != nil {
		return err
	}
	if err := cli.ValidateValue(m, value); err != nil {
		cli.PrintWarning("%v", err)
	}

	f := newField(m, value, replayCaret)
	result := replayResult{Mask: m}

	for _, name := range splitKeys(args) {
		k := mask.ParseKey(name)
		handled := f.HandleKey(k)
		result.Steps = append(result.Steps, replayStep{
			Key:         name,
			Handled:     handled,
			fieldReport: reportOf(f),
		})
	}
	result.Final = reportOf(f)

	if format != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mask: %s\n\n", m)

	table := cli.NewTableFormatter(out)
	table.Header("KEY", "HANDLED", "DISPLAY", "CARET", "REAL")
	for _, step := range result.Steps {
		table.Row(step.Key, strconv.FormatBool(step.Handled), step.Display, strconv.Itoa(step.Caret), strconv.Quote(step.RealText))
	}
	table.Flush()

	fmt.Fprintln(out)
	writeDisplay(out, f, true)

	return nil
}

// splitKeys flattens arguments that hold comma separated key names
func splitKeys(args []string) []string {
	var keys []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				keys = append(keys, part)
			}
		}
	}
	return keys
}
