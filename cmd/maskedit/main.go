package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/cmd/commands"
	"github.com/pluqqy/maskedit/internal/cli"
	"github.com/pluqqy/maskedit/pkg/files"
	"github.com/pluqqy/maskedit/pkg/models"
	"github.com/pluqqy/maskedit/pkg/tui"
)

// version is set during build with -ldflags
var version = "dev"

var (
	quietFlag   bool
	noColorFlag bool
	maskFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "maskedit",
	Short: "Masked input fields for the terminal",
	Long: `maskedit edits values such as phone numbers and dates through display masks.
Run without a subcommand to open the form for the configured fields.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewCommandContext()
		settings := ctx.LoadSettingsWithDefault()
		values := ctx.LoadValuesWithDefault()

		if maskFlag != "" {
			if err := cli.ValidateMask(maskFlag); err != nil {
				return err
			}
			settings.Fields = []models.FieldSettings{{Name: "mask", Label: "Value", Mask: maskFlag}}
		}

		app := tui.NewApp(settings, values, tui.WithSaving(files.ProjectExists() && maskFlag == ""))
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new maskedit project",
	Long:  `Creates the .maskedit folder with default settings in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing maskedit project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s/%s", files.MaskeditDir, files.SettingsFile)
		cli.PrintInfo("Run 'maskedit' to open the form.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of maskedit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "maskedit version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&maskFlag, "mask", "", "Edit a single ad-hoc mask instead of the configured fields")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewReplayCommand())
	rootCmd.AddCommand(commands.NewSlotsCommand())
	rootCmd.AddCommand(commands.NewFieldsCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
