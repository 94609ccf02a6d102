package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	jsonOutput bool
	configPath string
	verbose    bool
	noColor    bool

	logger *zap.Logger

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for sheetcheck.
var rootCmd = &cobra.Command{
	Use:     "sheetcheck",
	Version: "dev",
	Short:   "Cross-validate RawGeo and Geo sheet layers",
	Long: `sheetcheck cross-validates a RawGeo and a Geo data store.

Feature classes are named <a>_<b>_<c>_<JL>_<Sheet>_..._<TYPE>. For every job
location and sheet, each raw layer type must have its finished counterpart in
Geo and the other way round, and no layer type may appear twice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		var err error
		logger, err = newLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// groupedHelp prints help with the subcommands listed under their group
// titles, in color unless --no-color is set.
func groupedHelp(cmd *cobra.Command, args []string) {
	var b strings.Builder

	if desc := cmd.Long; desc != "" || cmd.Short != "" {
		if desc == "" {
			desc = cmd.Short
		}
		fmt.Fprintf(&b, "%s\n\n", desc)
	}
	fmt.Fprintf(&b, "%s\n  %s\n\n", sectionTitleColor.Sprint("Usage:"), cmd.UseLine())

	for _, g := range cmd.Groups() {
		writeCommandList(&b, groupTitleColor.Sprint(g.Title), cmd.Commands(), g.ID)
	}
	writeCommandList(&b, sectionTitleColor.Sprint("Additional Commands:"), cmd.Commands(), "")

	if flags := cmd.LocalFlags().FlagUsages() + cmd.InheritedFlags().FlagUsages(); flags != "" {
		fmt.Fprintf(&b, "%s\n%s\n", sectionTitleColor.Sprint("Flags:"), flags)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), b.String())
}

func writeCommandList(b *strings.Builder, title string, cmds []*cobra.Command, groupID string) {
	var rows []string
	for _, c := range cmds {
		if c.GroupID == groupID && !c.Hidden {
			rows = append(rows, fmt.Sprintf("  %-11s %s\n", c.Name(), c.Short))
		}
	}
	if len(rows) == 0 {
		return
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Join(rows, ""))
	b.WriteString("\n")
}

func init() {
	rootCmd.SetHelpFunc(groupedHelp)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding the default stores and type map")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "analysis",
		Title: "Analysis:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the sheetcheck CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	// cobra's own help and completion commands, filed under tooling.
	rootCmd.SetHelpCommandGroupID("cli-tooling")
	rootCmd.SetCompletionCommandGroupID("cli-tooling")

	// Analysis commands
	checkCmd.GroupID = "analysis"
	inventoryCmd.GroupID = "analysis"
	typesCmd.GroupID = "analysis"
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(typesCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
