// Package commands implements the CLI commands for the syringe generator.
package commands

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/syringe/internal/app"
	"go.trai.ch/syringe/internal/build"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for syringe.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance over the initialized components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "syringe",
		Short:         "Generate configuration artifacts for injectable JVM types",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory containing syringe.yaml")
	rootCmd.PersistentFlags().StringP("target", "t", "", "Build target directory (overrides configuration)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output, including skipped classes")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			c.components.Logger.SetLevel(domain.LogLevelDebug)
		}
		return nil
	}

	rootCmd.AddCommand(c.newSchemaCmd())
	rootCmd.AddCommand(c.newModuleCmd())
	rootCmd.AddCommand(c.newInstanceCmd())
	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// settings loads the project configuration and applies the persistent flags.
func (c *CLI) settings(cmd *cobra.Command) (*domain.Settings, error) {
	dir, _ := cmd.Flags().GetString("dir")
	s, err := c.components.ConfigLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if target, _ := cmd.Flags().GetString("target"); target != "" {
		s.Layout = domain.NewLayout(projectPath(s, target))
	}
	return s, nil
}

// projectPath resolves a flag value against the project root.
func projectPath(s *domain.Settings, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.Root, p)
}
