package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/syringe/internal/core/domain"
)

func (c *CLI) newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate an XML schema for every injectable type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.generate(cmd, domain.ProducerSchema, func(*domain.GenerationRequest) {})
		},
	}
	cmd.Flags().StringP("out", "o", "", "Resources directory the schemas are written to")
	return cmd
}

func (c *CLI) newModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Generate a Scala module with a builder for every injectable type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.generate(cmd, domain.ProducerModule, func(req *domain.GenerationRequest) {
				flags := cmd.Flags()
				if flags.Changed("name") {
					req.ModuleName, _ = flags.GetString("name")
				}
				if flags.Changed("package") {
					req.ModulePackage, _ = flags.GetString("package")
				}
				if flags.Changed("description") {
					req.ModuleDescription, _ = flags.GetString("description")
				}
				if flags.Changed("trait") {
					req.ModuleTraits, _ = flags.GetStringSlice("trait")
				}
			})
		},
	}
	cmd.Flags().StringP("out", "o", "", "Sources directory the module is written to")
	cmd.Flags().StringP("name", "n", "", "Module object name")
	cmd.Flags().StringP("package", "p", "", "Module package")
	cmd.Flags().String("description", "", "Module description")
	cmd.Flags().StringSlice("trait", nil, "Trait mixed into the module (repeatable)")
	return cmd
}

func (c *CLI) newInstanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instance",
		Short: "Generate a configuration document for one injectable type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.generate(cmd, domain.ProducerInstance, func(req *domain.GenerationRequest) {
				flags := cmd.Flags()
				req.TypeFilter, _ = flags.GetString("class")
				req.ConfigName, _ = flags.GetString("name")
				if flags.Changed("optional") {
					req.IncludeOptional, _ = flags.GetBool("optional")
				}
			})
		},
	}
	cmd.Flags().StringP("out", "o", "", "Directory the document is written to")
	cmd.Flags().StringP("class", "c", "", "Type name or name suffix selecting the injectable")
	cmd.Flags().StringP("name", "n", "", "Document name (defaults to the simple type name)")
	cmd.Flags().Bool("optional", false, "Include optional properties")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}

// generate runs one generation of kind with the request built from the
// configuration, adjusted by the command's own flags.
func (c *CLI) generate(cmd *cobra.Command, kind domain.ProducerKind, adjust func(*domain.GenerationRequest)) error {
	s, err := c.settings(cmd)
	if err != nil {
		return err
	}

	req := s.Request(kind)
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		req.OutputDir = projectPath(s, out)
	}
	adjust(&req)

	result, err := c.components.App.Generate(cmd.Context(), s.Layout, req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d %s artifact(s) in %s, %d unchanged\n",
		len(result.Artifacts), kind, req.OutputDir, result.Unchanged)
	return nil
}
