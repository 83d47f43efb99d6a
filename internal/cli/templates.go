package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinvalidate/create-validator/internal/render"
	"github.com/tinvalidate/create-validator/internal/scaffold"
	"github.com/tinvalidate/create-validator/internal/templates"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Show the template set and the placeholders it uses",
	Long: `Load the active template set (embedded, or templates_dir when configured) and list
the placeholders in each file. Placeholders other than group, name and name_upper
render as an empty string and are flagged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		set, err := e.templateSource().Load()
		if err != nil {
			return fmt.Errorf("%w: %w", scaffold.ErrTemplateUnavailable, err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Template set: %s (%s)\n", set.Manifest.Name, set.Source)
		if set.Manifest.Description != "" {
			fmt.Fprintf(w, "  %s\n", set.Manifest.Description)
		}
		if set.Manifest.Requires != "" {
			fmt.Fprintf(w, "  requires %s\n", set.Manifest.Requires)
		}

		bound := scaffold.Identifier{}.Params()
		for _, f := range []templates.File{set.Implementation, set.Spec} {
			fmt.Fprintf(w, "\n%s\n", f.Name)
			names := render.Placeholders(f.Text)
			if len(names) == 0 {
				fmt.Fprintln(w, "  (no placeholders)")
				continue
			}
			unknown := render.Unknown(f.Text, bound)
			for _, name := range names {
				if slices.Contains(unknown, name) {
					fmt.Fprintf(w, "  %s (unknown, renders empty)\n", name)
				} else {
					fmt.Fprintf(w, "  %s\n", name)
				}
			}
		}

		fmt.Fprintf(w, "\nBound placeholders: %s\n", strings.Join([]string{
			scaffold.ParamGroup, scaffold.ParamName, scaffold.ParamNameUpper,
		}, ", "))
		return nil
	},
}

