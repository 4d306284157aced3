package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gp-oxid/oxskel/internal/render"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the templates used for generated files",
	Long: `List the template names the module command renders. Templates found in
--templates-dir (or the templates_dir config key) take precedence over the
built-in ones. The placeholders listed are replaced in every rendered
template; other text is copied as is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		names, err := store.Names()
		if err != nil {
			return fmt.Errorf("listing templates: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Templates in %s:\n", store.Dir())
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}

		fmt.Fprintln(out, "\nPlaceholders:")
		for _, tok := range render.Tokens() {
			fmt.Fprintf(out, "  %s\n", render.Marker(tok))
		}
		return nil
	},
}
