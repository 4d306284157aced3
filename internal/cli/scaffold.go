package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gp-oxid/oxskel/internal/config"
	"github.com/gp-oxid/oxskel/internal/layout"
	"github.com/gp-oxid/oxskel/internal/scaffold"
)

// setString copies v into dst when the named flag was given.
func setString(cmd *cobra.Command, name string, dst *string, v string) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}

func setBool(cmd *cobra.Command, name string, dst *bool, v bool) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}

func fromConfig(dst *string, key string) {
	if v := config.Get(key); v != "" {
		*dst = v
	}
}

// applyConfig overlays the user config on the built-in defaults of p.
func applyConfig(p *scaffold.Params) {
	fromConfig(&p.Vendor, config.KeyVendor)
	fromConfig(&p.License, config.KeyLicense)
	fromConfig(&p.AuthorName, config.KeyAuthorName)
	fromConfig(&p.AuthorEmail, config.KeyAuthorEmail)
	fromConfig(&p.Autoload, config.KeyAutoload)
	if p.Kind == scaffold.KindModule {
		fromConfig(&p.Variant, config.KeyTemplate)
		if langs := config.Languages(); len(langs) > 0 {
			p.Languages = langs
		}
	}
}

// runScaffold executes one orchestrator run for p and prints the outcome.
func runScaffold(cmd *cobra.Command, p scaffold.Params) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	o := scaffold.New(store, newPrompter(cmd),
		scaffold.WithLogger(logger),
		scaffold.WithOutput(out),
		scaffold.WithInteractive(!noInteraction),
	)
	res := o.Run(p)
	printResult(out, res)
	if res.Err != nil {
		return &reportedError{err: res.Err}
	}
	return nil
}

func printResult(w io.Writer, res *scaffold.Result) {
	if len(res.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
	if res.State != scaffold.StateDone {
		return
	}

	fmt.Fprintf(w, "\nCreated %d directories and %d files in %s\n", len(res.Created), len(res.Files), res.Root)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Review composer.json in %s\n", res.Root)
	if res.Params.Kind == scaffold.KindModule {
		fmt.Fprintf(w, "  2. Require %s in your shop and activate module %s\n", res.Params.Vendor, res.Params.ID)
	} else {
		fmt.Fprintf(w, "  2. Add your classes to %s\n", res.Target)
	}
}

func variantUsage() string {
	return fmt.Sprintf("Template variant %v", layout.Names())
}
