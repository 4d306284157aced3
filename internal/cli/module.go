package cli

import (
	"github.com/spf13/cobra"

	"github.com/gp-oxid/oxskel/internal/scaffold"
)

var moduleOpts struct {
	path        string
	vendor      string
	autoload    string
	id          string
	title       string
	description string
	license     string
	version     string
	target      string
	template    string
	languages   []string
	authorName  string
	authorMail  string
	readme      bool
	changelog   bool
	override    bool
}

func init() {
	f := moduleCmd.Flags()
	f.StringVarP(&moduleOpts.path, "path", "p", "", "Installation path (default ./gp-skeleton-module)")
	f.StringVarP(&moduleOpts.vendor, "vendor", "o", "", "Composer package name, <vendor>/<name>")
	f.StringVarP(&moduleOpts.autoload, "autoload", "a", "", "Module root namespace, used for psr-4 autoloading")
	f.StringVarP(&moduleOpts.id, "id", "x", "", "Module ID (default gp_module_skeleton)")
	f.StringVarP(&moduleOpts.title, "title", "t", "", "Module title shown in the back office")
	f.StringVarP(&moduleOpts.description, "description", "d", "", "Composer and metadata description")
	f.StringVarP(&moduleOpts.license, "license", "l", "", "Composer license (default MIT)")
	f.StringVarP(&moduleOpts.version, "versioning", "w", "", "Composer and metadata version (default 1.0.0)")
	f.StringVar(&moduleOpts.target, "target", "", "Autoload source directory below the path (default src/)")
	f.StringVar(&moduleOpts.template, "template", "", variantUsage()+" (default smarty)")
	f.StringSliceVar(&moduleOpts.languages, "language", nil, "Shop translation language, repeatable (default de,en)")
	f.StringVar(&moduleOpts.authorName, "author-name", "", "Author name for composer.json and README.md")
	f.StringVar(&moduleOpts.authorMail, "author-mail", "", "Author email for composer.json and README.md")
	f.BoolVarP(&moduleOpts.readme, "readme", "r", false, "Create README.md")
	f.BoolVarP(&moduleOpts.changelog, "changelog", "c", false, "Create CHANGELOG.md")
	f.BoolVar(&moduleOpts.override, "override", false, "Write into a non-empty path without asking")
	rootCmd.AddCommand(moduleCmd)
}

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Create an OXID eShop module skeleton",
	Long: `Create the directory layout and files of an OXID eShop module: composer.json,
metadata.php, the module class, admin and shop translations, migrations config,
an optional README and CHANGELOG and the module logo.

Every value is asked for interactively with the flag, config or built-in
value as default. With --no-interaction the defaults are used as they are.

Examples:
  oxskel module -p ./widget -o acme/widget -a 'Acme\Widget' -x acme_widget
  oxskel module -n --template both --language de --language en -r -c`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd, moduleParams(cmd))
	},
}

// moduleParams layers changed flags over config and built-in defaults.
func moduleParams(cmd *cobra.Command) scaffold.Params {
	p := scaffold.DefaultModule()
	applyConfig(&p)

	o := moduleOpts
	setString(cmd, "path", &p.Path, o.path)
	setString(cmd, "vendor", &p.Vendor, o.vendor)
	setString(cmd, "autoload", &p.Autoload, o.autoload)
	setString(cmd, "id", &p.ID, o.id)
	setString(cmd, "title", &p.Title, o.title)
	setString(cmd, "description", &p.Description, o.description)
	setString(cmd, "license", &p.License, o.license)
	setString(cmd, "versioning", &p.Version, o.version)
	setString(cmd, "target", &p.Target, o.target)
	setString(cmd, "template", &p.Variant, o.template)
	setString(cmd, "author-name", &p.AuthorName, o.authorName)
	setString(cmd, "author-mail", &p.AuthorEmail, o.authorMail)
	if cmd.Flags().Changed("language") {
		p.Languages = o.languages
	}
	setBool(cmd, "readme", &p.Readme, o.readme)
	setBool(cmd, "changelog", &p.Changelog, o.changelog)
	setBool(cmd, "override", &p.Override, o.override)
	return p
}
