package cli

import (
	"github.com/spf13/cobra"

	"github.com/gp-oxid/oxskel/internal/scaffold"
)

var componentOpts struct {
	vendor      string
	path        string
	permission  string
	description string
	license     string
	version     string
	autoload    string
	target      string
	authorName  string
	authorMail  string
	override    bool
}

func init() {
	f := componentCmd.Flags()
	f.StringVarP(&componentOpts.vendor, "vendor", "o", "", "Composer package name, <vendor>/<name>")
	f.StringVarP(&componentOpts.path, "path", "p", "", "Path to write the component into (default ./gp-skeleton-component)")
	f.StringVarP(&componentOpts.permission, "permission", "x", "", "Octal mode applied to the component directories (default 0755)")
	f.StringVarP(&componentOpts.description, "description", "d", "", "Composer description")
	f.StringVarP(&componentOpts.license, "license", "l", "", "Composer license (default MIT)")
	f.StringVarP(&componentOpts.version, "versioning", "w", "", "Composer version (default 1.0.0)")
	f.StringVarP(&componentOpts.autoload, "autoload", "a", "", "psr-4 namespace")
	f.StringVarP(&componentOpts.target, "target", "t", "", "Autoload source directory below the path (default src/)")
	f.StringVar(&componentOpts.authorName, "author-name", "", "Author name for composer.json and README.md")
	f.StringVar(&componentOpts.authorMail, "author-mail", "", "Author email for composer.json and README.md")
	f.BoolVar(&componentOpts.override, "override", false, "Write into a non-empty path without asking")
	rootCmd.AddCommand(componentCmd)
}

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Create an OXID eShop composer component skeleton",
	Long: `Create a composer component for OXID eShop: the package directory, its
autoload source directory, composer.json and README.md. The directories are
set to the requested permission afterwards.

Example:
  oxskel component -o acme/payment -a 'Acme\Payment' -p ./payment -x 0750`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd, componentParams(cmd))
	},
}

func componentParams(cmd *cobra.Command) scaffold.Params {
	p := scaffold.DefaultComponent()
	applyConfig(&p)

	o := componentOpts
	setString(cmd, "vendor", &p.Vendor, o.vendor)
	setString(cmd, "path", &p.Path, o.path)
	setString(cmd, "permission", &p.Permission, o.permission)
	setString(cmd, "description", &p.Description, o.description)
	setString(cmd, "license", &p.License, o.license)
	setString(cmd, "versioning", &p.Version, o.version)
	setString(cmd, "autoload", &p.Autoload, o.autoload)
	setString(cmd, "target", &p.Target, o.target)
	setString(cmd, "author-name", &p.AuthorName, o.authorName)
	setString(cmd, "author-mail", &p.AuthorEmail, o.authorMail)
	setBool(cmd, "override", &p.Override, o.override)
	return p
}
