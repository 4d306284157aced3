package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gp-oxid/oxskel/internal/branding"
	"github.com/gp-oxid/oxskel/internal/config"
	"github.com/gp-oxid/oxskel/internal/logging"
	"github.com/gp-oxid/oxskel/internal/prompt"
	"github.com/gp-oxid/oxskel/internal/skelerr"
	"github.com/gp-oxid/oxskel/internal/templates"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags.
var (
	noInteraction bool
	verbose       bool
	logFormat     string
	templatesDir  string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&noInteraction, "no-interaction", "n", false, "Do not ask any question, use flags, config and built-in defaults")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log every filesystem step to stderr")
	pf.StringVar(&logFormat, "log-format", string(logging.FormatText), "Diagnostic log format: text or json")
	pf.StringVar(&templatesDir, "templates-dir", "", "Directory overriding the built-in templates")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return skelerr.InvalidOption("%v", err)
	})
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the directory layout and boilerplate files of OXID eShop
modules and composer components: composer.json, metadata.php, the module class,
translations, migrations config, README and CHANGELOG.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// reportedError marks an error the scaffold run already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return skelerr.ExitSuccess
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return skelerr.ExitCode(err)
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(
		logging.WithFormat(format),
		logging.WithVerbose(verbose),
		logging.WithWriter(cmd.ErrOrStderr()),
	), nil
}

// newPrompter picks the terminal prompter when stdin is a terminal and a
// line reader otherwise, so answers can be piped in.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	if noInteraction {
		return prompt.Defaults{}
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return prompt.NewSurvey()
	}
	return prompt.NewLine(in, cmd.OutOrStdout())
}

// openStore returns the template store, layered over an override directory
// from --templates-dir or the templates_dir config key.
func openStore() (*templates.Store, error) {
	dir := templatesDir
	if dir == "" {
		dir = config.Get(config.KeyTemplatesDir)
	}
	if dir == "" {
		return templates.New()
	}
	return templates.NewDir(dir)
}
