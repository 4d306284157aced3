package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gp-oxid/oxskel/internal/fspath"
	"github.com/gp-oxid/oxskel/internal/layout"
	"github.com/gp-oxid/oxskel/internal/logging"
	"github.com/gp-oxid/oxskel/internal/manifest"
	"github.com/gp-oxid/oxskel/internal/platform"
	"github.com/gp-oxid/oxskel/internal/prompt"
	"github.com/gp-oxid/oxskel/internal/skelerr"
	"github.com/gp-oxid/oxskel/internal/templates"
)

// Result is the outcome of one run.
type Result struct {
	State     State
	Trace     []State
	Params    Params
	Root      string
	Target    string
	Planned   []string
	Created   []string
	Files     []string
	Warnings  []string
	DirErrors int
	Err       error
}

// ExitCode maps the outcome to the process exit code.
func (r *Result) ExitCode() int {
	if r.State == StateDone {
		return skelerr.ExitSuccess
	}
	return skelerr.ExitCode(r.Err)
}

// Orchestrator runs the scaffold sequence.
type Orchestrator struct {
	store       *templates.Store
	prompter    prompt.Prompter
	log         *slog.Logger
	out         io.Writer
	interactive bool
	cwd         string
	now         func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(o *Orchestrator) { o.out = w }
}

// WithInteractive marks whether a user answers the prompts. Non-interactive
// runs proceed with the given directories unless the destination is
// populated and override is not set.
func WithInteractive(interactive bool) Option {
	return func(o *Orchestrator) { o.interactive = interactive }
}

// WithWorkingDir sets the directory relative paths are resolved against.
func WithWorkingDir(dir string) Option {
	return func(o *Orchestrator) { o.cwd = dir }
}

// WithClock sets the time source used for changelog dates.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New returns an Orchestrator reading templates from store and asking
// questions through prompter.
func New(store *templates.Store, prompter prompt.Prompter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:       store,
		prompter:    prompter,
		log:         logging.Discard(),
		out:         io.Discard,
		interactive: true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = fspath.Separator
		}
		o.cwd = wd
	}
	return o
}

// Run executes one scaffold invocation starting from defaults. It never
// returns a nil Result; failures are reported through Result.State and
// Result.Err.
func (o *Orchestrator) Run(defaults Params) *Result {
	res := &Result{}

	o.enter(res, StateCollectingParameters)
	p, err := o.collect(defaults)
	if err != nil {
		return o.fail(res, err)
	}
	res.Params = p

	r := &run{
		params: p,
		root:   fspath.Resolve(p.Path, o.cwd),
		now:    o.now(),
		store:  o.store,
	}
	r.target = fspath.Join(r.root, p.Target)
	res.Root, res.Target = r.root, r.target

	o.enter(res, StateConfirmingDestination)
	if err := o.confirm(r, res); err != nil {
		return o.fail(res, err)
	}

	o.enter(res, StateCreatingDirectories)
	if err := o.createDirs(r, res); err != nil {
		return o.fail(res, err)
	}

	o.enter(res, StateRenderingArtifacts)
	if err := o.writeArtifacts(r, res); err != nil {
		return o.fail(res, err)
	}

	o.enter(res, StateDone)
	fmt.Fprintf(o.out, "... %s created at %s\n", p.Kind, r.root)
	return res
}

func (o *Orchestrator) enter(res *Result, s State) {
	level := slog.LevelDebug
	if s.Terminal() {
		level = slog.LevelInfo
	}
	o.log.Log(context.Background(), level, "scaffold state", "from", res.State.String(), "to", s.String())
	res.State = s
	res.Trace = append(res.Trace, s)
}

func (o *Orchestrator) fail(res *Result, err error) *Result {
	res.Err = err
	if skelerr.Is(err, skelerr.KindAborted) {
		o.enter(res, StateAborted)
		o.log.Info("scaffold aborted", "reason", err.Error())
		fmt.Fprintf(o.out, "Skipping: %v\n", err)
		return res
	}

	kind := skelerr.KindOf(err)
	if kind == "" {
		kind = skelerr.KindIO
	}
	o.enter(res, StateFailed)
	o.log.Error("scaffold failed", "kind", string(kind), "root", res.Root, "error", err)
	fmt.Fprintf(o.out, "%s: %v\n", kind, err)
	return res
}

func (o *Orchestrator) collect(d Params) (Params, error) {
	p := d
	var err error
	ask := func(dst *string, question string) {
		if err == nil {
			*dst, err = o.prompter.Ask(question, *dst)
		}
	}
	confirm := func(dst *bool, question string) {
		if err == nil {
			*dst, err = o.prompter.Confirm(question, *dst)
		}
	}

	switch d.Kind {
	case KindModule:
		ask(&p.Path, "Enter installation path")
		ask(&p.Vendor, "Enter composer vendor")
		ask(&p.Autoload, "Enter module namespace")
		ask(&p.ID, "Enter module ID")
		ask(&p.Title, "Enter metadata title")
		ask(&p.Description, "Enter composer & metadata description")
		ask(&p.License, "Enter composer license")
		ask(&p.Version, "Enter composer & metadata version string")
		ask(&p.Target, "Enter autoload target directory")
		ask(&p.Variant, "Enter template variant (none, smarty, twig, both)")
		ask(&p.AuthorName, "Enter author name")
		ask(&p.AuthorEmail, "Enter author email")
		confirm(&p.Readme, "Create README.md?")
		confirm(&p.Changelog, "Create CHANGELOG.md?")
	case KindComponent:
		ask(&p.Vendor, "Enter composer vendor like <vendor>/<name>")
		ask(&p.Path, "Enter path where to write the component files into")
		ask(&p.Permission, "Enter file permissions like 0755")
		ask(&p.Description, "Enter description")
		ask(&p.License, "Enter license name")
		ask(&p.Version, "Enter desired version")
		ask(&p.Autoload, "Define autoload namespace in psr-4")
		ask(&p.Target, "Target of your autoload class")
		ask(&p.AuthorName, "Your author name")
		ask(&p.AuthorEmail, "Your author email")
	default:
		return d, skelerr.InvalidOption("unknown scaffold kind %q", d.Kind)
	}
	if err != nil {
		return d, fmt.Errorf("collecting parameters: %w", err)
	}
	return p.Validate()
}

func (o *Orchestrator) confirm(r *run, res *Result) error {
	fmt.Fprintf(o.out, "\nRoot directory is: %s\n", r.root)
	fmt.Fprintf(o.out, "Autoload source directory is: %s\n\n", r.target)

	ok, err := o.prompter.Confirm("Do you want to proceed with the given directories?", !o.interactive)
	if err != nil {
		return err
	}
	if !ok {
		return skelerr.Aborted("user aborted skeleton creation")
	}

	if err := checkAncestors(r.root); err != nil {
		return err
	}
	empty, exists, err := platform.IsEmptyDir(r.root)
	if err != nil {
		if skelerr.Is(err, skelerr.KindInvalidOption) {
			return err
		}
		return skelerr.IO("failed to inspect destination", "path", r.root, err)
	}
	if !exists || empty {
		return nil
	}

	question := fmt.Sprintf("Path [%s] is not empty. Do you want to proceed? This may override files", r.root)
	ok, err = o.prompter.Confirm(question, r.params.Override)
	if err != nil {
		return err
	}
	if !ok {
		return skelerr.Aborted("path [%s] is not empty", r.root)
	}
	fmt.Fprintf(o.out, "Overriding path [%s] ...\n", r.root)
	if warn := o.replacedPackage(r); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}
	return nil
}

// replacedPackage reports when the destination already holds the manifest of
// a different package, which the run is about to replace.
func (o *Orchestrator) replacedPackage(r *run) string {
	path := fspath.Join(r.root, ArtifactComposer)
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	existing, err := manifest.Parse(data)
	if err != nil {
		o.log.Debug("existing manifest unreadable", "path", path, "error", err)
		return ""
	}
	if existing.Name == "" || existing.Name == r.params.Vendor {
		return ""
	}
	fmt.Fprintf(o.out, "Replacing manifest of package %s\n", existing.Name)
	return fmt.Sprintf("%s of package %s is replaced by %s", ArtifactComposer, existing.Name, r.params.Vendor)
}

// checkAncestors rejects a destination below an existing non-directory.
func checkAncestors(path string) error {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return skelerr.InvalidOption("path [%s] is not creatable: [%s] is not a directory", path, dir)
			}
			return nil
		}
		if dir == filepath.Dir(dir) {
			return nil
		}
	}
}

func (o *Orchestrator) createDirs(r *run, res *Result) error {
	var dirs []string
	if r.params.Kind == KindComponent {
		dirs = layout.PlanComponent(r.root, r.target)
	} else {
		v, err := layout.ParseVariant(r.params.Variant)
		if err != nil {
			return err
		}
		dirs = layout.Plan(r.root, r.target, v)
	}
	res.Planned = dirs

	fmt.Fprintln(o.out, "Setting up folders...")
	for _, dir := range dirs {
		_, statErr := os.Stat(dir)
		existed := statErr == nil
		if err := os.MkdirAll(dir, platform.DirPerm); err != nil {
			res.DirErrors++
			o.log.Error("creating directory", "dir", dir, "error", err)
			fmt.Fprintf(o.out, "Failed to create path %s\n", dir)
			continue
		}
		if !existed {
			res.Created = append(res.Created, dir)
		}
		o.log.Debug("created directory", "dir", dir, "existed", existed)
		fmt.Fprintf(o.out, "Added path %s\n", dir)
	}

	if res.DirErrors > 0 {
		return skelerr.IO(fmt.Sprintf("failed to create folders, %d in total", res.DirErrors), "layout", r.root, nil)
	}
	return nil
}

func (o *Orchestrator) writeArtifacts(r *run, res *Result) error {
	arts := r.moduleArtifacts()
	if r.params.Kind == KindComponent {
		arts = r.componentArtifacts()
	}

	failed := 0
	for _, a := range arts {
		err := o.write(r, a)
		if err == nil {
			res.Files = append(res.Files, a.dest)
			fmt.Fprintf(o.out, "Saved %s %s\n", a.describe(), a.dest)
			if a.name == ArtifactComposer {
				res.Warnings = append(res.Warnings, composerWarnings(a.dest)...)
			}
			continue
		}

		o.log.Error("writing artifact", "artifact", a.name, "path", a.dest, "fatal", a.fatal, "error", err)
		fmt.Fprintf(o.out, "Failed to write %s to [%s]\n", a.name, a.dest)
		switch {
		case a.fatal:
			return err
		case a.optional:
			res.Warnings = append(res.Warnings, err.Error())
		default:
			failed++
		}
	}

	if r.params.Kind == KindComponent {
		res.Warnings = append(res.Warnings, o.applyPermission(r)...)
	}

	if failed > 0 {
		return skelerr.IO(fmt.Sprintf("failed to write artifacts, %d in total", failed), "artifacts", r.root, nil)
	}
	return nil
}

func (o *Orchestrator) write(r *run, a artifact) error {
	if err := os.MkdirAll(filepath.Dir(a.dest), platform.DirPerm); err != nil {
		return skelerr.IO("failed to create directory for", a.name, a.dest, err)
	}
	if a.template != nil {
		return r.store.Copy(a.dest, a.template...)
	}

	data, err := a.build()
	if err != nil {
		if skelerr.KindOf(err) != "" {
			return err
		}
		return skelerr.IO("failed to render", a.name, a.dest, err)
	}
	if err := os.WriteFile(a.dest, data, platform.FilePerm); err != nil {
		return skelerr.IO("failed to write template", a.name, a.dest, err)
	}
	return nil
}

// composerWarnings checks the manifest as written to path.
func composerWarnings(path string) []string {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("could not validate %s: %v", ArtifactComposer, err)}
	}
	var out []string
	for _, msg := range result.Messages() {
		out = append(out, ArtifactComposer+" "+msg)
	}
	return out
}

// applyPermission changes the component directories to the requested mode,
// innermost first so the root stays traversable until the end.
func (o *Orchestrator) applyPermission(r *run) []string {
	mode, err := platform.ParseMode(r.params.Permission)
	if err != nil {
		return []string{err.Error()}
	}

	dirs := []string{r.target}
	if r.root != r.target {
		dirs = append(dirs, r.root)
	}

	var warnings []string
	for _, dir := range dirs {
		if err := platform.Chmod(dir, mode); err != nil {
			o.log.Warn("changing permissions", "dir", dir, "mode", fmt.Sprintf("%04o", mode), "error", err)
			warnings = append(warnings, fmt.Sprintf("could not set permissions %04o on %s: %v", mode, dir, err))
		}
	}
	return warnings
}
