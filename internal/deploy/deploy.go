// Package deploy renders a template and writes the result to every
// destination its location profile names.
package deploy

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/mcpdeck/mcpdeck/internal/history"
	"github.com/mcpdeck/mcpdeck/internal/location"
	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/internal/template"
	"github.com/mcpdeck/mcpdeck/pkg/fileutil"
)

// ErrDeployIO marks a per-destination directory or write failure. It never
// aborts the remaining destinations.
var ErrDeployIO = errors.New("deployment write failed")

// DefaultFilePerm is the mode for rendered artifacts and deployed configs.
const DefaultFilePerm = 0o644

// Write is the outcome for one destination path.
type Write struct {
	Path string
	Err  error
}

// OK reports whether the destination was written.
func (w Write) OK() bool { return w.Err == nil }

// Result summarizes one deployment.
type Result struct {
	Template string
	Profile  string
	Servers  []string
	Artifact string
	Writes   []Write
}

// Failed returns the destinations that could not be written.
func (r *Result) Failed() []Write {
	var failed []Write
	for _, w := range r.Writes {
		if !w.OK() {
			failed = append(failed, w)
		}
	}
	return failed
}

// OK reports whether every destination was written.
func (r *Result) OK() bool { return len(r.Failed()) == 0 }

// Deployer composes rendering, resolution, and file writes.
type Deployer struct {
	resolver  *location.Resolver
	log       *history.Log
	logger    *slog.Logger
	outputDir string
}

// New returns a deployer staging artifacts in outputDir.
func New(resolver *location.Resolver, log *history.Log, logger *slog.Logger, outputDir string) *Deployer {
	return &Deployer{
		resolver:  resolver,
		log:       log,
		logger:    logger,
		outputDir: outputDir,
	}
}

// Deploy renders the selected servers once, stages the artifact, then
// writes it to every resolved destination. Destination failures are
// independent: one unwritable path is recorded and the rest still get
// written. Render and resolution failures abort before anything is written.
// One audit entry summarizes the whole deployment; it records the server
// names actually rendered, so stale selection entries never show up as
// deployed.
func (d *Deployer) Deploy(tpl *template.Template, selected []string, profileName string, ctx location.Context) (*Result, error) {
	rendered := tpl.Ordered(selected)
	content, err := tpl.Render(rendered)
	if err != nil {
		return nil, errors.Wrapf(err, "rendering %s", tpl.Filename)
	}

	destinations, err := d.resolver.Resolve(profileName, tpl.Filename, ctx)
	if err != nil {
		return nil, err
	}

	artifact, err := d.stage(tpl.Filename, content)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Template: tpl.Filename,
		Profile:  profileName,
		Servers:  rendered,
		Artifact: artifact,
		Writes:   make([]Write, 0, len(destinations)),
	}

	for _, dest := range destinations {
		werr := writeDestination(dest, content)
		result.Writes = append(result.Writes, Write{Path: dest, Err: werr})
		if werr != nil {
			d.logger.Warn("deploy failed", "template", tpl.Filename, "path", dest, "error", werr)
			continue
		}
		d.logger.Info("deployed", "template", tpl.Filename, "path", dest)
	}

	d.log.Append(history.EventDeploy, d.auditDetails(result))
	return result, nil
}

// stage writes the rendered artifact to the output directory and returns
// its path.
func (d *Deployer) stage(filename, content string) (string, error) {
	if err := paths.EnsureDir(d.outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating output dir")
	}
	artifact := filepath.Join(d.outputDir, filename)
	if err := fileutil.AtomicWriteFile(artifact, []byte(content), DefaultFilePerm); err != nil {
		return "", errors.Wrapf(err, "staging %s", filename)
	}
	return artifact, nil
}

// writeDestination creates missing parents and overwrites dest in full.
func writeDestination(dest string, content string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.Wrapf(ErrDeployIO, "creating %s: %v", filepath.Dir(dest), err)
	}
	if err := fileutil.AtomicWriteFile(dest, []byte(content), DefaultFilePerm); err != nil {
		return errors.Wrapf(ErrDeployIO, "writing %s: %v", dest, err)
	}
	return nil
}

func (d *Deployer) auditDetails(result *Result) map[string]any {
	dests := make([]map[string]any, 0, len(result.Writes))
	for _, w := range result.Writes {
		detail := map[string]any{"path": w.Path, "ok": w.OK()}
		if w.Err != nil {
			detail["error"] = w.Err.Error()
		}
		dests = append(dests, detail)
	}
	return map[string]any{
		"template":     result.Template,
		"profile":      result.Profile,
		"servers":      result.Servers,
		"artifact":     result.Artifact,
		"destinations": dests,
	}
}
