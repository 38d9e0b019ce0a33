// Package app implements the application layer for cask.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/cask/internal/adapters/store"
	"go.trai.ch/cask/internal/adapters/watcher"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/cask/internal/engine/receipt"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	store        ports.ReceiptStore
	loader       ports.CaskLoader
	factory      *receipt.Factory
	room         ports.Caskroom
	taps         ports.TapResolver
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
	fingerprints ports.Fingerprinter
	out          io.Writer
}

// New creates a new App instance.
func New(
	store ports.ReceiptStore,
	loader ports.CaskLoader,
	factory *receipt.Factory,
	room ports.Caskroom,
	taps ports.TapResolver,
	log ports.Logger,
	tracer ports.Tracer,
	watch ports.Watcher,
	fingerprints ports.Fingerprinter,
) *App {
	return &App{
		store:        store,
		loader:       loader,
		factory:      factory,
		room:         room,
		taps:         taps,
		logger:       log,
		tracer:       tracer,
		watcher:      watch,
		fingerprints: fingerprints,
		out:          os.Stdout,
	}
}

// WithOutput redirects result output. Intended for tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// ShowOptions configuration for the Show method.
type ShowOptions struct {
	JSON bool
}

// Show prints the install receipt for a target. A target naming an existing
// cask definition file synthesizes the receipt for it, any other existing
// file is loaded as a receipt document, and everything else is treated as an
// installed cask token.
func (a *App) Show(ctx context.Context, target string, opts ShowOptions) error {
	_, span := a.tracer.Start(ctx, "receipt.load")
	defer span.End()
	span.SetAttribute("target", target)

	rec, err := a.receiptFor(target)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if opts.JSON {
		return a.writeReceiptJSON(rec)
	}

	a.printReceipt(rec)
	return nil
}

// receiptFor maps a CLI target to a receipt. Definition files go through the
// factory so casks without a written receipt still yield an inspectable
// document; receipt paths and tokens go through the store.
func (a *App) receiptFor(target string) (*domain.Receipt, error) {
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		if isDefinition(target) {
			cask, err := a.loader.Load(target)
			if err != nil {
				return nil, err
			}
			return a.factory.ForCask(cask)
		}
		return a.store.Load(target)
	}

	versions, err := a.room.Versions(target)
	if err != nil {
		return nil, err
	}

	// Versions are ordered oldest first; show the newest install.
	newest := versions[len(versions)-1]
	return a.store.Load(a.room.ReceiptPath(target, newest))
}

func isDefinition(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// ListOptions configuration for the List method.
type ListOptions struct {
	JSON bool
}

// listEntry is one installed cask version together with its receipt.
type listEntry struct {
	token   string
	version string
	path    string
	receipt *domain.Receipt
}

// List prints one line per installed cask version: token, version, install
// reason, and install date.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	_, span := a.tracer.Start(ctx, "app.list")
	defer span.End()

	entries, err := a.installedReceipts(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("receipts", len(entries))

	if opts.JSON {
		return a.writeListJSON(entries)
	}

	a.printList(entries)
	return nil
}

// installedReceipts loads the receipt of every installed cask version. File
// reads fan out across goroutines; parsing stays on the calling goroutine
// because the store cache is not safe for concurrent use.
func (a *App) installedReceipts(ctx context.Context) ([]listEntry, error) {
	tokens, err := a.room.Tokens()
	if err != nil {
		return nil, err
	}

	var entries []listEntry
	for _, token := range tokens {
		versions, err := a.room.Versions(token)
		if err != nil {
			return nil, err
		}
		for _, version := range versions {
			entries = append(entries, listEntry{
				token:   token,
				version: version,
				path:    a.room.ReceiptPath(token, version),
			})
		}
	}

	bodies := make([][]byte, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			//nolint:gosec // Path is derived from the caskroom layout
			data, err := os.ReadFile(entry.path)
			if os.IsNotExist(err) {
				// An installed version without a receipt lists as unknown.
				return nil
			}
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrReceiptReadFailed.Error()), "path", entry.path)
			}
			bodies[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range entries {
		rec, err := a.store.LoadRaw(entries[i].path, bodies[i])
		if err != nil {
			return nil, err
		}
		entries[i].receipt = rec
	}
	return entries, nil
}

// RecordOptions configuration for the Record method.
type RecordOptions struct {
	OnRequest    bool
	AsDependency bool
}

// Record builds the install receipt for a cask definition and persists it to
// the cask's metadata directory, the way an installer records a completed
// install.
func (a *App) Record(ctx context.Context, definitionPath string, opts RecordOptions) error {
	cask, err := a.loader.Load(definitionPath)
	if err != nil {
		return err
	}

	rec, err := a.createReceipt(ctx, cask)
	if err != nil {
		return err
	}

	rec.InstalledOnRequest = opts.OnRequest
	rec.InstalledAsDependency = opts.AsDependency

	if err := a.writeReceipt(ctx, rec); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("recorded receipt for %s %s", cask.Token(), cask.Version()))
	return nil
}

func (a *App) createReceipt(ctx context.Context, cask ports.Cask) (*domain.Receipt, error) {
	ctx, span := a.tracer.Start(ctx, "receipt.create")
	defer span.End()
	span.SetAttribute("token", cask.Token())

	rec, err := a.factory.Create(ctx, cask)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return rec, nil
}

func (a *App) writeReceipt(ctx context.Context, rec *domain.Receipt) error {
	_, span := a.tracer.Start(ctx, "receipt.write")
	defer span.End()
	span.SetAttribute("path", rec.Path)

	if err := a.store.Write(rec); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Watch reloads receipts as installers rewrite them, until ctx is canceled.
// Events are debounced per path, and a reload only fires when the file
// content fingerprint actually changed.
func (a *App) Watch(ctx context.Context) error {
	root := a.room.Root()

	debounced := watcher.NewDebouncer(watcher.DefaultDebounceWindow, a.reloadReceipts)

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + root)

	for event := range a.watcher.Events() {
		if filepath.Base(event.Path) != domain.ReceiptFileName {
			continue
		}

		switch event.Operation {
		case ports.OpRemove, ports.OpRename:
			a.fingerprints.Forget(event.Path)
			a.logger.Info("receipt removed: " + event.Path)
		case ports.OpCreate, ports.OpWrite:
			debounced.Add(event.Path)
		}
	}

	debounced.Flush()
	return nil
}

// reloadReceipts re-parses changed receipt files and logs the result. Reads
// bypass the store's read cache, which would otherwise hand back the receipt
// from before the rewrite.
func (a *App) reloadReceipts(paths []string) {
	for _, path := range paths {
		changed, err := a.fingerprints.Changed(path)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if !changed {
			continue
		}

		//nolint:gosec // Path comes from watch events under the caskroom
		data, err := os.ReadFile(path)
		if err != nil {
			a.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrReceiptReadFailed.Error()), "path", path))
			continue
		}

		rec, err := a.store.LoadRaw(path, data)
		if err != nil {
			a.logger.Error(err)
			continue
		}

		a.logger.Info(fmt.Sprintf("receipt updated: %s (%s)", path, listReason(rec)))
	}
}

// printReceipt renders the human readable receipt view: the summary line
// followed by the facts the receipt carries. Empty fields are omitted.
func (a *App) printReceipt(rec *domain.Receipt) {
	fmt.Fprintln(a.out, rec.Summary())

	if reason := installReason(rec); reason != "" {
		fmt.Fprintln(a.out, "reason: "+reason)
	}
	if rec.Source.Version != "" {
		fmt.Fprintln(a.out, "version: "+rec.Source.Version)
	}
	if rec.Arch != "" {
		fmt.Fprintln(a.out, "arch: "+rec.Arch)
	}
	if rec.Source.Path != "" {
		fmt.Fprintln(a.out, "source: "+rec.Source.Path)
	}
	a.printTap(rec)
	printRecords(a.out, "casks", rec.Records(domain.KindCask))
	printRecords(a.out, "formulae", rec.Records(domain.KindFormula))
}

// printTap names the source tap and whether its clone is still present. A
// recorded tap the resolver does not recognize prints without a state.
func (a *App) printTap(rec *domain.Receipt) {
	if rec.Source.Tap == "" {
		return
	}

	tap := receipt.TapOf(rec, a.taps)
	if tap == nil {
		fmt.Fprintln(a.out, "tap: "+rec.Source.Tap)
		return
	}

	state := "not installed"
	if tap.Installed() {
		state = "installed"
	}
	fmt.Fprintf(a.out, "tap: %s (%s)\n", tap.Name(), state)
}

func printRecords(w io.Writer, label string, records []domain.DependencyRecord) {
	if len(records) == 0 {
		return
	}

	parts := make([]string, 0, len(records))
	for _, rec := range records {
		version := rec.Version
		if rec.PkgVersion != "" {
			version = rec.PkgVersion
		}
		parts = append(parts, rec.FullName+" "+version)
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(parts, ", "))
}

// printList renders aligned rows, newest version of a token last.
func (a *App) printList(entries []listEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "no casks installed")
		return
	}

	tokenWidth, versionWidth, reasonWidth := 0, 0, 0
	for _, entry := range entries {
		tokenWidth = max(tokenWidth, len(entry.token))
		versionWidth = max(versionWidth, len(entry.version))
		reasonWidth = max(reasonWidth, len(listReason(entry.receipt)))
	}

	for _, entry := range entries {
		date := "-"
		if at, ok := entry.receipt.InstalledAt(); ok {
			date = at.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(a.out, "%-*s  %-*s  %-*s  %s\n",
			tokenWidth, entry.token,
			versionWidth, entry.version,
			reasonWidth, listReason(entry.receipt),
			date)
	}
}

// installReason renders the receipt's install-reason flags, empty when the
// receipt records neither flag.
func installReason(rec *domain.Receipt) string {
	switch {
	case rec.InstalledOnRequest && rec.InstalledAsDependency:
		return "on request, dependency"
	case rec.InstalledOnRequest:
		return "on request"
	case rec.InstalledAsDependency:
		return "dependency"
	default:
		return ""
	}
}

func listReason(rec *domain.Receipt) string {
	if reason := installReason(rec); reason != "" {
		return reason
	}
	return "unknown"
}

func (a *App) writeReceiptJSON(rec *domain.Receipt) error {
	body, err := store.Encode(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrReceiptEncodeFailed.Error())
	}
	_, err = a.out.Write(body)
	return err
}

// listEntryJSON is the machine readable list row.
type listEntryJSON struct {
	Token                 string `json:"token"`
	Version               string `json:"version"`
	InstalledOnRequest    bool   `json:"installed_on_request"`
	InstalledAsDependency bool   `json:"installed_as_dependency"`
	Time                  *int64 `json:"time"`
	Tap                   string `json:"tap,omitempty"`
}

func (a *App) writeListJSON(entries []listEntry) error {
	rows := make([]listEntryJSON, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, listEntryJSON{
			Token:                 entry.token,
			Version:               entry.version,
			InstalledOnRequest:    entry.receipt.InstalledOnRequest,
			InstalledAsDependency: entry.receipt.InstalledAsDependency,
			Time:                  entry.receipt.Time,
			Tap:                   entry.receipt.Source.Tap,
		})
	}

	enc := json.NewEncoder(a.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
