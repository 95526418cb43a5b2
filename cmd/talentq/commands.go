package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/talentq"
	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/ingestion"
	"github.com/poiesic/talentq/metrics"
	"github.com/poiesic/talentq/search"
)

func importCommand(c *cli.Context) error {
	if c.NArg() == 0 && c.String("watch") == "" {
		return errors.New("no documents to import: pass FILES or --watch DIR")
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	monitor, err := metrics.NewMonitor(reg)
	if err != nil {
		return err
	}
	opts := []ingestion.Option{ingestion.WithMonitor(monitor)}
	if size := configFrom(c).PoolSize; size > 0 {
		opts = append(opts, ingestion.WithPoolSize(size))
	}
	importer, err := db.NewImporter(opts...)
	if err != nil {
		return err
	}
	defer importer.Release()

	var files []string
	stats := &ingestion.ImportStats{}
	var errs []error
	for _, arg := range c.Args().Slice() {
		if arg != "-" {
			files = append(files, arg)
			continue
		}
		s, err := importer.ImportReader(ctx, "stdin", c.App.Reader)
		errs = append(errs, err)
		addStats(stats, s)
	}
	if len(files) > 0 {
		s, err := importer.ImportFiles(ctx, files...)
		errs = append(errs, err)
		addStats(stats, s)
	}

	out := c.App.Writer
	if c.NArg() > 0 {
		fmt.Fprintf(out, "files: %d, imported: %d (new: %d), skipped: %d\n",
			stats.Files, stats.Imported, stats.Created, stats.Skipped)
	}

	if dir := c.String("watch"); dir != "" {
		errs = append(errs, importer.Watch(ctx, dir))
	}

	if c.Bool("stats") {
		if err := writeMetrics(out, reg); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func addStats(dst, src *ingestion.ImportStats) {
	if src == nil {
		return
	}
	dst.Files += src.Files
	dst.Imported += src.Imported
	dst.Created += src.Created
	dst.Skipped += src.Skipped
}

func searchCommand(c *cli.Context) error {
	saved := c.String("saved")
	if saved == "" && c.NArg() != 1 {
		return errors.New("search takes exactly one QUERY argument (quote it) or --saved NAME")
	}
	if saved != "" && c.NArg() > 0 {
		return errors.New("QUERY and --saved are mutually exclusive")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	opts := searchOptions(c)
	if c.Bool("stats") {
		monitor, err := metrics.NewMonitor(reg)
		if err != nil {
			return err
		}
		opts = append(opts, search.WithMonitor(monitor))
	}
	searcher, err := db.NewSearcher(opts...)
	if err != nil {
		return err
	}
	defer searcher.Release()

	var matches []*core.Match
	if saved != "" {
		matches, err = searcher.FilterSaved(c.Context, db.SavedQueryRepository(), saved, c.Int("limit"))
		if talentq.IsNotFound(err) {
			return fmt.Errorf("saved query %q not found", saved)
		}
	} else {
		matches, err = searcher.Filter(c.Context, c.Args().First(), c.Int("limit"))
	}
	if err != nil {
		return err
	}

	out := c.App.Writer
	for _, m := range matches {
		writeMatch(out, m)
	}
	fmt.Fprintf(out, "%d match(es)\n", len(matches))

	if c.Bool("stats") {
		return writeMetrics(out, reg)
	}
	return nil
}

func writeMatch(w io.Writer, m *core.Match) {
	p := m.Profile
	fmt.Fprintf(w, "%s <%s>", p.User.FullName, p.User.Email)
	if p.Candidate.Headline != "" {
		fmt.Fprintf(w, " - %s", p.Candidate.Headline)
	}
	if p.Candidate.Location != "" {
		fmt.Fprintf(w, " (%s)", p.Candidate.Location)
	}
	fmt.Fprintln(w)
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func validateCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	result := engine.Validate(strings.Join(c.Args().Slice(), " "))
	if err := result.Err(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "valid")
	return nil
}

func suggestCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	for _, s := range engine.Suggest(strings.Join(c.Args().Slice(), " ")) {
		fmt.Fprintln(c.App.Writer, s.Label)
	}
	return nil
}

func saveQueryCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("save-query takes NAME and QUERY")
	}
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	saved, err := db.SaveQuery(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "saved %s\n", saved.Name)
	return nil
}

func listQueriesCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	queries, err := db.SavedQueryRepository().ListQueries(c.Context)
	if err != nil {
		return err
	}
	for _, q := range queries {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", q.Name, q.Query)
	}
	return nil
}

func deleteQueryCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("delete-query takes NAME")
	}
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	name := c.Args().First()
	if err := db.SavedQueryRepository().DeleteQuery(c.Context, name); err != nil {
		if talentq.IsNotFound(err) {
			return fmt.Errorf("saved query %q not found", name)
		}
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", name)
	return nil
}
