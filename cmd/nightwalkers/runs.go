package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"pkg.jsn.cam/nightwalkers/internal/archive"
)

// listRuns prints every archived run, oldest first.
func listRuns(archivePath string, w io.Writer) error {
	a, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer a.Close()

	runs, err := a.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs archived.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "  %s  seed %-20d %-14s %s\n",
			r.ID, r.Seed, humanize.Time(r.CreatedAt), strings.Join(datasetNames(r), ","))
	}
	return nil
}

// replayRun regenerates the datasets of an archived run from its stored seed
// into outputDir. The replay itself is not archived.
func replayRun(archivePath, id, outputDir string) error {
	runID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", id, err)
	}

	a, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	r, err := a.Load(runID)
	a.Close()
	if err != nil {
		return err
	}

	return run(config{
		outputDir: outputDir,
		seed:      r.Seed,
		datasets:  datasetNames(r),
	})
}

func datasetNames(r *archive.Run) []string {
	names := make([]string, 0, len(r.Datasets))
	for name := range r.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
