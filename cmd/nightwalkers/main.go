package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/nightwalkers/internal/archive"
	"pkg.jsn.cam/nightwalkers/pkg/dataset"
	"pkg.jsn.cam/nightwalkers/pkg/generator"
)

/*generates the synthetic night-walk datasets: animals.json (GPS tracks) and encounter.json (pairwise counts)*/

var (
	OutputDir      = flag.String("out", ".", "Directory the dataset files are written to")
	Seed           = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	Datasets       = flag.String("datasets", "animals,encounter", "Comma-separated datasets to generate")
	EncounterCount = flag.Int("encounters", generator.DefaultEncounterCount, "Number of encounter draws")
	ArchivePath    = flag.String("archive", "", "Optional bbolt file to record the run in")
	ListOnly       = flag.Bool("list", false, "List available datasets and exit")
	ListRuns       = flag.Bool("runs", false, "List runs recorded in -archive and exit")
	ReplayID       = flag.String("replay", "", "Regenerate the archived run with this id from -archive")
)

type config struct {
	outputDir   string
	seed        uint64
	datasets    []string
	archivePath string
}

func main() {
	flag.Parse()

	generator.SetEncounterCount(*EncounterCount)

	if *ListOnly {
		for _, name := range generator.List() {
			ds, err := generator.Get(name)
			if err != nil {
				log.Fatalf("Failed to load dataset: %v", err)
			}
			fmt.Printf("  %-10s %-16s %s\n", name, ds.DefaultFile(), ds.Description())
		}
		return
	}

	if *ListRuns || *ReplayID != "" {
		if *ArchivePath == "" {
			log.Fatal("-archive is required with -runs and -replay")
		}
		var err error
		if *ListRuns {
			err = listRuns(*ArchivePath, os.Stdout)
		} else {
			err = replayRun(*ArchivePath, *ReplayID, *OutputDir)
		}
		if err != nil {
			log.Fatalf("Archive command failed: %v", err)
		}
		return
	}

	seed := *Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := config{
		outputDir:   *OutputDir,
		seed:        seed,
		datasets:    splitList(*Datasets),
		archivePath: *ArchivePath,
	}
	if err := run(cfg); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}

// run generates every requested dataset fully in memory, then writes each one.
func run(cfg config) error {
	log.Printf("[GENERATOR] Seed %d", cfg.seed)

	if err := os.MkdirAll(cfg.outputDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", dataset.ErrIOFailure, err)
	}

	var rec *archive.Run
	if cfg.archivePath != "" {
		rec = archive.NewRun(cfg.seed)
	}

	for _, name := range cfg.datasets {
		ds, err := generator.Get(name)
		if err != nil {
			return err
		}
		ds.Init(streamFor(cfg.seed, name))

		doc, err := ds.Generate()
		if err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
		logDocument(name, doc)

		path := filepath.Join(cfg.outputDir, ds.DefaultFile())
		n, err := dataset.WriteFile(path, doc)
		if err != nil {
			return err
		}
		log.Printf("[DATASET] Wrote %s (%s)", path, humanize.Bytes(uint64(n)))
		fmt.Printf("✅ %s has been generated.\n", ds.DefaultFile())

		if rec != nil {
			if err := rec.Add(name, doc); err != nil {
				return err
			}
		}
	}

	if rec == nil {
		return nil
	}
	a, err := archive.Open(cfg.archivePath)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Save(rec)
}

// streamFor gives each dataset its own PCG stream so selecting a subset of
// datasets does not change the others' output for a given seed.
func streamFor(seed uint64, name string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewPCG(seed, h.Sum64()))
}

func logDocument(name string, doc any) {
	switch v := doc.(type) {
	case []generator.AnimalRecord:
		for _, a := range v {
			log.Printf("[GENERATOR] %s", summaryLine(a))
		}
	case []generator.EncounterRecord:
		log.Printf("[GENERATOR] %s: %d encounters", name, len(v))
	}
}

func summaryLine(a generator.AnimalRecord) string {
	s := generator.Summarize(a)
	return fmt.Sprintf("%s: %d points, rest at %d for %d, %.0f m walked, bounds (%.6f, %.6f)..(%.6f, %.6f)",
		a.ID, s.Points, s.Rest.Start, s.Rest.Length, s.LengthMeters,
		s.Min.Lat, s.Min.Lng, s.Max.Lat, s.Max.Lng)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
