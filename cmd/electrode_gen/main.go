package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"fpnpower/domain/electrode"
	"fpnpower/internal/config"
	"fpnpower/internal/fixtures"
)

func main() {
	out := flag.String("out", ".", "output directory")
	electrodes := flag.Int("electrodes", 120, "electrodes per band")
	format := flag.String("format", "csv", "output format: csv or xlsx")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	significant := flag.Float64("significant", 0.4, "fraction of electrodes with p < 0.05")
	networks := flag.String("networks", "FPN,DMN,CON,motor", "comma separated network labels")
	flag.Parse()

	if *electrodes <= 0 {
		fmt.Fprintln(os.Stderr, "electrodes must be > 0")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName != "csv" && fmtName != "xlsx" {
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}

	cfg := fixtures.DefaultConfig()
	cfg.Electrodes = *electrodes
	cfg.Seed = *seed
	cfg.SignificantFraction = *significant
	cfg.Networks = splitList(*networks)

	files := config.DefaultBandFiles()
	if fmtName == "xlsx" {
		for band, name := range files {
			files[band] = strings.TrimSuffix(name, ".csv") + ".xlsx"
		}
	}

	written, err := fixtures.WriteBands(*out, files, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error generating band files:", err)
		os.Exit(1)
	}

	for _, ds := range written {
		fmt.Printf("%-10s %s (%d electrodes)\n", ds.Band, files[ds.Band], len(ds.Rows))
	}
	fmt.Printf("Total bands: %d of %d\n", len(written), len(electrode.AllBands))
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
