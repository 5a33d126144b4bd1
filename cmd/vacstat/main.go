package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"vacstat/internal"
	"vacstat/internal/config"
	"vacstat/internal/parser"
	"vacstat/internal/report"
	"vacstat/internal/stats"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "report:table":
		input, profession, _ := reportFlags(cmd, "")
		bundle, ok := buildStats(cfg, input, profession)
		if !ok {
			return
		}
		report.WriteTables(os.Stdout, bundle)
		fmt.Printf("table done vacancies=%d dropped=%d\n", bundle.Total, bundle.Dropped)
	case "report:xlsx":
		input, profession, out := reportFlags(cmd, filepath.Join(cfg.OutputDir, "report.xlsx"))
		bundle, ok := buildStats(cfg, input, profession)
		if !ok {
			return
		}
		must(report.WriteXLSX(bundle, out))
		fmt.Printf("xlsx done vacancies=%d dropped=%d output=%s\n", bundle.Total, bundle.Dropped, out)
	case "report:charts":
		input, profession, out := reportFlags(cmd, cfg.OutputDir)
		bundle, ok := buildStats(cfg, input, profession)
		if !ok {
			return
		}
		written, err := report.WriteCharts(bundle, out)
		must(err)
		fmt.Printf("charts done vacancies=%d dropped=%d images=%d dir=%s\n", bundle.Total, bundle.Dropped, len(written), out)
	case "report:html":
		input, profession, out := reportFlags(cmd, filepath.Join(cfg.OutputDir, "report.html"))
		bundle, ok := buildStats(cfg, input, profession)
		if !ok {
			return
		}
		must(report.WriteHTML(bundle, out))
		fmt.Printf("html done vacancies=%d dropped=%d output=%s\n", bundle.Total, bundle.Dropped, out)
	case "report:pdf":
		input, profession, out := reportFlags(cmd, filepath.Join(cfg.OutputDir, "report.pdf"))
		bundle, ok := buildStats(cfg, input, profession)
		if !ok {
			return
		}
		must(report.WritePDF(bundle, out))
		fmt.Printf("pdf done vacancies=%d dropped=%d output=%s\n", bundle.Total, bundle.Dropped, out)
	case "stats:json":
		input, profession, _ := reportFlags(cmd, "")
		bundle, ok := buildStats(cfg, input, profession)
		if !ok {
			return
		}
		must(report.WriteJSON(os.Stdout, bundle))
	case "vacancies:table":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input csv path")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}
		records, dropped, err := parser.ReadFile(*input)
		if handleEmpty(err) {
			return
		}
		must(err)
		report.WriteVacancies(os.Stdout, records)
		fmt.Printf("table done vacancies=%d dropped=%d\n", len(records), dropped)
	default:
		usage()
		os.Exit(1)
	}
}

func reportFlags(cmd, defaultOut string) (input, profession, out string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	inputFlag := fs.String("input", "", "input csv path")
	professionFlag := fs.String("profession", "", "profession substring to filter by")
	outFlag := fs.String("out", defaultOut, "output path")
	_ = fs.Parse(os.Args[2:])
	if *inputFlag == "" || *professionFlag == "" {
		must(fmt.Errorf("--input and --profession are required"))
	}
	return *inputFlag, *professionFlag, *outFlag
}

// buildStats parses the input and aggregates it. The second return value is
// false when the input was empty: a message is printed and no artifact
// should be produced.
func buildStats(cfg config.Config, input, profession string) (*internal.Statistics, bool) {
	records, dropped, err := parser.ReadFile(input)
	if handleEmpty(err) {
		return nil, false
	}
	must(err)

	bundle := stats.New(profession, cfg.SignificantShare, cfg.TopCities).Run(records)
	bundle.Dropped = dropped
	return bundle, true
}

func handleEmpty(err error) bool {
	if errors.Is(err, parser.ErrEmptyFile) {
		fmt.Println("empty input file: no statistics to report")
		return true
	}
	return false
}

func usage() {
	fmt.Println("usage: vacstat <command>")
	fmt.Println("commands:")
	fmt.Println("  report:table    --input=vacancies.csv --profession=Аналитик")
	fmt.Println("  report:xlsx     --input=... --profession=... [--out=report.xlsx]")
	fmt.Println("  report:charts   --input=... --profession=... [--out=./out]")
	fmt.Println("  report:html     --input=... --profession=... [--out=report.html]")
	fmt.Println("  report:pdf      --input=... --profession=... [--out=report.pdf]")
	fmt.Println("  stats:json      --input=... --profession=...")
	fmt.Println("  vacancies:table --input=...")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
