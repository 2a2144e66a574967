package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	parkfile "github.com/mzki/parkfile"
	"github.com/mzki/parkfile/infra/buildinfo"
	"github.com/mzki/parkfile/infra/repo"
)

func main() {
	flag.Usage = printHelp

	options := flag.String("options", "", "`options-file` in TOML; defaults apply if empty.")
	locale := flag.String("locale", "", "preferred `locale` for scenario strings, e.g. en-GB.")
	listDir := flag.String("list", "", "list the scenarios of `dir` instead of inspecting one file.")
	showVersion := flag.Bool("version", false, "show version info and quit.")
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.FullVersion())
		return
	}

	opts := parkfile.DefaultOptions()
	if *options != "" {
		loaded, err := parkfile.LoadOptions(*options)
		if err != nil {
			fatal(err)
		}
		opts = loaded
	}
	if *locale != "" {
		opts.PreferredLocale = *locale
	}

	if *listDir != "" {
		if err := listScenarios(opts, *listDir); err != nil {
			fatal(err)
		}
		return
	}

	if flag.NArg() != 1 {
		printHelp()
		os.Exit(1)
	}
	if err := inspect(opts, flag.Arg(0)); err != nil {
		fatal(err)
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] park-file
  prints the container header, object dependencies and scenario summary
  of one park save, or with -list the scenario listing of a directory.

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "parkinfo: %v\n", err)
	os.Exit(1)
}

func inspect(opts parkfile.Options, path string) error {
	engine := parkfile.New(opts, nil)
	required, err := engine.LoadFile(path)
	if err != nil {
		return err
	}
	defer engine.Close()

	hdr := engine.Header()
	fmt.Printf("file:          %s\n", path)
	fmt.Printf("version:       %#x (min %#x)\n", hdr.TargetVersion, hdr.MinVersion)
	fmt.Printf("objects:       %d\n", required.Count())

	if authoring, found, err := engine.ReadAuthoring(); err == nil && found {
		fmt.Printf("written by:    %s\n", authoring.EngineVersion)
	}

	sum, err := engine.ReadScenarioSummary()
	if err != nil {
		return err
	}
	fmt.Printf("scenario:      %s\n", sum.Name)
	fmt.Printf("park:          %s\n", sum.ParkName)
	fmt.Printf("objective:     type %d, year %d, %d guests, %d currency\n",
		sum.ObjectiveType, sum.ObjectiveYear, sum.NumGuests, sum.Currency)
	if sum.Details != "" {
		fmt.Printf("details:       %s\n", sum.Details)
	}
	return nil
}

func listScenarios(opts parkfile.Options, dir string) error {
	scenarios := repo.NewScenarioRepository(opts, repo.Config{Dir: dir})
	summaries, err := scenarios.List(context.Background())
	if err != nil {
		return err
	}
	for _, sum := range summaries {
		fmt.Printf("%-40s %s\n", sum.Name, sum.ParkName)
	}
	return nil
}
