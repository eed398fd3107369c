// Command genmap generates a random battlefield and writes it as a map file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/game/generator"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/renderer/tui"
)

func main() {
	treasures := flag.Int("treasures", generator.MaxTreasures, "number of treasures to place")
	players := flag.Int("players", 2, "number of player entrances to carve (1-4)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	printMap := flag.Bool("print", false, "print the generated map")
	localeDir := flag.String("locale", "locales", "directory holding the message catalogs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: genmap [flags] <output>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genmap: ")
	gotext.Configure(*localeDir, "en_GB", "default")

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *treasures < 0 || *treasures > generator.MaxTreasures {
		log.Fatalf("treasures must be between 0 and %d", generator.MaxTreasures)
	}
	if *players < 1 || *players > 4 {
		log.Fatalf("players must be between 1 and 4")
	}

	var src rng.Source
	if *seed != 0 {
		src = rng.New(*seed)
	} else {
		var s int64
		src, s = rng.NewTimeSeeded()
		log.Printf("seed %d", s)
	}

	grid := generator.DefaultGenerator.Generate(src, *treasures)
	generator.GenerateEntrances(grid, src, *players)

	out := flag.Arg(0)
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Cannot create %s: %v", dir, err)
		}
	}
	if err := grid.Save(out); err != nil {
		log.Fatalf("Cannot write map: %v", err)
	}

	if *printMap {
		r := tui.New()
		r.Init()
		r.PrintMap(level.NewMap(grid, src), nil, false)
	}
	log.Print(gotext.Get("MSG_SAVED", out))
}
