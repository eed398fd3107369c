package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/terminal"
	engine "minebombers/pkg/engine/world"
	"minebombers/pkg/game/audio"
	"minebombers/pkg/game/devtools"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/generator"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/renderer"
	"minebombers/pkg/game/renderer/tui"
	"minebombers/pkg/game/state"
	"minebombers/pkg/game/world"
)

var (
	mapFile      = flag.String("map", "", "load the battlefield from a map file instead of generating one")
	levelsDir    = flag.String("levels", "", "directory of LEVEL<n>.MNL files for a single player")
	numRounds    = flag.Int("rounds", 1, "rounds to play")
	numPlayers   = flag.Int("players", 2, "number of players (1-4)")
	numTreasures = flag.Int("treasures", 45, "treasures on a generated map")
	seed         = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	ticks        = flag.Int("ticks", 300, "ticks the unattended demo runs for")
	darkness     = flag.Bool("darkness", false, "keep unexplored cells hidden")
	bombDamage   = flag.Int("bomb-damage", 100, "percentage of blast damage players take in multiplayer")
	sound        = flag.Bool("audio", false, "play sound effects through the speaker")
	localeDir    = flag.String("locale", "locales", "directory holding the message catalogs")
	lang         = flag.String("lang", "en_GB", "message catalog language")
	devMap       = flag.Bool("dev", false, "play on the developer showcase map")
	dump         = flag.Bool("dump", false, "write map.txt when the round ends")
	snapshotPath = flag.String("snapshot", "", "write a snapshot of the final board to this file")
	screenshot   = flag.Bool("screenshot", false, "write an HTML screenshot when the round ends")
)

func initLocale() {
	gotext.Configure(*localeDir, *lang, "default")
}

// newSource returns the random source for the match, seeded from -seed when given.
func newSource() rng.Source {
	if *seed != 0 {
		return rng.New(*seed)
	}
	src, s := rng.NewTimeSeeded()
	log.Printf("seed %d", s)
	return src
}

// buildGrid creates the battlefield for one round
func buildGrid(src rng.Source, round int) (*level.Grid, error) {
	var grid *level.Grid
	switch {
	case *devMap:
		grid = devtools.DevMap()
	case *levelsDir != "" && *numPlayers == 1:
		return generator.LoadSinglePlayer(*levelsDir, round, src)
	case *mapFile != "":
		gen := &generator.FileGenerator{Path: *mapFile}
		grid = gen.Generate(src, *numTreasures)
	default:
		grid = generator.DefaultGenerator.Generate(src, *numTreasures)
	}
	generator.GenerateEntrances(grid, src, *numPlayers)
	return grid, nil
}

// newRenderer sizes the map printer to the terminal. Piped output gets the
// whole board.
func newRenderer() renderer.Renderer {
	if terminal.IsStdoutTerminal() {
		return tui.New()
	}
	full := terminal.Size{Width: engine.Cols, Height: engine.Rows + tui.ViewportTopMargin}
	return tui.NewWithOutput(os.Stdout, func() terminal.Size { return full })
}

func playerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = gotext.Get("PLAYER_NAME", i+1)
	}
	return names
}

// starterKit is what every player brings into the demo round
func starterKit(inv *entities.Inventory) {
	inv.Add(entities.SmallBomb, 5)
	inv.Add(entities.LargeBomb, 2)
	inv.Add(entities.Dynamite, 2)
	inv.Add(entities.SmallRadio, 2)
	inv.Add(entities.Grenade, 3)
	inv.Add(entities.Napalm, 1)
	inv.Add(entities.Plastic, 1)
	inv.Add(entities.Digger, 1)
	inv.Add(entities.Flamethrower, 2)
	inv.Add(entities.Extinguisher, 1)
	inv.Add(entities.JumpingBomb, 1)
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("minebombers: ")

	if *numPlayers < 1 || *numPlayers > 4 {
		log.Fatalf("players must be between 1 and 4, got %d", *numPlayers)
	}
	if *numTreasures < 0 || *numTreasures > generator.MaxTreasures {
		log.Fatalf("treasures must be between 0 and %d, got %d", generator.MaxTreasures, *numTreasures)
	}

	initLocale()
	renderer.Current = newRenderer()
	renderer.Current.Init()

	var sink audio.Sink = audio.Silent{}
	if *sound {
		p := audio.NewPlayer()
		if err := p.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer p.Close()
			sink = p
		}
	}

	opts := state.DefaultOptions()
	opts.Players = *numPlayers
	opts.Treasures = *numTreasures
	opts.Rounds = max(1, *numRounds)
	opts.Darkness = *darkness
	opts.BombDamage = *bombDamage
	game := state.NewGame(playerNames(*numPlayers), opts)

	src := newSource()
	for {
		r, err := newRound(game, src, sink)
		if err != nil {
			log.Fatalf("Cannot build map: %v", err)
		}
		r.demo(*ticks)
		r.finish()
		if game.IsFinalRound() || game.IsOver() {
			writeDevOutputs(r.w, r.roster)
		}
		if !game.NextRound() {
			break
		}
	}

	leader := game.Players[game.Leader()]
	fmt.Println(renderer.Current.FormatText("GT{MATCH_LEADER} %s GOLD{%d}", leader.Name, leader.Cash))
}

// newRound builds the board, the actors and the simulation for the current round
func newRound(game *state.Game, src rng.Source, sink audio.Sink) (*round, error) {
	grid, err := buildGrid(src, game.Round)
	if err != nil {
		return nil, err
	}
	for _, p := range game.Players {
		starterKit(&p.Inventory)
	}

	roster := entities.NewRoster(len(game.Players), src)
	roster.SpawnMonsters(grid)
	m := level.NewMap(grid, src)

	w := world.New(m, world.Collaborators{Audio: sink, Actors: roster}, src,
		world.Config{BombDamage: game.Options.BombDamage, Darkness: game.Options.Darkness})
	for i := range game.Players {
		w.RevealView(i)
	}
	return &round{game: game, w: w, roster: roster, collected: make([]int, len(game.Players))}, nil
}

// writeDevOutputs saves the debug artifacts requested on the command line
func writeDevOutputs(w *world.World, roster *entities.Roster) {
	if *dump {
		path, err := devtools.DumpMapToFile(w.Map(), roster.Positions())
		logSaved(path, err)
	}
	if *screenshot {
		path, err := devtools.SaveScreenshotHTML(w.Map(), roster.Positions(), w.Round())
		logSaved(path, err)
	}
	if *snapshotPath != "" {
		logSaved(*snapshotPath, devtools.SaveSnapshot(*snapshotPath, w.Map(), w.Round()))
	}
}

func logSaved(path string, err error) {
	if err != nil {
		log.Print(gotext.Get("MSG_SAVE_FAILED", err))
		return
	}
	log.Print(gotext.Get("MSG_SAVED", path))
}
