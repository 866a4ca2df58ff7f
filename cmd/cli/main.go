package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Farolero/config"
	"Farolero/services/game"
	"Farolero/services/save"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

const helpText = `Commands:
  deal / d           Deal a new pool (draw up to 8)
  show               Show current pool and run summary
  play i1..i5        Play 5 cards (1-based indices)
  auto               Auto-pick and play the best 5
  disc i..           Discard cards, draw replacements
  score              Show last hand breakdown
  shop               Show shop offers
  buy N              Buy offer N
  reroll             Reroll the shop offers ($2)
  skip               Leave the shop, next blind
  stats              Show run statistics
  save [slot]        Save the run (default slot "main")
  load [slot]        Load a run
  new [seed]         Start a new run
  help               Show this help
  quit               Exit`

func main() {
	godotenv.Load()

	seedFlag := flag.Uint64("seed", 0, "run seed (0 picks one from the clock)")
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Saving is optional: without the database the game still runs.
	var store *save.Store
	if db, err := config.ConnectGORM(); err == nil {
		if err := config.MigrateDatabase(db); err != nil {
			log.Printf("Warning: save database unavailable: %v", err)
		} else {
			store = save.NewStore(db)
		}
	}

	run := game.New(seed)

	pterm.DefaultHeader.Println("Farolero, a poker roguelite (terminal edition)")
	pterm.Println(helpText)
	printSummary(run.View())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		pterm.Print("> ")
		if !scanner.Scan() {
			pterm.Println()
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return

		case "h", "help":
			pterm.Println(helpText)

		case "new":
			seed := uint64(time.Now().UnixNano())
			if len(fields) > 1 {
				parsed, err := strconv.ParseUint(fields[1], 10, 64)
				if err != nil {
					pterm.Println("Usage: new [seed]")
					continue
				}
				seed = parsed
			}
			run = game.New(seed)
			pterm.Printfln("New run with seed %d.", seed)
			printSummary(run.View())

		case "d", "deal":
			pool, err := run.Deal()
			if err != nil {
				pterm.Println(err)
				continue
			}
			printPool(pool)

		case "show":
			printPool(run.View().Pool)
			printSummary(run.View())

		case "disc":
			indices, err := parseIndices(fields[1:])
			if err != nil {
				pterm.Println("Usage: disc i1 [i2 ...] (1-based)")
				continue
			}
			if err := run.Discard(indices); err != nil {
				pterm.Println(err)
				continue
			}
			printPool(run.View().Pool)

		case "play", "pick":
			indices, err := parseIndices(fields[1:])
			if err != nil {
				pterm.Println("Usage: play i1 i2 i3 i4 i5 (1-based)")
				continue
			}
			playAndReport(run, indices)

		case "auto":
			indices, err := run.AutoPick()
			if err != nil {
				pterm.Println(err)
				continue
			}
			playAndReport(run, indices)

		case "score":
			printBreakdown(run.View().LastBreakdown)

		case "shop":
			view := run.View()
			printShop(view.Shop, view.Coins)

		case "buy":
			if len(fields) < 2 {
				pterm.Println("Usage: buy N")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				pterm.Println("Usage: buy N")
				continue
			}
			if err := run.Buy(n - 1); err != nil {
				pterm.Println(err)
				continue
			}
			printSummary(run.View())

		case "reroll":
			if err := run.Reroll(); err != nil {
				pterm.Println(err)
				continue
			}
			view := run.View()
			printShop(view.Shop, view.Coins)

		case "skip":
			if err := run.Skip(); err != nil {
				pterm.Println(err)
				continue
			}
			printSummary(run.View())

		case "stats":
			printStats(run.View())

		case "save":
			if store == nil {
				pterm.Println("Save database unavailable.")
				continue
			}
			snap, err := run.Snapshot()
			if err != nil {
				pterm.Println(err)
				continue
			}
			if err := store.Save(slotArg(fields), snap); err != nil {
				pterm.Println(err)
				continue
			}
			pterm.Printfln("Saved to slot %q.", slotArg(fields))

		case "load":
			if store == nil {
				pterm.Println("Save database unavailable.")
				continue
			}
			snap, err := store.Load(slotArg(fields))
			if err != nil {
				pterm.Println(err)
				continue
			}
			restored, err := game.Restore(snap)
			if err != nil {
				pterm.Println(err)
				continue
			}
			run = restored
			pterm.Printfln("Loaded slot %q.", slotArg(fields))
			printSummary(run.View())

		default:
			pterm.Println("Unknown command. Type 'help'.")
		}
	}
}

// parseIndices converts 1-based user indices to the engine's 0-based ones.
func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

func slotArg(fields []string) string {
	if len(fields) > 1 {
		return fields[1]
	}
	return "main"
}

func playAndReport(run *game.Game, indices []int) {
	result, err := run.Play(indices)
	if err != nil {
		pterm.Println(err)
		return
	}

	printBreakdown(result.Breakdown)

	switch {
	case result.Cleared:
		pterm.Printfln("Blind cleared! +$%d. The shop is open.", result.Reward)
		view := run.View()
		printShop(view.Shop, view.Coins)
	case result.RunOver:
		pterm.Printfln("Out of hands at %d/%d, run over. Start again with 'new'.",
			result.Score, result.Target)
		printStats(run.View())
	default:
		pterm.Printfln("Keep going: %d/%d with %d hand(s) left.",
			result.Score, result.Target, run.View().HandsLeft)
	}
}
