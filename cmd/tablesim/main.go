package main

import (
	"flag"
	"os"
	"time"

	"github.com/pterm/pterm"
)

func main() {
	players := flag.Int("players", 3, "number of scripted players")
	rounds := flag.Int("rounds", 5, "rounds to play")
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed")
	hitBelow := flag.Int("hit-below", 17, "players hit while their score is below this value")
	verbose := flag.Bool("v", false, "render every snapshot, not only the last of each round")
	flag.Parse()

	if *players < 1 || *rounds < 1 {
		pterm.Error.Println("-players and -rounds must be at least 1")
		os.Exit(2)
	}

	pterm.DefaultHeader.WithFullWidth().Println("Blackjack table simulator")
	pterm.Info.Printfln("players=%d rounds=%d seed=%d hit-below=%d", *players, *rounds, *seed, *hitBelow)

	sim := NewSimulator(*players, *hitBelow, *seed)
	defer sim.Close()

	tally := Tally{}
	for i := 1; i <= *rounds; i++ {
		round, err := sim.Play(i)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		printRound(round, *verbose)
		tally.Add(round.Outcomes)
	}
	printTally(tally, *rounds)
}
