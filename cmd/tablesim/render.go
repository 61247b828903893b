package main

import (
	"Blackjack/services/game"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

func handString(hand []game.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func statusStyle(s game.Status) string {
	switch s {
	case game.StatusBust:
		return pterm.LightRed(string(s))
	case game.StatusBlackjack:
		return pterm.LightGreen(string(s))
	case game.StatusStand:
		return pterm.LightYellow(string(s))
	}
	return string(s)
}

func outcomeStyle(o game.Outcome) string {
	switch o {
	case game.OutcomeWin, game.OutcomeBlackjack:
		return pterm.LightGreen(string(o))
	case game.OutcomeLose:
		return pterm.LightRed(string(o))
	}
	return pterm.LightYellow(string(o))
}

// snapshotTable lays out a view as rows of name, hand, score and status.
func snapshotTable(view game.RoomView) pterm.TableData {
	data := pterm.TableData{{"Seat", "Hand", "Score", "Status"}}
	data = append(data, []string{
		pterm.LightCyan("Dealer"),
		handString(view.Dealer.Hand),
		strconv.Itoa(view.Dealer.Score),
		string(view.Phase),
	})
	for _, p := range view.Players {
		data = append(data, []string{p.Username, handString(p.Hand), strconv.Itoa(p.Score), statusStyle(p.Status)})
	}
	return data
}

func printRound(r Round, verbose bool) {
	pterm.DefaultSection.Printfln("Round %d", r.Number)
	if verbose {
		for i, view := range r.Snapshots {
			pterm.Info.Printfln("Snapshot %d: %s", i+1, view.Phase)
			pterm.DefaultTable.WithHasHeader().WithData(snapshotTable(view)).Render()
		}
	} else if len(r.Snapshots) > 0 {
		pterm.DefaultTable.WithHasHeader().WithData(snapshotTable(r.Snapshots[len(r.Snapshots)-1])).Render()
	}

	data := pterm.TableData{{"Player", "Score", "Outcome"}}
	for _, o := range r.Outcomes {
		data = append(data, []string{o.Username, strconv.Itoa(o.Score), outcomeStyle(o.Outcome)})
	}
	pbox := pterm.DefaultBox.WithTitle(pterm.LightYellow("|OUTCOMES|")).WithTitleTopCenter()
	table, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	pbox.Println(table)
}

// Tally counts outcomes per kind over every round.
type Tally map[game.Outcome]int

func (t Tally) Add(outcomes []game.PlayerOutcome) {
	for _, o := range outcomes {
		t[o.Outcome]++
	}
}

func printTally(t Tally, rounds int) {
	pterm.DefaultSection.Printfln("Totals after %d rounds", rounds)
	bars := pterm.Bars{}
	for _, o := range []game.Outcome{game.OutcomeWin, game.OutcomeBlackjack, game.OutcomePush, game.OutcomeLose} {
		bars = append(bars, pterm.Bar{Label: string(o), Value: t[o]})
	}
	pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Render()
}
