package main

import (
	"fmt"
	"strconv"

	"Farolero/services/game"
	"Farolero/services/poker"
	"Farolero/services/shop"

	"github.com/pterm/pterm"
)

var suitSymbols = map[string]string{
	"s": "♠",
	"h": "♥",
	"d": "♦",
	"c": "♣",
}

// cardLabel renders a card like "7♥", red for hearts/diamonds.
func cardLabel(c poker.Card) string {
	label := c.Rank + suitSymbols[c.Suit]
	if c.Suit == "h" || c.Suit == "d" {
		return pterm.LightRed(label)
	}
	return pterm.LightWhite(label)
}

// printPool shows the pool with 1-based indices for picking.
func printPool(pool []poker.Card) {
	if len(pool) == 0 {
		pterm.Println("Pool: (empty, deal first)")
		return
	}

	indices := make([]string, len(pool))
	labels := make([]string, len(pool))
	for i, c := range pool {
		indices[i] = strconv.Itoa(i + 1)
		labels[i] = cardLabel(c)
	}

	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{indices, labels}).Render()
}

func printSummary(v *game.View) {
	jokers := "(none)"
	if len(v.Jokers) > 0 {
		jokers = ""
		for i, j := range v.Jokers {
			if def, ok := poker.LookupJoker(j.DefinitionID); ok {
				if i > 0 {
					jokers += ", "
				}
				jokers += def.Name
			}
		}
	}

	pterm.DefaultBox.WithTitle(pterm.LightYellow("|RUN|")).WithTitleTopCenter().Println(
		pterm.Sprintf("Ante %d | %s blind | Target %d | Score %d\nHands %d | Discards %d | Coins $%d\nJokers [%d/5]: %s",
			v.Ante, v.Blind, v.Target, v.Score,
			v.HandsLeft, v.DiscardsLeft, v.Coins,
			len(v.Jokers), jokers))
}

func printBreakdown(br *poker.Breakdown) {
	if br == nil {
		pterm.Println("No score yet.")
		return
	}

	lines := pterm.Sprintf("Hand: %s\nChips: %d base + %d cards + %d bonus = %d\nMult: %d base + %d bonus = %d\nTOTAL: %d",
		br.HandName,
		br.BaseChips, br.CardChips, br.BonusChips, br.TotalChips,
		br.BaseMult, br.BonusMult, br.TotalMult,
		br.TotalScore)

	for _, jc := range br.Jokers {
		if jc.Triggered {
			lines += pterm.Sprintf("\n  %s: +%d chips, +%d mult", jc.Name, jc.Chips, jc.Mult)
		} else {
			lines += pterm.Sprintf("\n  %s: (not triggered)", jc.Name)
		}
	}

	pterm.DefaultBox.WithTitle(pterm.LightGreen("|HAND RESULT|")).WithTitleTopCenter().Println(lines)
}

func printShop(s *shop.Shop, coins int) {
	if s == nil {
		pterm.Println("Shop is only available right after clearing a blind.")
		return
	}

	data := pterm.TableData{{"#", "Name", "Rarity", "Price", "Effect"}}
	for i, offer := range s.Offers {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			offer.Name,
			string(offer.Rarity),
			fmt.Sprintf("$%d", offer.Price),
			offer.Description,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printfln("Coins: $%d | buy N, reroll ($2) or skip", coins)
}

func printStats(v *game.View) {
	best := "(none)"
	if v.Stats.BestHand > 0 {
		best = v.Stats.BestHand.String()
	}

	pterm.DefaultBox.WithTitle(pterm.LightCyan("|STATISTICS|")).WithTitleTopCenter().Println(
		pterm.Sprintf("Hands played: %d\nDiscards used: %d\nBlinds cleared: %d\nTotal score: %d\nHighest hand: %d\nBest hand type: %s\nCoins earned: $%d",
			v.Stats.HandsPlayed, v.Stats.DiscardsUsed, v.Stats.BlindsCleared,
			v.Stats.TotalScore, v.Stats.HighestScore, best, v.Stats.CoinsEarned))
}
