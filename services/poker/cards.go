package poker

import (
	"sort"
	"strconv"
)

// Card is an immutable rank/suit pair.
//
// Ranks: A, 2..10, J, Q, K. Suits: s (spades), h (hearts), d (diamonds), c (clubs).
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// Fixed slices (not maps) so the unshuffled deck order is deterministic.
var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
var Suits = []string{"s", "h", "d", "c"}

// ValidCard reports whether the rank/suit pair belongs to the 52-card deck.
func ValidCard(c Card) bool {
	rankOK := false
	for _, r := range Ranks {
		if c.Rank == r {
			rankOK = true
			break
		}
	}
	if !rankOK {
		return false
	}
	for _, s := range Suits {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// grade maps a rank to its ordering value, 2..14 with ace high.
func grade(c Card) int {
	switch c.Rank {
	case "J":
		return 11
	case "Q":
		return 12
	case "K":
		return 13
	case "A":
		return 14
	default:
		rank, _ := strconv.Atoi(c.Rank)
		return rank
	}
}

// ChipValue is the chips a card contributes when played: face cards are
// worth 10, aces 11, numbered cards their rank.
func ChipValue(c Card) int {
	switch c.Rank {
	case "K", "Q", "J":
		return 10
	case "A":
		return 11
	default:
		value, _ := strconv.Atoi(c.Rank)
		return value
	}
}

// IsHighTier reports whether the card sits in the 10/J/Q/K/A tier.
func IsHighTier(c Card) bool {
	return grade(c) >= 10
}

// IsOddRank: A, 3, 5, 7, 9 (the ace counts as 1 for parity).
// Face cards are neither odd nor even.
func IsOddRank(c Card) bool {
	switch c.Rank {
	case "A", "3", "5", "7", "9":
		return true
	}
	return false
}

// IsEvenRank: 2, 4, 6, 8, 10.
func IsEvenRank(c Card) bool {
	switch c.Rank {
	case "2", "4", "6", "8", "10":
		return true
	}
	return false
}

// SortCards orders cards ascending by grade, in place.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return grade(cards[i]) < grade(cards[j])
	})
}

func sortCardsDesc(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return grade(cards[i]) > grade(cards[j])
	})
}

// AddChipsPerCard sums the chip contribution of every played card.
func AddChipsPerCard(cards []Card) int {
	addition := 0
	for _, card := range cards {
		addition += ChipValue(card)
	}
	return addition
}
