package poker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSelectionSize means a play was attempted with the wrong number
// of cards. The evaluator only accepts exactly HandSize cards.
var ErrInvalidSelectionSize = errors.New("invalid selection size")

// HandSize is the number of cards a played hand always contains.
const HandSize = 5

// HandCategory ranks the 9 recognized poker hands, weakest first.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "HighCard"
	case Pair:
		return "Pair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	default:
		return "Unknown"
	}
}

// BaseScore is the fixed chips/mult pair a hand category starts from.
type BaseScore struct {
	Chips int `json:"chips"`
	Mult  int `json:"mult"`
}

var baseScores = map[HandCategory]BaseScore{
	HighCard:      {0, 1},
	Pair:          {10, 1},
	TwoPair:       {20, 2},
	ThreeOfAKind:  {30, 2},
	Straight:      {40, 3},
	Flush:         {50, 3},
	FullHouse:     {60, 4},
	FourOfAKind:   {80, 5},
	StraightFlush: {120, 6},
}

// Base returns the category's fixed starting chips and mult.
func (hc HandCategory) Base() BaseScore {
	return baseScores[hc]
}

// Evaluate classifies exactly 5 cards into the single highest category they
// satisfy, checking from StraightFlush down to HighCard. The second return
// is the cards that make the category, ordered by descending rank.
func Evaluate(cards []Card) (HandCategory, []Card, error) {
	if len(cards) != HandSize {
		return 0, nil, fmt.Errorf("got %d cards, need %d: %w", len(cards), HandSize, ErrInvalidSelectionSize)
	}

	// Work on a sorted copy so the caller's selection order survives.
	tmp := make([]Card, HandSize)
	copy(tmp, cards)
	SortCards(tmp)

	checks := []struct {
		category HandCategory
		detect   func([]Card) ([]Card, bool)
	}{
		{StraightFlush, straightFlushCards},
		{FourOfAKind, fourOfAKindCards},
		{FullHouse, fullHouseCards},
		{Flush, flushCards},
		{Straight, straightCards},
		{ThreeOfAKind, threeOfAKindCards},
		{TwoPair, twoPairCards},
		{Pair, pairCards},
		{HighCard, highCardCards},
	}

	for _, check := range checks {
		if scoring, ok := check.detect(tmp); ok {
			sortCardsDesc(scoring)
			return check.category, scoring, nil
		}
	}

	// highCardCards always matches, so this is unreachable.
	return 0, nil, fmt.Errorf("unclassifiable hand: %w", ErrInvalidSelectionSize)
}

func rankCounts(cards []Card) map[string]int {
	counts := make(map[string]int)
	for _, card := range cards {
		counts[card.Rank]++
	}
	return counts
}

func cardsOfRank(cards []Card, rank string) []Card {
	var out []Card
	for _, card := range cards {
		if card.Rank == rank {
			out = append(out, card)
		}
	}
	return out
}

func pairCards(cards []Card) ([]Card, bool) {
	for rank, count := range rankCounts(cards) {
		if count == 2 {
			return cardsOfRank(cards, rank), true
		}
	}
	return nil, false
}

func twoPairCards(cards []Card) ([]Card, bool) {
	var scoring []Card
	pairs := 0
	for rank, count := range rankCounts(cards) {
		if count == 2 {
			pairs++
			scoring = append(scoring, cardsOfRank(cards, rank)...)
		}
	}
	if pairs == 2 {
		return scoring, true
	}
	return nil, false
}

func threeOfAKindCards(cards []Card) ([]Card, bool) {
	for rank, count := range rankCounts(cards) {
		if count == 3 {
			return cardsOfRank(cards, rank), true
		}
	}
	return nil, false
}

func fullHouseCards(cards []Card) ([]Card, bool) {
	var three, two []Card
	for rank, count := range rankCounts(cards) {
		switch count {
		case 3:
			three = cardsOfRank(cards, rank)
		case 2:
			two = cardsOfRank(cards, rank)
		}
	}
	if len(three) == 3 && len(two) == 2 {
		return append(three, two...), true
	}
	return nil, false
}

func fourOfAKindCards(cards []Card) ([]Card, bool) {
	for rank, count := range rankCounts(cards) {
		if count == 4 {
			return cardsOfRank(cards, rank), true
		}
	}
	return nil, false
}

func flushCards(cards []Card) ([]Card, bool) {
	suit := cards[0].Suit
	for _, c := range cards {
		if c.Suit != suit {
			return nil, false
		}
	}
	scoring := make([]Card, len(cards))
	copy(scoring, cards)
	return scoring, true
}

// straightCards expects cards sorted ascending. The ace plays high or low:
// A-2-3-4-5 (the wheel) counts as a straight.
func straightCards(cards []Card) ([]Card, bool) {
	grades := make([]int, len(cards))
	for i, c := range cards {
		grades[i] = grade(c)
	}

	if consecutive(grades) {
		scoring := make([]Card, len(cards))
		copy(scoring, cards)
		return scoring, true
	}

	// Retry with the ace demoted to 1.
	if grades[len(grades)-1] == 14 {
		low := append([]int{1}, grades[:len(grades)-1]...)
		sort.Ints(low)
		if consecutive(low) {
			scoring := make([]Card, len(cards))
			copy(scoring, cards)
			return scoring, true
		}
	}

	return nil, false
}

func consecutive(grades []int) bool {
	for i := 0; i < len(grades)-1; i++ {
		if grades[i+1]-grades[i] != 1 {
			return false
		}
	}
	return true
}

func straightFlushCards(cards []Card) ([]Card, bool) {
	if _, ok := flushCards(cards); !ok {
		return nil, false
	}
	return straightCards(cards)
}

// highCardCards expects cards sorted ascending; the single highest card scores.
func highCardCards(cards []Card) ([]Card, bool) {
	return []Card{cards[len(cards)-1]}, true
}
