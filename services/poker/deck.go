package poker

import (
	"errors"
	"fmt"

	"Farolero/services/rng"
)

var (
	// ErrInvalidIndex marks an out-of-range or repeated pool index.
	ErrInvalidIndex = errors.New("invalid card index")
	// ErrInsufficientCards means the whole deck cannot supply the draw.
	ErrInsufficientCards = errors.New("not enough cards in deck")
)

// Deck partitions the 52 cards into a face-down draw pile, the player's
// pool (cards in hand) and a discard pile. Every operation preserves the
// partition invariant: the union of the three piles is the full deck.
type Deck struct {
	DrawPile    []Card `json:"draw_pile"`
	Pool        []Card `json:"pool"`
	DiscardPile []Card `json:"discard_pile"`
}

// NewDeck builds the 52-card deck and Fisher-Yates-shuffles it with the
// run's stream, consuming stream state.
func NewDeck(stream *rng.Stream) *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	stream.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{
		DrawPile:    cards,
		Pool:        make([]Card, 0),
		DiscardPile: make([]Card, 0),
	}
}

// Size is the total number of cards across the three piles.
func (d *Deck) Size() int {
	return len(d.DrawPile) + len(d.Pool) + len(d.DiscardPile)
}

// Draw moves up to n cards from the draw pile into the pool. If the draw
// pile runs short, the discard pile is shuffled back in first (consuming
// further stream state). Fails only if the whole deck cannot supply n.
func (d *Deck) Draw(n int, stream *rng.Stream) ([]Card, error) {
	if n > len(d.DrawPile)+len(d.DiscardPile) {
		return nil, fmt.Errorf("draw %d with %d available: %w",
			n, len(d.DrawPile)+len(d.DiscardPile), ErrInsufficientCards)
	}

	if len(d.DrawPile) < n {
		d.reshuffleDiscards(stream)
	}

	drawn := d.DrawPile[:n]
	d.DrawPile = d.DrawPile[n:]
	d.Pool = append(d.Pool, drawn...)

	return d.Pool[len(d.Pool)-n:], nil
}

// reshuffleDiscards shuffles the discard pile and appends it to the draw
// pile. Needed when e.g. 3 cards remain drawable but 5 were played.
func (d *Deck) reshuffleDiscards(stream *rng.Stream) {
	stream.Shuffle(len(d.DiscardPile), func(i, j int) {
		d.DiscardPile[i], d.DiscardPile[j] = d.DiscardPile[j], d.DiscardPile[i]
	})

	d.DrawPile = append(d.DrawPile, d.DiscardPile...)
	d.DiscardPile = make([]Card, 0)
}

// CardsAt returns the pool cards at the given indices, in selection order,
// without mutating the deck.
func (d *Deck) CardsAt(indices []int) ([]Card, error) {
	if err := d.CheckPoolIndices(indices); err != nil {
		return nil, err
	}

	cards := make([]Card, len(indices))
	for i, idx := range indices {
		cards[i] = d.Pool[idx]
	}
	return cards, nil
}

// Discard moves the referenced pool cards to the discard pile. The whole
// selection is validated before anything moves.
func (d *Deck) Discard(indices []int) error {
	if err := d.CheckPoolIndices(indices); err != nil {
		return err
	}

	trash := make(map[int]bool, len(indices))
	for _, idx := range indices {
		trash[idx] = true
	}

	kept := make([]Card, 0, len(d.Pool))
	for i, card := range d.Pool {
		if trash[i] {
			d.DiscardPile = append(d.DiscardPile, card)
		} else {
			kept = append(kept, card)
		}
	}
	d.Pool = kept

	return nil
}

// FlushPool dumps the whole pool onto the discard pile (end of a blind).
func (d *Deck) FlushPool() {
	d.DiscardPile = append(d.DiscardPile, d.Pool...)
	d.Pool = make([]Card, 0)
}

// CheckPoolIndices rejects out-of-range and repeated indices without
// touching the deck, so callers can validate before mutating.
func (d *Deck) CheckPoolIndices(indices []int) error {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.Pool) {
			return fmt.Errorf("pool index %d out of range [0,%d): %w", idx, len(d.Pool), ErrInvalidIndex)
		}
		if seen[idx] {
			return fmt.Errorf("pool index %d repeated: %w", idx, ErrInvalidIndex)
		}
		seen[idx] = true
	}
	return nil
}
