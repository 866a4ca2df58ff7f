package game

import (
	"fmt"

	game_constants "Farolero/constants/game"
	"Farolero/services/blinds"
	"Farolero/services/poker"
	"Farolero/services/rng"
	"Farolero/services/shop"
)

// Snapshot is the full serializable state of a run. It carries the RNG
// stream's internal position (not just the seed), so a restored run
// produces bit-identical draws, shuffles and shop rolls. The blind target
// is deliberately absent: it is always re-derived from (ante, blind).
type Snapshot struct {
	Seed         uint64                `json:"seed"`
	RNGState     []byte                `json:"rng_state"`
	Phase        Phase                 `json:"phase"`
	Ante         int                   `json:"ante"`
	Blind        blinds.Slot           `json:"blind"`
	Score        int                   `json:"score"`
	HandsLeft    int                   `json:"hands_left"`
	DiscardsLeft int                   `json:"discards_left"`
	Coins        int                   `json:"coins"`
	Jokers       []poker.JokerInstance `json:"jokers"`
	DrawPile     []poker.Card          `json:"draw_pile"`
	Pool         []poker.Card          `json:"pool"`
	DiscardPile  []poker.Card          `json:"discard_pile"`
	Shop         *shop.Shop            `json:"shop,omitempty"`
	Stats        Stats                 `json:"stats"`
}

// Snapshot captures the current state. The game remains usable; the
// snapshot shares nothing with it.
func (g *Game) Snapshot() (*Snapshot, error) {
	state, err := g.stream.State()
	if err != nil {
		return nil, fmt.Errorf("marshal rng state: %v", err)
	}

	snap := &Snapshot{
		Seed:         g.seed,
		RNGState:     state,
		Phase:        g.phase,
		Ante:         g.ante,
		Blind:        g.slot,
		Score:        g.score,
		HandsLeft:    g.handsLeft,
		DiscardsLeft: g.discardsLeft,
		Coins:        g.coins,
		Jokers:       append([]poker.JokerInstance(nil), g.jokers...),
		DrawPile:     append([]poker.Card(nil), g.deck.DrawPile...),
		Pool:         append([]poker.Card(nil), g.deck.Pool...),
		DiscardPile:  append([]poker.Card(nil), g.deck.DiscardPile...),
		Stats:        g.stats,
	}

	if g.shop != nil {
		snap.Shop = &shop.Shop{
			Offers:  append([]shop.Offer(nil), g.shop.Offers...),
			Rerolls: g.shop.Rerolls,
		}
	}

	return snap, nil
}

// Restore rebuilds a game from a snapshot, validating it first. A snapshot
// that fails validation is the engine's only hard failure and is reported
// to the loader as ErrCorruptSnapshot.
func Restore(snap *Snapshot) (*Game, error) {
	if err := validate(snap); err != nil {
		return nil, err
	}

	stream, err := rng.Restore(snap.RNGState)
	if err != nil {
		return nil, fmt.Errorf("rng state: %v: %w", err, ErrCorruptSnapshot)
	}

	g := &Game{
		seed:   snap.Seed,
		stream: stream,
		deck: &poker.Deck{
			DrawPile:    append([]poker.Card(nil), snap.DrawPile...),
			Pool:        append([]poker.Card(nil), snap.Pool...),
			DiscardPile: append([]poker.Card(nil), snap.DiscardPile...),
		},
		jokers:       append([]poker.JokerInstance(nil), snap.Jokers...),
		coins:        snap.Coins,
		ante:         snap.Ante,
		slot:         snap.Blind,
		score:        snap.Score,
		handsLeft:    snap.HandsLeft,
		discardsLeft: snap.DiscardsLeft,
		phase:        snap.Phase,
		stats:        snap.Stats,
	}

	if snap.Shop != nil {
		g.shop = &shop.Shop{
			Offers:  append([]shop.Offer(nil), snap.Shop.Offers...),
			Rerolls: snap.Shop.Rerolls,
		}
	}

	return g, nil
}

func validate(snap *Snapshot) error {
	switch snap.Phase {
	case PhaseAwaitingDeal, PhaseHandInPlay, PhaseShop, PhaseRunOver:
	default:
		return fmt.Errorf("unknown phase %q: %w", snap.Phase, ErrCorruptSnapshot)
	}

	switch snap.Blind {
	case blinds.SlotSmall, blinds.SlotBig, blinds.SlotBoss:
	default:
		return fmt.Errorf("unknown blind %q: %w", snap.Blind, ErrCorruptSnapshot)
	}

	if snap.Ante < 1 {
		return fmt.Errorf("ante %d: %w", snap.Ante, ErrCorruptSnapshot)
	}
	if snap.Coins < 0 {
		return fmt.Errorf("negative coins: %w", ErrCorruptSnapshot)
	}
	if snap.HandsLeft < 0 || snap.HandsLeft > game_constants.TOTAL_HAND_PLAYS ||
		snap.DiscardsLeft < 0 || snap.DiscardsLeft > game_constants.TOTAL_DISCARDS {
		return fmt.Errorf("counters out of range: %w", ErrCorruptSnapshot)
	}
	if len(snap.Jokers) > game_constants.MaxJokersPerPlayer {
		return fmt.Errorf("%d jokers: %w", len(snap.Jokers), ErrCorruptSnapshot)
	}
	for _, j := range snap.Jokers {
		if _, ok := poker.LookupJoker(j.DefinitionID); !ok {
			return fmt.Errorf("unknown joker %q: %w", j.DefinitionID, ErrCorruptSnapshot)
		}
	}
	if snap.Phase == PhaseShop && snap.Shop == nil {
		return fmt.Errorf("shop phase without shop: %w", ErrCorruptSnapshot)
	}

	// The three piles must partition the exact 52-card deck.
	total := len(snap.DrawPile) + len(snap.Pool) + len(snap.DiscardPile)
	if total != 52 {
		return fmt.Errorf("%d cards across piles: %w", total, ErrCorruptSnapshot)
	}
	seen := make(map[poker.Card]bool, 52)
	for _, pile := range [][]poker.Card{snap.DrawPile, snap.Pool, snap.DiscardPile} {
		for _, card := range pile {
			if !poker.ValidCard(card) {
				return fmt.Errorf("unknown card %s: %w", card, ErrCorruptSnapshot)
			}
			if seen[card] {
				return fmt.Errorf("duplicate card %s: %w", card, ErrCorruptSnapshot)
			}
			seen[card] = true
		}
	}

	return nil
}
