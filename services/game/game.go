package game

import (
	"fmt"
	"log"

	game_constants "Farolero/constants/game"
	"Farolero/services/blinds"
	"Farolero/services/poker"
	"Farolero/services/rng"
	"Farolero/services/shop"
)

// Phase is the state machine's current state. Clearing or failing a blind
// is resolved inside Play, so the observable phases are these four.
type Phase string

const (
	PhaseAwaitingDeal Phase = "awaiting_deal"
	PhaseHandInPlay   Phase = "hand_in_play"
	PhaseShop         Phase = "shop"
	PhaseRunOver      Phase = "run_over"
)

// Stats accumulates over the whole run.
type Stats struct {
	HandsPlayed   int                `json:"hands_played"`
	DiscardsUsed  int                `json:"discards_used"`
	BlindsCleared int                `json:"blinds_cleared"`
	TotalScore    int                `json:"total_score"`
	HighestScore  int                `json:"highest_score"`
	BestHand      poker.HandCategory `json:"best_hand"`
	CoinsEarned   int                `json:"coins_earned"`
}

// Game is the aggregate root: it owns the deck, the joker collection, the
// coin balance, the current blind and the RNG stream. All mutation goes
// through the action API below; every action validates fully before
// touching state.
type Game struct {
	seed          uint64
	stream        *rng.Stream
	deck          *poker.Deck
	jokers        []poker.JokerInstance
	coins         int
	ante          int
	slot          blinds.Slot
	score         int
	handsLeft     int
	discardsLeft  int
	phase         Phase
	shop          *shop.Shop
	lastBreakdown *poker.Breakdown
	stats         Stats
}

// New starts a run from a seed: fresh shuffled deck, ante 1 Small blind,
// full hand/discard allowance.
func New(seed uint64) *Game {
	stream := rng.NewStream(seed)
	g := &Game{
		seed:         seed,
		stream:       stream,
		deck:         poker.NewDeck(stream),
		jokers:       make([]poker.JokerInstance, 0),
		coins:        game_constants.STARTING_COINS,
		ante:         1,
		slot:         blinds.SlotSmall,
		handsLeft:    game_constants.TOTAL_HAND_PLAYS,
		discardsLeft: game_constants.TOTAL_DISCARDS,
		phase:        PhaseAwaitingDeal,
	}

	log.Printf("[GAME] New run, seed %d, target %d", seed, g.Target())
	return g
}

// Target is always derived from (ante, slot), never stored.
func (g *Game) Target() int {
	return blinds.TargetFor(g.ante, g.slot)
}

func (g *Game) Phase() Phase { return g.phase }

// Deal fills the pool up to the draw size and opens the hand.
func (g *Game) Deal() ([]poker.Card, error) {
	if g.phase != PhaseAwaitingDeal {
		return nil, fmt.Errorf("deal during %s: %w", g.phase, ErrIllegalTransition)
	}

	need := game_constants.DRAW_SIZE - len(g.deck.Pool)
	if _, err := g.deck.Draw(need, g.stream); err != nil {
		return nil, err
	}

	g.phase = PhaseHandInPlay
	return g.poolCopy(), nil
}

// Discard swaps the selected pool cards for fresh ones and spends one of
// the blind's discards.
func (g *Game) Discard(indices []int) error {
	if g.phase != PhaseHandInPlay {
		return fmt.Errorf("discard during %s: %w", g.phase, ErrIllegalTransition)
	}
	if g.discardsLeft <= 0 {
		return fmt.Errorf("no discards left: %w", ErrInsufficientResource)
	}
	if len(indices) == 0 {
		return fmt.Errorf("nothing selected to discard: %w", ErrInvalidSelectionSize)
	}
	if err := g.deck.CheckPoolIndices(indices); err != nil {
		return err
	}

	if err := g.deck.Discard(indices); err != nil {
		return err
	}
	if _, err := g.deck.Draw(len(indices), g.stream); err != nil {
		return err
	}

	g.discardsLeft--
	g.stats.DiscardsUsed++

	log.Printf("[DISCARD] %d card(s), %d discard(s) left", len(indices), g.discardsLeft)
	return nil
}

// PlayResult is what a play reports back: the full breakdown plus what it
// did to the blind.
type PlayResult struct {
	Breakdown *poker.Breakdown `json:"breakdown"`
	Target    int              `json:"target"`
	Score     int              `json:"score"`
	Cleared   bool             `json:"cleared"`
	RunOver   bool             `json:"run_over"`
	Reward    int              `json:"reward,omitempty"`
}

// Play scores exactly 5 selected cards against the current blind. Clearing
// the target pays the reward and opens the shop; failing the last hand ends
// the run; otherwise the played cards are replaced and the hand stays open.
func (g *Game) Play(indices []int) (*PlayResult, error) {
	if g.phase != PhaseHandInPlay {
		return nil, fmt.Errorf("play during %s: %w", g.phase, ErrIllegalTransition)
	}
	if g.handsLeft <= 0 {
		return nil, fmt.Errorf("no hands left: %w", ErrInsufficientResource)
	}
	if len(indices) != poker.HandSize {
		return nil, fmt.Errorf("play needs exactly %d cards, got %d: %w",
			poker.HandSize, len(indices), ErrInvalidSelectionSize)
	}

	played, err := g.deck.CardsAt(indices)
	if err != nil {
		return nil, err
	}

	breakdown, err := poker.ScoreHand(played, g.jokers, g.slot == blinds.SlotBoss)
	if err != nil {
		return nil, err
	}

	// Validation done, mutate.
	if err := g.deck.Discard(indices); err != nil {
		return nil, err
	}

	g.handsLeft--
	g.score += breakdown.TotalScore
	g.lastBreakdown = breakdown

	g.stats.HandsPlayed++
	g.stats.TotalScore += breakdown.TotalScore
	if breakdown.TotalScore > g.stats.HighestScore {
		g.stats.HighestScore = breakdown.TotalScore
	}
	if breakdown.Category > g.stats.BestHand {
		g.stats.BestHand = breakdown.Category
	}

	result := &PlayResult{
		Breakdown: breakdown,
		Target:    g.Target(),
		Score:     g.score,
	}

	switch {
	case g.score >= g.Target():
		reward := blinds.RewardFor(g.ante, g.slot)
		g.coins += reward
		g.stats.CoinsEarned += reward
		g.stats.BlindsCleared++
		g.shop = shop.Generate(g.stream, g.jokers)
		g.phase = PhaseShop

		result.Cleared = true
		result.Reward = reward
		log.Printf("[PLAY] %s for %d, blind cleared (+%d coins)",
			breakdown.HandName, breakdown.TotalScore, reward)

	case g.handsLeft == 0:
		g.phase = PhaseRunOver
		result.RunOver = true
		log.Printf("[PLAY] %s for %d, out of hands at %d/%d, run over",
			breakdown.HandName, breakdown.TotalScore, g.score, g.Target())

	default:
		// Blind continues: replace the played cards.
		if _, err := g.deck.Draw(poker.HandSize, g.stream); err != nil {
			return nil, err
		}
		log.Printf("[PLAY] %s for %d, %d/%d with %d hand(s) left",
			breakdown.HandName, breakdown.TotalScore, g.score, g.Target(), g.handsLeft)
	}

	return result, nil
}

// AutoPick finds the 5 pool indices that would score highest right now,
// without playing them. Pure: no state (and no RNG) is consumed, and ties
// resolve to the lexicographically first combination.
func (g *Game) AutoPick() ([]int, error) {
	if g.phase != PhaseHandInPlay {
		return nil, fmt.Errorf("auto-pick during %s: %w", g.phase, ErrIllegalTransition)
	}
	if len(g.deck.Pool) < poker.HandSize {
		return nil, fmt.Errorf("pool has %d cards: %w", len(g.deck.Pool), ErrInsufficientCards)
	}

	var best []int
	bestScore := -1
	for _, combo := range poker.IndexCombinations(len(g.deck.Pool), poker.HandSize) {
		cards, err := g.deck.CardsAt(combo)
		if err != nil {
			return nil, err
		}
		breakdown, err := poker.ScoreHand(cards, g.jokers, g.slot == blinds.SlotBoss)
		if err != nil {
			return nil, err
		}
		if breakdown.TotalScore > bestScore {
			bestScore = breakdown.TotalScore
			best = combo
		}
	}

	return best, nil
}

// Buy purchases a shop offer into the joker collection. The collection cap
// is checked before the balance, so a full collection always reports
// ErrCollectionFull regardless of coins.
func (g *Game) Buy(offerIndex int) error {
	if g.phase != PhaseShop {
		return fmt.Errorf("buy during %s: %w", g.phase, ErrIllegalTransition)
	}
	if offerIndex < 0 || offerIndex >= len(g.shop.Offers) {
		return fmt.Errorf("offer index %d out of range [0,%d): %w",
			offerIndex, len(g.shop.Offers), ErrInvalidIndex)
	}
	if len(g.jokers) >= game_constants.MaxJokersPerPlayer {
		return fmt.Errorf("collection at %d: %w", len(g.jokers), ErrCollectionFull)
	}

	offer := g.shop.Offers[offerIndex]
	if g.coins < offer.Price {
		return fmt.Errorf("have %d, need %d: %w", g.coins, offer.Price, ErrInsufficientCoins)
	}

	g.coins -= offer.Price
	g.jokers = append(g.jokers, poker.JokerInstance{
		DefinitionID: offer.DefinitionID,
		Rarity:       offer.Rarity,
		Cost:         offer.Price,
	})
	g.shop.Offers = append(g.shop.Offers[:offerIndex], g.shop.Offers[offerIndex+1:]...)

	log.Printf("[SHOP] Bought %s for %d, %d coin(s) left", offer.Name, offer.Price, g.coins)
	return nil
}

// Reroll replaces the shop's offers for a fixed coin cost.
func (g *Game) Reroll() error {
	if g.phase != PhaseShop {
		return fmt.Errorf("reroll during %s: %w", g.phase, ErrIllegalTransition)
	}
	if g.coins < game_constants.REROLL_COST {
		return fmt.Errorf("have %d, reroll costs %d: %w",
			g.coins, game_constants.REROLL_COST, ErrInsufficientCoins)
	}

	g.coins -= game_constants.REROLL_COST
	g.shop.Reroll(g.stream, g.jokers)

	log.Printf("[SHOP] Reroll #%d, %d coin(s) left", g.shop.Rerolls, g.coins)
	return nil
}

// Skip leaves the shop and advances to the next blind. Crossing into a new
// ante rebuilds the deck from scratch; otherwise the leftover pool is
// flushed to the discard pile.
func (g *Game) Skip() error {
	if g.phase != PhaseShop {
		return fmt.Errorf("skip during %s: %w", g.phase, ErrIllegalTransition)
	}

	ante, slot, rollover := blinds.Next(g.ante, g.slot)
	g.ante = ante
	g.slot = slot

	if rollover {
		g.deck = poker.NewDeck(g.stream)
	} else {
		g.deck.FlushPool()
	}

	g.score = 0
	g.handsLeft = game_constants.TOTAL_HAND_PLAYS
	g.discardsLeft = game_constants.TOTAL_DISCARDS
	g.shop = nil
	g.phase = PhaseAwaitingDeal

	log.Printf("[BLIND] Ante %d %s blind, target %d", g.ante, g.slot, g.Target())
	return nil
}

// View is the observable state returned alongside every action result.
type View struct {
	Seed          uint64                `json:"seed"`
	Phase         Phase                 `json:"phase"`
	Ante          int                   `json:"ante"`
	Blind         blinds.Slot           `json:"blind"`
	Target        int                   `json:"target"`
	Score         int                   `json:"score"`
	HandsLeft     int                   `json:"hands_left"`
	DiscardsLeft  int                   `json:"discards_left"`
	Coins         int                   `json:"coins"`
	Pool          []poker.Card          `json:"pool"`
	Jokers        []poker.JokerInstance `json:"jokers"`
	Shop          *shop.Shop            `json:"shop,omitempty"`
	LastBreakdown *poker.Breakdown      `json:"last_breakdown,omitempty"`
	Stats         Stats                 `json:"stats"`
}

func (g *Game) View() *View {
	jokers := make([]poker.JokerInstance, len(g.jokers))
	copy(jokers, g.jokers)

	var shopView *shop.Shop
	if g.shop != nil {
		offers := make([]shop.Offer, len(g.shop.Offers))
		copy(offers, g.shop.Offers)
		shopView = &shop.Shop{Offers: offers, Rerolls: g.shop.Rerolls}
	}

	return &View{
		Seed:          g.seed,
		Phase:         g.phase,
		Ante:          g.ante,
		Blind:         g.slot,
		Target:        g.Target(),
		Score:         g.score,
		HandsLeft:     g.handsLeft,
		DiscardsLeft:  g.discardsLeft,
		Coins:         g.coins,
		Pool:          g.poolCopy(),
		Jokers:        jokers,
		Shop:          shopView,
		LastBreakdown: g.lastBreakdown,
		Stats:         g.stats,
	}
}

func (g *Game) poolCopy() []poker.Card {
	pool := make([]poker.Card, len(g.deck.Pool))
	copy(pool, g.deck.Pool)
	return pool
}
