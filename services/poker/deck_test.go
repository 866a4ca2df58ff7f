package poker

import (
	"testing"

	"Farolero/services/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The three piles must always partition the 52-card deck.
func assertDeckPartition(t *testing.T, d *Deck) {
	t.Helper()

	seen := make(map[Card]bool, 52)
	for _, pile := range [][]Card{d.DrawPile, d.Pool, d.DiscardPile} {
		for _, card := range pile {
			assert.True(t, ValidCard(card), "invalid card %s", card)
			assert.False(t, seen[card], "duplicate card %s", card)
			seen[card] = true
		}
	}
	assert.Equal(t, 52, len(seen))
	assert.Equal(t, 52, d.Size())
}

func TestNewDeck(t *testing.T) {
	d := NewDeck(rng.NewStream(42))

	assert.Len(t, d.DrawPile, 52)
	assert.Empty(t, d.Pool)
	assert.Empty(t, d.DiscardPile)
	assertDeckPartition(t, d)
}

// The same seed always shuffles the same order.
func TestNewDeckDeterministic(t *testing.T) {
	first := NewDeck(rng.NewStream(42))
	second := NewDeck(rng.NewStream(42))
	assert.Equal(t, first.DrawPile, second.DrawPile)

	other := NewDeck(rng.NewStream(43))
	assert.NotEqual(t, first.DrawPile, other.DrawPile)
}

func TestDrawAndDiscard(t *testing.T) {
	stream := rng.NewStream(7)
	d := NewDeck(stream)

	drawn, err := d.Draw(8, stream)
	require.NoError(t, err)
	assert.Len(t, drawn, 8)
	assert.Len(t, d.Pool, 8)
	assert.Len(t, d.DrawPile, 44)
	assertDeckPartition(t, d)

	require.NoError(t, d.Discard([]int{0, 2, 4}))
	assert.Len(t, d.Pool, 5)
	assert.Len(t, d.DiscardPile, 3)
	assertDeckPartition(t, d)
}

func TestDiscardRejectsBadIndices(t *testing.T) {
	stream := rng.NewStream(7)
	d := NewDeck(stream)
	_, err := d.Draw(8, stream)
	require.NoError(t, err)

	assert.ErrorIs(t, d.CheckPoolIndices([]int{8}), ErrInvalidIndex)
	assert.ErrorIs(t, d.CheckPoolIndices([]int{-1}), ErrInvalidIndex)
	assert.ErrorIs(t, d.CheckPoolIndices([]int{1, 1}), ErrInvalidIndex)
	assert.NoError(t, d.CheckPoolIndices([]int{0, 1, 7}))

	assert.ErrorIs(t, d.Discard([]int{3, 3}), ErrInvalidIndex)
	// Failed discard must not move anything.
	assert.Len(t, d.Pool, 8)
	assert.Empty(t, d.DiscardPile)
}

// Draining the draw pile reshuffles the discards back in.
func TestDrawReshufflesDiscards(t *testing.T) {
	stream := rng.NewStream(11)
	d := NewDeck(stream)

	// Cycle cards until the draw pile runs too short for a refill.
	for len(d.DrawPile) >= 5 {
		_, err := d.Draw(8-len(d.Pool), stream)
		require.NoError(t, err)
		require.NoError(t, d.Discard([]int{0, 1, 2, 3, 4}))
	}

	drawn, err := d.Draw(8-len(d.Pool), stream)
	require.NoError(t, err)
	assert.NotEmpty(t, drawn)
	assert.Empty(t, d.DiscardPile, "discards should have been reshuffled in")
	assertDeckPartition(t, d)
}

func TestDrawInsufficientCards(t *testing.T) {
	stream := rng.NewStream(11)
	d := NewDeck(stream)

	_, err := d.Draw(40, stream)
	require.NoError(t, err)

	// 12 cards remain across draw pile and discards.
	_, err = d.Draw(13, stream)
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestCardsAt(t *testing.T) {
	stream := rng.NewStream(3)
	d := NewDeck(stream)
	_, err := d.Draw(8, stream)
	require.NoError(t, err)

	cards, err := d.CardsAt([]int{1, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, []Card{d.Pool[1], d.Pool[3], d.Pool[5]}, cards)

	_, err = d.CardsAt([]int{42})
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestFlushPool(t *testing.T) {
	stream := rng.NewStream(3)
	d := NewDeck(stream)
	_, err := d.Draw(8, stream)
	require.NoError(t, err)

	d.FlushPool()
	assert.Empty(t, d.Pool)
	assert.Len(t, d.DiscardPile, 8)
	assertDeckPartition(t, d)
}
