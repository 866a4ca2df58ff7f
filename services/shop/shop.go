package shop

import (
	"log"

	game_constants "Farolero/constants/game"
	"Farolero/services/poker"
	"Farolero/services/rng"
)

// Offer is a single purchasable joker row in the shop.
type Offer struct {
	DefinitionID string       `json:"definition_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Rarity       poker.Rarity `json:"rarity"`
	Price        int          `json:"price"`
}

// Shop holds one blind clearance's offers plus the reroll counter.
type Shop struct {
	Offers  []Offer `json:"offers"`
	Rerolls int     `json:"rerolls"`
}

var rarityWeights = []struct {
	Rarity poker.Rarity
	Weight int
}{
	{poker.RarityCommon, game_constants.WEIGHT_COMMON},
	{poker.RarityUncommon, game_constants.WEIGHT_UNCOMMON},
	{poker.RarityRare, game_constants.WEIGHT_RARE},
}

// rollRarity draws a rarity tier by weight (70/25/5), consuming one value
// from the stream.
func rollRarity(stream *rng.Stream) poker.Rarity {
	total := 0
	for _, rw := range rarityWeights {
		total += rw.Weight
	}

	roll := stream.Intn(total)
	for _, rw := range rarityWeights {
		if roll < rw.Weight {
			return rw.Rarity
		}
		roll -= rw.Weight
	}

	return poker.RarityCommon
}

// Generate rolls the shop's offers: for each slot a weighted rarity draw,
// then a uniform draw among that rarity's definitions that are neither
// owned nor already offered. Exhausted tiers fall back common -> uncommon
// -> rare. Never offers duplicates.
func Generate(stream *rng.Stream, owned []poker.JokerInstance) *Shop {
	excluded := make(map[string]bool, len(owned))
	for _, j := range owned {
		excluded[j.DefinitionID] = true
	}

	offers := make([]Offer, 0, game_constants.SHOP_OFFERS)
	for i := 0; i < game_constants.SHOP_OFFERS; i++ {
		rarity := rollRarity(stream)

		candidates := available(rarity, excluded)
		if len(candidates) == 0 {
			candidates = fallback(excluded)
		}
		if len(candidates) == 0 {
			// Player owns the entire catalog of what's left; short shop.
			log.Printf("[SHOP] No candidates left, offering %d item(s)", len(offers))
			break
		}

		def := candidates[stream.Intn(len(candidates))]
		excluded[def.ID] = true

		offers = append(offers, Offer{
			DefinitionID: def.ID,
			Name:         def.Name,
			Description:  def.Description,
			Rarity:       def.Rarity,
			Price:        def.Cost,
		})
	}

	return &Shop{Offers: offers}
}

// available lists a tier's candidates in registry order, so the uniform
// draw is reproducible.
func available(rarity poker.Rarity, excluded map[string]bool) []poker.JokerDefinition {
	var out []poker.JokerDefinition
	for _, def := range poker.JokersByRarity(rarity) {
		if !excluded[def.ID] {
			out = append(out, def)
		}
	}
	return out
}

func fallback(excluded map[string]bool) []poker.JokerDefinition {
	for _, rarity := range []poker.Rarity{poker.RarityCommon, poker.RarityUncommon, poker.RarityRare} {
		if candidates := available(rarity, excluded); len(candidates) > 0 {
			return candidates
		}
	}
	return nil
}

// Reroll replaces the offer rows, keeping count. The caller is responsible
// for charging the reroll cost first.
func (s *Shop) Reroll(stream *rng.Stream, owned []poker.JokerInstance) {
	rerolled := Generate(stream, owned)
	s.Offers = rerolled.Offers
	s.Rerolls++
}
