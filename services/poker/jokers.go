package poker

// Rarity is a joker's shop-weight tier.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// TriggerKind is the closed set of joker trigger predicates. Effects are
// interpreted over these kinds plus the definition's parameters, so adding
// a joker means adding a registry row, never a new scoring code path.
type TriggerKind string

const (
	// TriggerAlways fires on every played hand.
	TriggerAlways TriggerKind = "always"
	// TriggerRankContains fires if any played card has Rank.
	TriggerRankContains TriggerKind = "rank_contains"
	// TriggerSuitCount fires if at least Threshold cards share Suit.
	TriggerSuitCount TriggerKind = "suit_count"
	// TriggerAllSuits fires if all four suits appear among the played cards.
	TriggerAllSuits TriggerKind = "all_suits"
	// TriggerAllOdd fires if every played card has an odd rank.
	TriggerAllOdd TriggerKind = "all_odd"
	// TriggerCategoryAtLeast fires if the hand is Category or better.
	TriggerCategoryAtLeast TriggerKind = "category_at_least"
	// TriggerCategoryEquals fires only on exactly Category.
	TriggerCategoryEquals TriggerKind = "category_equals"
	// TriggerDistinctRanks fires at Threshold distinct ranks; the bonus is
	// scaled by the distinct-rank count.
	TriggerDistinctRanks TriggerKind = "distinct_ranks"
	// TriggerHighCards fires at Threshold cards in the 10..A tier; the
	// bonus is scaled by that count.
	TriggerHighCards TriggerKind = "high_cards"
	// TriggerBossBlind fires on any hand played against a boss blind.
	TriggerBossBlind TriggerKind = "boss_blind"
)

// JokerDefinition is a static catalog entry. Chips/Mult are flat bonuses,
// except for the scaled trigger kinds where they apply per matching unit.
type JokerDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rarity      Rarity       `json:"rarity"`
	Cost        int          `json:"cost"`
	Trigger     TriggerKind  `json:"trigger"`
	Rank        string       `json:"rank,omitempty"`
	Suit        string       `json:"suit,omitempty"`
	Threshold   int          `json:"threshold,omitempty"`
	Category    HandCategory `json:"category,omitempty"`
	Chips       int          `json:"chips"`
	Mult        int          `json:"mult"`
}

// JokerInstance is an owned, order-significant entry in the player's
// collection. It never mutates after purchase.
type JokerInstance struct {
	DefinitionID string `json:"definition_id"`
	Rarity       Rarity `json:"rarity"`
	Cost         int    `json:"cost"`
}

// Apply evaluates the definition's trigger against a played hand and
// returns the chip/mult bonus it contributes.
func (def JokerDefinition) Apply(cards []Card, category HandCategory, bossBlind bool) (chips int, mult int, triggered bool) {
	switch def.Trigger {
	case TriggerAlways:
		return def.Chips, def.Mult, true

	case TriggerRankContains:
		for _, c := range cards {
			if c.Rank == def.Rank {
				return def.Chips, def.Mult, true
			}
		}

	case TriggerSuitCount:
		count := 0
		for _, c := range cards {
			if c.Suit == def.Suit {
				count++
			}
		}
		if count >= def.Threshold {
			return def.Chips, def.Mult, true
		}

	case TriggerAllSuits:
		suits := make(map[string]bool, 4)
		for _, c := range cards {
			suits[c.Suit] = true
		}
		if len(suits) == len(Suits) {
			return def.Chips, def.Mult, true
		}

	case TriggerAllOdd:
		for _, c := range cards {
			if !IsOddRank(c) {
				return 0, 0, false
			}
		}
		return def.Chips, def.Mult, true

	case TriggerCategoryAtLeast:
		if category >= def.Category {
			return def.Chips, def.Mult, true
		}

	case TriggerCategoryEquals:
		if category == def.Category {
			return def.Chips, def.Mult, true
		}

	case TriggerDistinctRanks:
		distinct := len(rankCounts(cards))
		if distinct >= def.Threshold {
			return def.Chips * distinct, def.Mult * distinct, true
		}

	case TriggerHighCards:
		count := 0
		for _, c := range cards {
			if IsHighTier(c) {
				count++
			}
		}
		min := def.Threshold
		if min < 1 {
			min = 1
		}
		if count >= min {
			return def.Chips * count, def.Mult * count, true
		}

	case TriggerBossBlind:
		if bossBlind {
			return def.Chips, def.Mult, true
		}
	}

	return 0, 0, false
}

// The registry keeps both a lookup map and a registration-order slice, so
// shop rolls iterate candidates deterministically.
var (
	jokerTable = map[string]JokerDefinition{}
	jokerOrder []string
)

// RegisterJoker adds (or replaces) a catalog entry. Registration order is
// preserved for deterministic sampling.
func RegisterJoker(def JokerDefinition) {
	if _, exists := jokerTable[def.ID]; !exists {
		jokerOrder = append(jokerOrder, def.ID)
	}
	jokerTable[def.ID] = def
}

// LookupJoker fetches a definition by id.
func LookupJoker(id string) (JokerDefinition, bool) {
	def, ok := jokerTable[id]
	return def, ok
}

// AllJokers returns every definition in registration order.
func AllJokers() []JokerDefinition {
	out := make([]JokerDefinition, 0, len(jokerOrder))
	for _, id := range jokerOrder {
		out = append(out, jokerTable[id])
	}
	return out
}

// JokersByRarity returns the definitions of one rarity tier, in
// registration order.
func JokersByRarity(r Rarity) []JokerDefinition {
	var out []JokerDefinition
	for _, id := range jokerOrder {
		if jokerTable[id].Rarity == r {
			out = append(out, jokerTable[id])
		}
	}
	return out
}

func init() {
	for _, def := range defaultJokers {
		RegisterJoker(def)
	}
}

var defaultJokers = []JokerDefinition{
	{
		ID: "steady_hand", Name: "Steady Hand", Rarity: RarityCommon, Cost: 3,
		Trigger: TriggerAlways, Chips: 10,
		Description: "+10 chips, no questions asked",
	},
	{
		ID: "lucky_seven", Name: "Lucky Seven", Rarity: RarityCommon, Cost: 3,
		Trigger: TriggerRankContains, Rank: "7", Chips: 10,
		Description: "+10 chips if the hand contains a 7",
	},
	{
		ID: "heartfelt", Name: "Heartfelt", Rarity: RarityCommon, Cost: 4,
		Trigger: TriggerSuitCount, Suit: "h", Threshold: 2, Chips: 8,
		Description: "+8 chips with two or more hearts",
	},
	{
		ID: "pair_pal", Name: "Pair Pal", Rarity: RarityCommon, Cost: 3,
		Trigger: TriggerCategoryEquals, Category: Pair, Chips: 15,
		Description: "+15 chips on a Pair",
	},
	{
		ID: "double_up", Name: "Double Up", Rarity: RarityCommon, Cost: 4,
		Trigger: TriggerCategoryEquals, Category: TwoPair, Chips: 20,
		Description: "+20 chips on a Two Pair",
	},
	{
		ID: "flush_fan", Name: "Flush Fan", Rarity: RarityCommon, Cost: 4,
		Trigger: TriggerCategoryEquals, Category: Flush, Mult: 2,
		Description: "+2 mult on a Flush",
	},
	{
		ID: "straight_arrow", Name: "Straight Arrow", Rarity: RarityCommon, Cost: 4,
		Trigger: TriggerCategoryEquals, Category: Straight, Chips: 20,
		Description: "+20 chips on a Straight",
	},
	{
		ID: "variety_show", Name: "Variety Show", Rarity: RarityUncommon, Cost: 5,
		Trigger: TriggerDistinctRanks, Threshold: 3, Mult: 1,
		Description: "+1 mult per distinct rank, from 3 distinct ranks up",
	},
	{
		ID: "court_company", Name: "Court Company", Rarity: RarityUncommon, Cost: 5,
		Trigger: TriggerHighCards, Threshold: 1, Chips: 4,
		Description: "+4 chips per card of rank 10 or above",
	},
	{
		ID: "boss_hunter", Name: "Boss Hunter", Rarity: RarityUncommon, Cost: 6,
		Trigger: TriggerBossBlind, Chips: 10, Mult: 2,
		Description: "+10 chips, +2 mult against a boss blind",
	},
	{
		ID: "club_crawl", Name: "Club Crawl", Rarity: RarityUncommon, Cost: 5,
		Trigger: TriggerSuitCount, Suit: "c", Threshold: 3, Mult: 3,
		Description: "+3 mult with three or more clubs",
	},
	{
		ID: "full_spectrum", Name: "Full Spectrum", Rarity: RarityRare, Cost: 7,
		Trigger: TriggerAllSuits, Mult: 4,
		Description: "+4 mult when all four suits are played",
	},
	{
		ID: "odd_job", Name: "Odd Job", Rarity: RarityRare, Cost: 7,
		Trigger: TriggerAllOdd, Mult: 5,
		Description: "+5 mult when every played rank is odd",
	},
	{
		ID: "high_society", Name: "High Society", Rarity: RarityRare, Cost: 8,
		Trigger: TriggerCategoryAtLeast, Category: FullHouse, Chips: 20, Mult: 3,
		Description: "+20 chips, +3 mult on a Full House or better",
	},
}
