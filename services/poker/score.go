package poker

import "log"

// JokerContribution is one joker's line in the score breakdown, in
// acquisition order. Untriggered jokers still appear so the caller can show
// why a joker stayed silent.
type JokerContribution struct {
	DefinitionID string `json:"definition_id"`
	Name         string `json:"name"`
	Triggered    bool   `json:"triggered"`
	Chips        int    `json:"chips"`
	Mult         int    `json:"mult"`
}

// Breakdown exposes every intermediate value of the scoring pipeline.
type Breakdown struct {
	Category     HandCategory        `json:"category"`
	HandName     string              `json:"hand_name"`
	ScoringCards []Card              `json:"scoring_cards"`
	BaseChips    int                 `json:"base_chips"`
	BaseMult     int                 `json:"base_mult"`
	CardChips    int                 `json:"card_chips"`
	BonusChips   int                 `json:"bonus_chips"`
	BonusMult    int                 `json:"bonus_mult"`
	TotalChips   int                 `json:"total_chips"`
	TotalMult    int                 `json:"total_mult"`
	TotalScore   int                 `json:"total_score"`
	Jokers       []JokerContribution `json:"jokers"`
}

// ScoreHand runs the full pipeline over exactly 5 played cards:
// base chips/mult from the classified category, card chips from each played
// card, then the joker collection in acquisition order. All integer math;
// no side effects, identical inputs give identical breakdowns.
func ScoreHand(cards []Card, jokers []JokerInstance, bossBlind bool) (*Breakdown, error) {
	category, scoring, err := Evaluate(cards)
	if err != nil {
		return nil, err
	}

	base := category.Base()
	cardChips := AddChipsPerCard(cards)

	bonusChips, bonusMult := 0, 0
	contributions := make([]JokerContribution, 0, len(jokers))
	for _, owned := range jokers {
		def, ok := LookupJoker(owned.DefinitionID)
		if !ok {
			log.Printf("[SCORE-WARN] Unknown joker id %q, skipping", owned.DefinitionID)
			continue
		}

		chips, mult, triggered := def.Apply(cards, category, bossBlind)
		bonusChips += chips
		bonusMult += mult
		contributions = append(contributions, JokerContribution{
			DefinitionID: def.ID,
			Name:         def.Name,
			Triggered:    triggered,
			Chips:        chips,
			Mult:         mult,
		})
	}

	totalChips := base.Chips + cardChips + bonusChips
	totalMult := base.Mult + bonusMult

	return &Breakdown{
		Category:     category,
		HandName:     category.String(),
		ScoringCards: scoring,
		BaseChips:    base.Chips,
		BaseMult:     base.Mult,
		CardChips:    cardChips,
		BonusChips:   bonusChips,
		BonusMult:    bonusMult,
		TotalChips:   totalChips,
		TotalMult:    totalMult,
		TotalScore:   totalChips * totalMult,
		Jokers:       contributions,
	}, nil
}
