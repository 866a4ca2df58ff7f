package blinds

import (
	game_constants "Farolero/constants/game"
)

// Slot is one of the three blinds an ante is made of.
type Slot string

const (
	SlotSmall Slot = "Small"
	SlotBig   Slot = "Big"
	SlotBoss  Slot = "Boss"
)

// TargetFor is the score threshold for a blind. Pure function of
// (ante, slot); callers may cache it but never store it authoritatively.
func TargetFor(ante int, slot Slot) int {
	base := game_constants.BASE_BLIND + (ante-1)*game_constants.BLIND_STEP
	switch slot {
	case SlotSmall:
		return base * 3 / 4
	case SlotBoss:
		return base * 5 / 4
	default:
		return base
	}
}

// RewardFor is the coin payout for clearing a blind: 3/4/6 for
// Small/Big/Boss plus an ante bonus of ante/2, granted exactly once.
func RewardFor(ante int, slot Slot) int {
	reward := 3
	switch slot {
	case SlotBig:
		reward = 4
	case SlotBoss:
		reward = 6
	}
	return reward + ante/2
}

// Next advances the progression: Small -> Big -> Boss -> next ante's Small.
// The bool reports whether the ante rolled over (deck rebuild point).
func Next(ante int, slot Slot) (int, Slot, bool) {
	switch slot {
	case SlotSmall:
		return ante, SlotBig, false
	case SlotBig:
		return ante, SlotBoss, false
	default:
		return ante + 1, SlotSmall, true
	}
}
