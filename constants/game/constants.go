package game_constants

const MaxJokersPerPlayer = 5
const TOTAL_HAND_PLAYS = 3
const TOTAL_DISCARDS = 2
const DRAW_SIZE = 8
const HAND_SIZE = 5
const STARTING_COINS = 5

// Blind target curve: base = BASE_BLIND + (ante-1)*BLIND_STEP,
// then Small/Big/Boss scale it by 0.75 / 1.0 / 1.25
const BASE_BLIND = 80
const BLIND_STEP = 60

// Shop constants
const SHOP_OFFERS = 3
const REROLL_COST = 2

// Rarity weights for shop rolls (out of 100)
const (
	WEIGHT_COMMON   = 70
	WEIGHT_UNCOMMON = 25
	WEIGHT_RARE     = 5
)
