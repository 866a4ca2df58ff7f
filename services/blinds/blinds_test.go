package blinds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetFor(t *testing.T) {
	tests := []struct {
		ante   int
		slot   Slot
		target int
	}{
		{1, SlotSmall, 60},
		{1, SlotBig, 80},
		{1, SlotBoss, 100},
		{2, SlotSmall, 105},
		{2, SlotBig, 140},
		{2, SlotBoss, 175},
		{3, SlotSmall, 150},
		{3, SlotBig, 200},
		{3, SlotBoss, 250},
		{8, SlotBig, 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.target, TargetFor(tt.ante, tt.slot),
			"ante %d %s", tt.ante, tt.slot)
	}
}

func TestRewardFor(t *testing.T) {
	// Base 3/4/6 plus ante/2.
	assert.Equal(t, 3, RewardFor(1, SlotSmall))
	assert.Equal(t, 4, RewardFor(1, SlotBig))
	assert.Equal(t, 6, RewardFor(1, SlotBoss))
	assert.Equal(t, 4, RewardFor(2, SlotSmall))
	assert.Equal(t, 7, RewardFor(3, SlotBoss))
	assert.Equal(t, 10, RewardFor(8, SlotBoss))
}

func TestNext(t *testing.T) {
	ante, slot, rollover := Next(1, SlotSmall)
	assert.Equal(t, 1, ante)
	assert.Equal(t, SlotBig, slot)
	assert.False(t, rollover)

	ante, slot, rollover = Next(1, SlotBig)
	assert.Equal(t, 1, ante)
	assert.Equal(t, SlotBoss, slot)
	assert.False(t, rollover)

	// Boss clears into the next ante's Small blind.
	ante, slot, rollover = Next(1, SlotBoss)
	assert.Equal(t, 2, ante)
	assert.Equal(t, SlotSmall, slot)
	assert.True(t, rollover)
}
