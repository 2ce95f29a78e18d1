package game

import (
	"fmt"

	"github.com/cbodonnell/corebreaker/pkg/game/constants"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// UpgradeCost returns the coins needed to raise an item from level.
func UpgradeCost(level int) int {
	return (level + 1) * constants.UpgradeCostPerLevel
}

func (t *transition) upgrade(slot types.EquipmentSlot) {
	save := &t.state.Save
	level := save.Equipment.Level(slot)
	if level >= constants.EquipmentMaxLevel {
		t.system(fmt.Sprintf("%s is already at max level.", slot))
		return
	}

	cost := UpgradeCost(level)
	if save.Coins < cost {
		t.system(fmt.Sprintf("Not enough coins. Required coins: %d", cost))
		return
	}

	save.Coins -= cost
	save.Equipment = save.Equipment.WithLevel(slot, level+1)
	t.markSave()
	t.system(fmt.Sprintf("%s upgraded! Lv.%d (Coins -%d)", slot, level+1, cost))
	t.enterGarage()
}
