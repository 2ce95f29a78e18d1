package types

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/corebreaker/pkg/game/constants"
)

// SaveRecord is the persisted player progression.
type SaveRecord struct {
	Coins      int            `json:"coins"`
	Parts      int            `json:"parts"`
	Blueprints map[string]int `json:"blueprints"`
	Equipment  Equipment      `json:"equipment"`
	BestScore  int            `json:"bestScore"`
}

// Equipment holds the level of each upgradable item.
type Equipment struct {
	GloveLv  int `json:"gloveLv"`
	HammerLv int `json:"hammerLv"`
	DroneLv  int `json:"droneLv"`
}

// EquipmentSlot identifies one of the upgradable items.
type EquipmentSlot uint8

const (
	EquipmentGlove EquipmentSlot = iota
	EquipmentHammer
	EquipmentDrone
)

func (s EquipmentSlot) String() string {
	switch s {
	case EquipmentGlove:
		return "Glove"
	case EquipmentHammer:
		return "Hammer"
	case EquipmentDrone:
		return "Drone"
	default:
		return "Unknown"
	}
}

// Level returns the level of the given slot
func (e Equipment) Level(slot EquipmentSlot) int {
	switch slot {
	case EquipmentGlove:
		return e.GloveLv
	case EquipmentHammer:
		return e.HammerLv
	case EquipmentDrone:
		return e.DroneLv
	default:
		return 0
	}
}

// WithLevel returns a copy of the equipment with the given slot set to level
func (e Equipment) WithLevel(slot EquipmentSlot, level int) Equipment {
	switch slot {
	case EquipmentGlove:
		e.GloveLv = level
	case EquipmentHammer:
		e.HammerLv = level
	case EquipmentDrone:
		e.DroneLv = level
	}
	return e
}

// DefaultSaveRecord returns the progression of a brand new player.
func DefaultSaveRecord() SaveRecord {
	return SaveRecord{
		Coins:      constants.DefaultCoins,
		Parts:      constants.DefaultParts,
		Blueprints: make(map[string]int),
		Equipment: Equipment{
			GloveLv:  constants.EquipmentMinLevel,
			HammerLv: constants.EquipmentMinLevel,
			DroneLv:  constants.EquipmentMinLevel,
		},
		BestScore: 0,
	}
}

// Copy returns a deep copy of the record
func (s SaveRecord) Copy() SaveRecord {
	blueprints := make(map[string]int, len(s.Blueprints))
	for id, count := range s.Blueprints {
		blueprints[id] = count
	}
	s.Blueprints = blueprints
	return s
}

// BlueprintCount returns the total number of blueprints owned
func (s SaveRecord) BlueprintCount() int {
	total := 0
	for _, count := range s.Blueprints {
		total += count
	}
	return total
}

// Equal returns true if both records hold the same progression.
// A nil and an empty blueprint map are equal.
func (s SaveRecord) Equal(other SaveRecord) bool {
	if s.Coins != other.Coins ||
		s.Parts != other.Parts ||
		s.Equipment != other.Equipment ||
		s.BestScore != other.BestScore ||
		len(s.Blueprints) != len(other.Blueprints) {
		return false
	}
	for id, count := range s.Blueprints {
		if otherCount, ok := other.Blueprints[id]; !ok || otherCount != count {
			return false
		}
	}
	return true
}

// Clamp returns a copy of the record with every field inside its valid range.
func (s SaveRecord) Clamp() SaveRecord {
	s = s.Copy()
	s.Coins = max(0, s.Coins)
	s.Parts = max(0, s.Parts)
	s.BestScore = max(0, s.BestScore)
	for id, count := range s.Blueprints {
		if count < 0 {
			s.Blueprints[id] = 0
		}
	}
	s.Equipment.GloveLv = clampLevel(s.Equipment.GloveLv)
	s.Equipment.HammerLv = clampLevel(s.Equipment.HammerLv)
	s.Equipment.DroneLv = clampLevel(s.Equipment.DroneLv)
	return s
}

func clampLevel(level int) int {
	return min(constants.EquipmentMaxLevel, max(constants.EquipmentMinLevel, level))
}

// EncodeSaveRecord serializes a record to its stored JSON document.
func EncodeSaveRecord(s SaveRecord) ([]byte, error) {
	if s.Blueprints == nil {
		s.Blueprints = make(map[string]int)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save record: %v", err)
	}
	return b, nil
}

// DecodeSaveRecord parses a stored JSON document. Fields that are missing or
// fail to decode take their default value, and the result is clamped. An
// error is returned only when the document is not a JSON object.
func DecodeSaveRecord(b []byte) (SaveRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return DefaultSaveRecord(), fmt.Errorf("failed to unmarshal save record: %v", err)
	}
	if fields == nil {
		return DefaultSaveRecord(), fmt.Errorf("save record is not an object")
	}

	record := DefaultSaveRecord()
	decodeField(fields, "coins", &record.Coins)
	decodeField(fields, "parts", &record.Parts)
	decodeField(fields, "bestScore", &record.BestScore)

	blueprints := make(map[string]int)
	if decodeField(fields, "blueprints", &blueprints) && blueprints != nil {
		record.Blueprints = blueprints
	}

	var equipment map[string]json.RawMessage
	if decodeField(fields, "equipment", &equipment) {
		decodeField(equipment, "gloveLv", &record.Equipment.GloveLv)
		decodeField(equipment, "hammerLv", &record.Equipment.HammerLv)
		decodeField(equipment, "droneLv", &record.Equipment.DroneLv)
	}

	return record.Clamp(), nil
}

// decodeField unmarshals fields[key] into target, leaving target untouched
// when the key is missing or its value does not fit.
func decodeField[T any](fields map[string]json.RawMessage, key string, target *T) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}
	*target = value
	return true
}
