package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSaveRecord(t *testing.T) {
	save := DefaultSaveRecord()
	assert.Equal(t, 250, save.Coins)
	assert.Equal(t, 5, save.Parts)
	assert.Equal(t, 0, save.BestScore)
	assert.NotNil(t, save.Blueprints)
	assert.Empty(t, save.Blueprints)
	assert.Equal(t, Equipment{GloveLv: 1, HammerLv: 1, DroneLv: 1}, save.Equipment)
}

func TestEncodeDecodeSaveRecord(t *testing.T) {
	tests := []struct {
		name   string
		record SaveRecord
	}{
		{name: "default", record: DefaultSaveRecord()},
		{
			name: "progressed",
			record: SaveRecord{
				Coins:      1234,
				Parts:      17,
				Blueprints: map[string]int{"vault_core": 3, "old_lock": 0},
				Equipment:  Equipment{GloveLv: 10, HammerLv: 4, DroneLv: 7},
				BestScore:  2450,
			},
		},
		{
			name:   "nil blueprints",
			record: SaveRecord{Coins: 0, Parts: 0, Equipment: Equipment{GloveLv: 1, HammerLv: 1, DroneLv: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EncodeSaveRecord(tt.record)
			require.NoError(t, err)

			got, err := DecodeSaveRecord(b)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.record), "got %+v want %+v", got, tt.record)
		})
	}
}

func TestDecodeSaveRecord_MergesDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
		want SaveRecord
	}{
		{
			name: "empty object",
			data: `{}`,
			want: DefaultSaveRecord(),
		},
		{
			name: "partial equipment",
			data: `{"coins": 40, "equipment": {"hammerLv": 6}}`,
			want: SaveRecord{Coins: 40, Parts: 5, Blueprints: map[string]int{}, Equipment: Equipment{GloveLv: 1, HammerLv: 6, DroneLv: 1}},
		},
		{
			name: "malformed fields fall back",
			data: `{"coins": "lots", "parts": 2, "blueprints": [1, 2], "equipment": "shiny", "bestScore": 99}`,
			want: SaveRecord{Coins: 250, Parts: 2, Blueprints: map[string]int{}, Equipment: Equipment{GloveLv: 1, HammerLv: 1, DroneLv: 1}, BestScore: 99},
		},
		{
			name: "null blueprints",
			data: `{"blueprints": null}`,
			want: DefaultSaveRecord(),
		},
		{
			name: "out of range values are clamped",
			data: `{"coins": -5, "parts": -1, "bestScore": -10, "blueprints": {"vault_core": -2}, "equipment": {"gloveLv": 0, "hammerLv": 42, "droneLv": 3}}`,
			want: SaveRecord{Coins: 0, Parts: 0, Blueprints: map[string]int{"vault_core": 0}, Equipment: Equipment{GloveLv: 1, HammerLv: 10, DroneLv: 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSaveRecord([]byte(tt.data))
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %+v want %+v", got, tt.want)
			assert.NotNil(t, got.Blueprints)
		})
	}
}

func TestDecodeSaveRecord_Malformed(t *testing.T) {
	for _, data := range []string{``, `not json`, `[1,2,3]`, `"save"`, `null`} {
		got, err := DecodeSaveRecord([]byte(data))
		assert.Error(t, err, data)
		assert.True(t, got.Equal(DefaultSaveRecord()), data)
	}
}

func TestSaveRecord_Copy(t *testing.T) {
	save := DefaultSaveRecord()
	save.Blueprints["vault_core"] = 1

	c := save.Copy()
	c.Blueprints["vault_core"] = 5
	c.Equipment.GloveLv = 9

	assert.Equal(t, 1, save.Blueprints["vault_core"])
	assert.Equal(t, 1, save.Equipment.GloveLv)
	assert.Equal(t, 5, c.BlueprintCount())
}

func TestEquipment_Levels(t *testing.T) {
	eq := Equipment{GloveLv: 1, HammerLv: 2, DroneLv: 3}
	assert.Equal(t, 2, eq.Level(EquipmentHammer))
	assert.Equal(t, Equipment{GloveLv: 1, HammerLv: 2, DroneLv: 9}, eq.WithLevel(EquipmentDrone, 9))
	assert.Equal(t, 3, eq.Level(EquipmentDrone))
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "upgrade glove", NormalizeInput("  Upgrade GLOVE \n"))
	assert.Equal(t, "", NormalizeInput(" \t "))
}

func TestPhaseText(t *testing.T) {
	for _, phase := range []Phase{PhaseMain, PhaseGarage, PhaseRun, PhaseResult} {
		b, err := phase.MarshalText()
		require.NoError(t, err)
		var got Phase
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, phase, got)
	}
	var p Phase
	assert.Error(t, p.UnmarshalText([]byte("LOBBY")))
}
