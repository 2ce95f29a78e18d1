package constants

const (
	// RunStartTime is the simulated time a run starts with, in seconds
	RunStartTime float64 = 40.0

	// ShieldHP is the health of the first stage
	ShieldHP int = 180
	// WeakPointHP is the health of the second stage
	WeakPointHP int = 120
	// CoreHP is the health of the final stage
	CoreHP int = 220
	// CoreWarningHP is the Core health at or below which the prompt warns the core is unstable
	CoreWarningHP int = 22

	// IndicatorSlots is the number of positions on the weakness indicator
	IndicatorSlots int = 7
	// IndicatorCenter is the perfect timing slot
	IndicatorCenter int = 3

	// TapBaseDamage is the HIT damage before glove levels
	TapBaseDamage int = 10
	// ChargedBaseDamage is the CHARGE damage before hammer levels
	ChargedBaseDamage int = 45
	// ChargedDamagePerHammerLevel is the CHARGE damage added per hammer level
	ChargedDamagePerHammerLevel int = 3
	// FocusDamageFactor scales tap damage for FOCUS
	FocusDamageFactor float64 = 0.4

	PerfectMultiplier float64 = 2.0
	GreatMultiplier   float64 = 1.5
	GoodMultiplier    float64 = 1.0
	MissMultiplier    float64 = 0

	// CounterGaugeMax triggers a stun when reached
	CounterGaugeMax int = 100
	// CounterGaugeMissGain is added to the gauge on a Miss
	CounterGaugeMissGain int = 10
	// CounterGaugePerfectDrain is removed from the gauge on a Perfect, plus the drone level
	CounterGaugePerfectDrain int = 15
	// CounterGaugeFocusDrain is removed from the gauge on FOCUS, plus the drone level
	CounterGaugeFocusDrain int = 10
	// StunTurns is the number of turns a stun lasts
	StunTurns int = 1

	// Time costs per action, in seconds
	HitTimeCost    float64 = 1.6
	ChargeTimeCost float64 = 2.0
	FocusTimeCost  float64 = 1.2
	StunTimeCost   float64 = 1.0

	// Score weights
	ScorePerPerfect       int = 50
	ScorePerMaxCombo      int = 20
	ScorePerSecondLeft    int = 10
	RankSThreshold        int = 2200
	RankAThreshold        int = 1700
	RankBThreshold        int = 1200
	RewardCoinsMin        int = 50
	RewardCoinsMax        int = 90
	RewardPartsMin        int = 1
	RewardPartsMax        int = 3
	BlueprintChanceRankS  float64 = 0.10
	BlueprintChanceOthers float64 = 0.05
	// BlueprintID is the blueprint granted on a lucky result
	BlueprintID string = "vault_core"

	// UpgradeCostPerLevel is multiplied by the next level to get the coin cost
	UpgradeCostPerLevel int = 100
	// EquipmentMinLevel is the starting level of every equipment item
	EquipmentMinLevel int = 1
	// EquipmentMaxLevel is the highest level an equipment item can reach
	EquipmentMaxLevel int = 10

	// DefaultCoins is the coin balance of a fresh save
	DefaultCoins int = 250
	// DefaultParts is the part count of a fresh save
	DefaultParts int = 5
)
