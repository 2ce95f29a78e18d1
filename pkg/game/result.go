package game

import (
	"math"

	"github.com/cbodonnell/corebreaker/pkg/game/constants"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// Score returns the score of a finished run.
func Score(run *types.RunState) int {
	secondsLeft := int(math.Floor(run.TimeLeft))
	return run.TotalDamage +
		run.PerfectCount*constants.ScorePerPerfect +
		run.MaxCombo*constants.ScorePerMaxCombo +
		secondsLeft*constants.ScorePerSecondLeft
}

// RankFor returns the letter rank of a score.
func RankFor(score int) types.Rank {
	switch {
	case score >= constants.RankSThreshold:
		return types.RankS
	case score >= constants.RankAThreshold:
		return types.RankA
	case score >= constants.RankBThreshold:
		return types.RankB
	default:
		return types.RankC
	}
}

// BlueprintChance returns the probability of a blueprint drop for a rank.
func BlueprintChance(rank types.Rank) float64 {
	if rank == types.RankS {
		return constants.BlueprintChanceRankS
	}
	return constants.BlueprintChanceOthers
}

// enterResult scores the run, grants rewards and asks for exactly one save.
func (t *transition) enterResult(status types.ResultStatus) {
	t.state.Phase = types.PhaseResult
	run := t.state.Run
	run.Status = status

	score := Score(run)
	rank := RankFor(score)
	rewardCoins := rollRange(t.rnd, constants.RewardCoinsMin, constants.RewardCoinsMax)
	rewardParts := rollRange(t.rnd, constants.RewardPartsMin, constants.RewardPartsMax)
	gotBlueprint := t.rnd.Float64() < BlueprintChance(rank)

	save := &t.state.Save
	save.Coins += rewardCoins
	save.Parts += rewardParts
	if gotBlueprint {
		if save.Blueprints == nil {
			save.Blueprints = make(map[string]int)
		}
		save.Blueprints[constants.BlueprintID]++
	}
	save.BestScore = max(save.BestScore, score)
	t.markSave()

	t.summary = &types.RunSummary{
		Status:       status,
		Score:        score,
		Rank:         rank,
		RewardCoins:  rewardCoins,
		RewardParts:  rewardParts,
		GotBlueprint: gotBlueprint,
		BestScore:    save.BestScore,
	}
	t.emit(resultStatus(*t.summary)...)
}
