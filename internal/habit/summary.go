package habit

import "sort"

// Tier is one of the five reward bands a rolling-window score falls into.
type Tier int

const (
	TierRookie Tier = iota + 1
	TierBronze
	TierSilver
	TierGold
	TierGrandmaster
)

type tierBand struct {
	tier      Tier
	threshold int
	title     string
	reward    string
}

// Bands are evaluated top-down; lower bounds are inclusive and ranges are
// unbounded above, so exactly 900 is Grandmaster, not Gold.
var tierBands = []tierBand{
	{TierGrandmaster, 900, "Grandmaster", "Unlimited gaming night"},
	{TierGold, 700, "Gold", "KFC feast"},
	{TierSilver, 500, "Silver", "Deluxe canteen noodles"},
	{TierBronze, 300, "Bronze", "Yogurt cup"},
	{TierRookie, 0, "Rookie", ""},
}

// Reward describes the band the accumulated score landed in.
type Reward struct {
	Tier   Tier
	Title  string
	Reward string // unlocked reward, empty at the base tier

	// NextReward and PointsToNext describe progress toward the band above.
	// Both are zero values at the top tier.
	NextReward   string
	PointsToNext int
}

// Summary is the reduction of a rolling window of records.
type Summary struct {
	TotalScore         int
	TotalStudyHours    float64
	TotalResearchHours float64
	TotalFitnessDays   int
	TotalExpense       float64

	Reward Reward

	// Records is the display list: the same window reordered ascending by
	// date, oldest first.
	Records []Record
}

// RewardFor maps an accumulated score to its reward band.
func RewardFor(total int) Reward {
	for i, b := range tierBands {
		if total >= b.threshold || b.tier == TierRookie {
			r := Reward{Tier: b.tier, Title: b.title, Reward: b.reward}
			if i > 0 {
				next := tierBands[i-1]
				r.NextReward = next.reward
				r.PointsToNext = next.threshold - total
			}
			return r
		}
	}
	// Unreachable: the rookie band always matches.
	return Reward{Tier: TierRookie, Title: "Rookie"}
}

// Summarize reduces a window of records into totals, a reward band and the
// chronological display list. Pure: the input slice is not modified.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.TotalScore += r.DailyScore
		s.TotalStudyHours += r.StudyHours
		s.TotalResearchHours += r.ResearchHours
		if r.FitnessDone {
			s.TotalFitnessDays++
		}
		s.TotalExpense += r.ExpenseAmount
	}

	s.Records = make([]Record, len(records))
	copy(s.Records, records)
	sort.Slice(s.Records, func(i, j int) bool {
		return s.Records[i].Date < s.Records[j].Date
	})

	s.Reward = RewardFor(s.TotalScore)
	return s
}
