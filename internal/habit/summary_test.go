package habit

import "testing"

// ============================================================
// Reward bands
// ============================================================

func TestRewardBoundaries(t *testing.T) {
	tests := []struct {
		total int
		tier  Tier
	}{
		{-200, TierRookie},
		{0, TierRookie},
		{299, TierRookie},
		{300, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{699, TierSilver},
		{700, TierGold},
		{899, TierGold},
		{900, TierGrandmaster},
		{1500, TierGrandmaster},
	}
	for _, tt := range tests {
		if got := RewardFor(tt.total).Tier; got != tt.tier {
			t.Errorf("RewardFor(%d).Tier = %v, want %v", tt.total, got, tt.tier)
		}
	}
}

func TestRewardProgress(t *testing.T) {
	r := RewardFor(640)
	if r.Tier != TierSilver {
		t.Fatalf("expected silver, got %v", r.Tier)
	}
	if r.PointsToNext != 60 {
		t.Fatalf("expected 60 points to gold, got %d", r.PointsToNext)
	}
	if r.NextReward == "" {
		t.Fatal("non-top tier should name the next reward")
	}
}

func TestRewardTopTierHasNoProgress(t *testing.T) {
	r := RewardFor(950)
	if r.PointsToNext != 0 || r.NextReward != "" {
		t.Fatalf("top tier should report no gap, got %+v", r)
	}
}

func TestRewardBaseTierGap(t *testing.T) {
	r := RewardFor(0)
	if r.Reward != "" {
		t.Fatal("rookie unlocks nothing")
	}
	if r.PointsToNext != 300 {
		t.Fatalf("expected 300 points to bronze, got %d", r.PointsToNext)
	}
}

// ============================================================
// Summarize
// ============================================================

func TestSummarizeEmptyWindow(t *testing.T) {
	s := Summarize(nil)
	if s.TotalScore != 0 || s.TotalStudyHours != 0 || s.TotalResearchHours != 0 ||
		s.TotalFitnessDays != 0 || s.TotalExpense != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if s.Reward.Tier != TierRookie {
		t.Fatalf("expected rookie tier, got %v", s.Reward.Tier)
	}
	if s.Reward.PointsToNext != 300 {
		t.Fatalf("expected 300-point gap, got %d", s.Reward.PointsToNext)
	}
	if len(s.Records) != 0 {
		t.Fatal("expected empty display list")
	}
}

func TestSummarizeTotals(t *testing.T) {
	records := []Record{
		{Date: "2024-01-01", DailyScore: 90, StudyHours: 2, ResearchHours: 1, FitnessDone: true, ExpenseAmount: 20},
		{Date: "2024-01-02", DailyScore: -80, ExpenseAmount: 100},
		{Date: "2024-01-03", DailyScore: 50, StudyHours: 1.5, FitnessDone: true, ExpenseAmount: 10},
	}
	s := Summarize(records)
	if s.TotalScore != 60 {
		t.Fatalf("total score: expected 60, got %d", s.TotalScore)
	}
	if s.TotalStudyHours != 3.5 {
		t.Fatalf("total study: expected 3.5, got %v", s.TotalStudyHours)
	}
	if s.TotalResearchHours != 1 {
		t.Fatalf("total research: expected 1, got %v", s.TotalResearchHours)
	}
	if s.TotalFitnessDays != 2 {
		t.Fatalf("fitness days: expected 2, got %d", s.TotalFitnessDays)
	}
	if s.TotalExpense != 130 {
		t.Fatalf("total expense: expected 130, got %v", s.TotalExpense)
	}
}

func TestSummarizeDisplayListAscending(t *testing.T) {
	// Store hands records most-recent-first; the display list flips them.
	records := []Record{
		{Date: "2024-01-03"},
		{Date: "2024-01-02"},
		{Date: "2024-01-01"},
	}
	s := Summarize(records)
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i, d := range want {
		if s.Records[i].Date != d {
			t.Fatalf("display list[%d] = %s, want %s", i, s.Records[i].Date, d)
		}
	}
	// Input order untouched.
	if records[0].Date != "2024-01-03" {
		t.Fatal("Summarize must not reorder its input")
	}
}
