package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"
)

// ProgressService answers "how is today going" against the trimester
// targets. It composes the meal and hydration stores with the pure
// calculators; nothing here is persisted.
type ProgressService struct {
	mealSvc      *MealService
	hydrationSvc *HydrationService
	userSvc      *UserService
}

func NewProgressService(ms *MealService, hs *HydrationService, us *UserService) *ProgressService {
	return &ProgressService{mealSvc: ms, hydrationSvc: hs, userSvc: us}
}

type NutrientProgress struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Unit     string  `json:"unit"`
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"` // percent, capped at 100
	Low      bool    `json:"low"`      // below the critical threshold
}

type DailyProgress struct {
	Date      time.Time              `json:"date"`
	Trimester int                    `json:"trimester"`
	Totals    models.DailyNutrition  `json:"totals"`
	Targets   models.NutritionTarget `json:"targets"`
	Nutrients []NutrientProgress     `json:"nutrients"`
	Water     NutrientProgress       `json:"water"`
}

// ForDay aggregates the day's meals and water and scores them against the
// user's trimester targets. Critical nutrients carry their own low
// threshold; everything else flags below 80%.
func (s *ProgressService) ForDay(userID uint, day time.Time) (*DailyProgress, error) {
	user, err := s.userSvc.Get(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.mealSvc.ListByDay(userID, day)
	if err != nil {
		return nil, err
	}
	water, err := s.hydrationSvc.TotalForDay(userID, day)
	if err != nil {
		return nil, err
	}

	totals := CalculateNutritionFromMeals(meals)
	totals.Date = day
	totals.Water = water
	targets := TargetForWeek(user.GestationalWeek)

	return buildDailyProgress(day, user.GestationalWeek, totals, targets), nil
}

func buildDailyProgress(day time.Time, week int, totals models.DailyNutrition, targets models.NutritionTarget) *DailyProgress {
	thresholds := map[string]float64{}
	for _, c := range CriticalNutrients() {
		thresholds[c.Key] = c.Threshold
	}

	dp := &DailyProgress{
		Date:      day,
		Trimester: utils.TrimesterForWeek(week),
		Totals:    totals,
		Targets:   targets,
	}

	for _, n := range reportNutrients {
		current := totals.Nutrients.Value(n.Key)
		target := targets.Value(n.Key)
		dp.Nutrients = append(dp.Nutrients, NutrientProgress{
			Key:      n.Key,
			Label:    n.Label,
			Unit:     n.Unit,
			Current:  current,
			Target:   target,
			Progress: CalculateProgress(current, target),
			Low:      IsNutrientLow(current, target, thresholds[n.Key]),
		})
	}

	dp.Water = NutrientProgress{
		Key:      "water",
		Label:    "Water",
		Unit:     "ml",
		Current:  totals.Water,
		Target:   targets.Water,
		Progress: CalculateProgress(totals.Water, targets.Water),
		Low:      IsNutrientLow(totals.Water, targets.Water, 0),
	}
	return dp
}
