package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"
)

// PlannerService builds a simple week-ahead meal plan out of the user's
// favorites. Favorites rotate per meal slot so consecutive days differ; a
// slot with no favorites stays empty.
type PlannerService struct {
	favoriteSvc *FavoriteService
	foodSvc     *FoodService
	userSvc     *UserService
}

func NewPlannerService(fs *FavoriteService, foods *FoodService, us *UserService) *PlannerService {
	return &PlannerService{favoriteSvc: fs, foodSvc: foods, userSvc: us}
}

type PlannedMeal struct {
	MealType     string  `json:"meal_type"`
	FavoriteID   uint    `json:"favorite_id"`
	FavoriteName string  `json:"favorite_name"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
}

type PlannedDay struct {
	Date            time.Time     `json:"date"`
	Meals           []PlannedMeal `json:"meals"`
	Calories        float64       `json:"calories"`
	Protein         float64       `json:"protein"`
	CaloriesTarget  float64       `json:"calories_target"`
	CaloriesPercent float64       `json:"calories_percent"`
}

var plannedSlots = []string{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack}

// WeekPlan proposes seven days starting at `start`, cycling each slot
// through the user's favorites for that meal type. Each day carries an
// estimated calorie/protein total against the trimester target; items
// whose food no longer resolves contribute nothing to the estimate.
func (s *PlannerService) WeekPlan(userID uint, start time.Time) ([]PlannedDay, error) {
	user, err := s.userSvc.Get(userID)
	if err != nil {
		return nil, err
	}
	targets := TargetForWeek(user.GestationalWeek)

	favs, err := s.favoriteSvc.List(userID)
	if err != nil {
		return nil, err
	}

	bySlot := map[string][]models.FavoriteMeal{}
	for _, f := range favs {
		bySlot[f.MealType] = append(bySlot[f.MealType], f)
	}

	var days []PlannedDay
	for i := 0; i < 7; i++ {
		day := PlannedDay{
			Date:           utils.DayStart(start).AddDate(0, 0, i),
			CaloriesTarget: targets.Calories,
		}
		for _, slot := range plannedSlots {
			options := bySlot[slot]
			if len(options) == 0 {
				continue
			}
			pick := options[i%len(options)]

			meal := PlannedMeal{
				MealType:     slot,
				FavoriteID:   pick.ID,
				FavoriteName: pick.Name,
			}
			for _, item := range pick.Items {
				food, err := s.foodSvc.Get(item.FoodID)
				if err != nil {
					if utils.IsNotFound(err) {
						continue
					}
					return nil, err
				}
				meal.Calories += food.Calories * item.Quantity
				meal.Protein += food.Protein * item.Quantity
			}

			day.Meals = append(day.Meals, meal)
			day.Calories += meal.Calories
			day.Protein += meal.Protein
		}
		day.CaloriesPercent = CalculateProgress(day.Calories, targets.Calories)
		days = append(days, day)
	}
	return days, nil
}
