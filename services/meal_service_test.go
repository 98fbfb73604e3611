package services

import (
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/config"
	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email: "ana@example.com", Password: "x", Name: "Ana",
		GestationalWeek: 20, InitialWeight: 60, CurrentWeight: 62,
		Height: 165, InitialBMI: 22.04, Onboarded: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFood(t *testing.T, db *gorm.DB, name string, n models.Nutrients) *models.Food {
	t.Helper()
	food := &models.Food{Name: name, ServingSize: 100, ServingUnit: "g", Nutrients: n}
	require.NoError(t, db.Create(food).Error)
	return food
}

func TestMealLogSnapshotsNutrients(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	food := seedFood(t, db, "Cooked lentils", models.Nutrients{Calories: 116, Protein: 9, Iron: 3.3})

	svc := NewMealService(db, NewFoodService(db))
	entry, err := svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 2, MealType: models.MealLunch})
	require.NoError(t, err)

	assert.Equal(t, "Cooked lentils", entry.FoodName)
	assert.Equal(t, 116.0, entry.Calories, "per-serving values are stored; scaling happens at aggregation")

	// deleting the food must not affect history
	require.NoError(t, db.Delete(food).Error)
	entries, err := svc.ListByDay(user.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	total := CalculateNutritionFromMeals(entries)
	assert.InDelta(t, 232, total.Calories, 1e-9)
	assert.InDelta(t, 6.6, total.Iron, 1e-9)
}

func TestDailyTotalGrowsWithEachLog(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	food := seedFood(t, db, "Cooked white rice", models.Nutrients{Calories: 130})

	svc := NewMealService(db, NewFoodService(db))

	dayTotal := func() float64 {
		entries, err := svc.ListByDay(user.ID, time.Now())
		require.NoError(t, err)
		return CalculateNutritionFromMeals(entries).Calories
	}

	_, err := svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 1, MealType: models.MealLunch})
	require.NoError(t, err)
	assert.InDelta(t, 130, dayTotal(), 1e-9)

	_, err = svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 2, MealType: models.MealDinner})
	require.NoError(t, err)
	assert.InDelta(t, 390, dayTotal(), 1e-9)
}

func TestMealLogValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	food := seedFood(t, db, "Banana", models.Nutrients{Calories: 105})

	svc := NewMealService(db, NewFoodService(db))

	_, err := svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 0, MealType: models.MealSnack})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 101, MealType: models.MealSnack})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 1, MealType: "brunch"})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.Log(user.ID, MealInput{FoodID: 9999, Quantity: 1, MealType: models.MealSnack})
	assert.True(t, utils.IsNotFound(err))
}

func TestMealUpdateReplacesEntry(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	food := seedFood(t, db, "Boiled egg", models.Nutrients{Calories: 78})

	svc := NewMealService(db, NewFoodService(db))
	entry, err := svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 1, MealType: models.MealBreakfast})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, entry.ID, MealInput{FoodID: food.ID, Quantity: 2, MealType: models.MealBreakfast})
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, updated.ID, "edits are delete + recreate")
	assert.Equal(t, 2.0, updated.Quantity)

	entries, err := svc.ListByDay(user.ID, time.Now())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMealDeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	food := seedFood(t, db, "Orange", models.Nutrients{Calories: 62})

	svc := NewMealService(db, NewFoodService(db))
	entry, err := svc.Log(user.ID, MealInput{FoodID: food.ID, Quantity: 1, MealType: models.MealSnack})
	require.NoError(t, err)

	err = svc.Delete(user.ID+1, entry.ID)
	assert.True(t, utils.IsNotFound(err), "someone else's entry reads as missing")

	require.NoError(t, svc.Delete(user.ID, entry.ID))
	entries, err := svc.ListByDay(user.ID, time.Now())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFavoriteApplySkipsDanglingFoods(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	keep := seedFood(t, db, "Oats", models.Nutrients{Calories: 152})
	gone := seedFood(t, db, "Discontinued bar", models.Nutrients{Calories: 200})

	mealSvc := NewMealService(db, NewFoodService(db))
	favSvc := NewFavoriteService(db, mealSvc)

	fav, err := favSvc.Create(user.ID, FavoriteInput{
		Name:     "My breakfast",
		MealType: models.MealBreakfast,
		Items: []FavoriteItemInput{
			{FoodID: keep.ID, Quantity: 1},
			{FoodID: gone.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.Delete(gone).Error)

	res, err := favSvc.Apply(user.ID, fav.ID, time.Now())
	require.NoError(t, err)
	assert.Len(t, res.Logged, 1)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "Oats", res.Logged[0].FoodName)
}

func TestWeightAddUpdatesCurrentWeight(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	svc := NewWeightService(db)
	_, err := svc.Add(user.ID, WeightInput{Weight: 63.5})
	require.NoError(t, err)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 63.5, fresh.CurrentWeight)

	// a backdated entry must not overwrite the newest weight
	_, err = svc.Add(user.ID, WeightInput{Weight: 61, Date: time.Now().AddDate(0, 0, -10)})
	require.NoError(t, err)
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 63.5, fresh.CurrentWeight)
}

func TestWeightValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewWeightService(db)

	_, err := svc.Add(user.ID, WeightInput{Weight: 0})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.Add(user.ID, WeightInput{Weight: 250})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.Add(user.ID, WeightInput{Weight: 62, Date: time.Now().AddDate(0, 0, 1)})
	assert.True(t, utils.IsValidation(err))
}

func TestReportPrepareEndToEnd(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	food := seedFood(t, db, "Grilled salmon", models.Nutrients{Calories: 208, Protein: 20, Omega3: 2260})

	mealSvc := NewMealService(db, NewFoodService(db))
	for i := 0; i < 3; i++ {
		_, err := mealSvc.Log(user.ID, MealInput{
			FoodID: food.ID, Quantity: 1, MealType: models.MealDinner,
			Date: time.Now().AddDate(0, 0, -i),
		})
		require.NoError(t, err)
	}

	hydSvc := NewHydrationService(db)
	_, err := hydSvc.Add(user.ID, HydrationInput{Amount: 1800})
	require.NoError(t, err)

	data, err := NewReportService(db).Prepare(user.ID, ReportWeekly, time.Now())
	require.NoError(t, err)

	assert.Len(t, data.DailyNutrition, 7)
	assert.Len(t, data.Meals, 3)
	assert.True(t, HasNutritionData(data.DailyNutrition))

	today := data.DailyNutrition[6]
	assert.InDelta(t, 208, today.Calories, 1e-9)
	assert.InDelta(t, 1800, today.Water, 1e-9)

	html, err := RenderReportHTML(data)
	require.NoError(t, err)
	assert.Contains(t, html, "Weekly Nutrition Report")
	assert.Contains(t, html, "Ana")
}
