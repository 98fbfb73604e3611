package services

import (
	"strings"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// Get returns a catalog entry by id.
func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("food", id)
		}
		return nil, utils.Storage("GET_ERROR", "load food", err)
	}
	return &food, nil
}

// Search matches foods by case-insensitive substring on name. Results are
// limited to the seeded catalog plus the caller's own custom foods.
func (s *FoodService) Search(userID uint, query string) ([]models.Food, error) {
	var foods []models.Food
	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ? AND (custom = ? OR owner_id = ?)", q, false, userID).
		Order("name ASC").
		Limit(50).
		Find(&foods).Error
	if err != nil {
		return nil, utils.Storage("GET_ERROR", "search foods", err)
	}
	return foods, nil
}

type CustomFoodInput struct {
	Name        string           `json:"name" binding:"required"`
	Brand       string           `json:"brand"`
	ServingSize float64          `json:"serving_size"`
	ServingUnit string           `json:"serving_unit"`
	Nutrients   models.Nutrients `json:"nutrients"`
}

// CreateCustom adds a user-owned food to the catalog. Custom foods only
// show up in their owner's searches.
func (s *FoodService) CreateCustom(userID uint, in CustomFoodInput) (*models.Food, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return nil, utils.Invalid("name", "name must have at least 2 characters")
	}
	if in.ServingSize <= 0 {
		in.ServingSize = 100
	}
	if in.ServingUnit == "" {
		in.ServingUnit = "g"
	}

	food := &models.Food{
		Name:        name,
		Brand:       strings.TrimSpace(in.Brand),
		ServingSize: in.ServingSize,
		ServingUnit: in.ServingUnit,
		Nutrients:   in.Nutrients,
		Custom:      true,
		OwnerID:     userID,
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create food", err)
	}
	return food, nil
}

// SeedCatalog inserts the reference foods once. Idempotent: skipped when
// any non-custom food already exists.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Food{}).Where("custom = ?", false).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(seedFoods()).Error
}

// Reference catalog, per-serving values. Micronutrients sourced from
// standard composition tables; omega-3 in mg, folate in mcg DFE.
func seedFoods() []models.Food {
	return []models.Food{
		{Name: "Cooked white rice", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Iron: 0.2, FolicAcid: 58, Calcium: 10, Sodium: 1}},
		{Name: "Cooked black beans", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 132, Protein: 8.9, Carbs: 24, Fat: 0.5, Fiber: 8.7, Iron: 2.1, FolicAcid: 149, Calcium: 27, Sodium: 1}},
		{Name: "Grilled chicken breast", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 165, Protein: 31, Fat: 3.6, Iron: 1, Calcium: 15, VitaminD: 0.1, Sodium: 74}},
		{Name: "Grilled salmon", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 208, Protein: 20, Fat: 13, Iron: 0.3, Calcium: 9, Omega3: 2260, VitaminD: 13.1, Sodium: 59}},
		{Name: "Boiled egg", ServingSize: 50, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Iron: 0.6, FolicAcid: 22, Calcium: 25, Omega3: 40, VitaminD: 1, Sodium: 62}},
		{Name: "Whole milk", ServingSize: 200, ServingUnit: "ml", Nutrients: models.Nutrients{
			Calories: 122, Protein: 6.4, Carbs: 9.6, Fat: 6.6, Sugar: 10, Calcium: 226, VitaminD: 2.4, Sodium: 86}},
		{Name: "Plain yogurt", ServingSize: 170, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 104, Protein: 5.9, Carbs: 7.9, Fat: 5.5, Sugar: 7.9, Calcium: 207, Sodium: 79}},
		{Name: "Banana", ServingSize: 118, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, Sugar: 14, FolicAcid: 24, VitaminC: 10.3, Calcium: 6}},
		{Name: "Orange", ServingSize: 131, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 62, Protein: 1.2, Carbs: 15, Fiber: 3.1, Sugar: 12, FolicAcid: 39, VitaminC: 70, Calcium: 52}},
		{Name: "Avocado", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7, Fiber: 6.7, FolicAcid: 81, VitaminC: 10, Omega3: 110, Calcium: 12}},
		{Name: "Cooked spinach", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 23, Protein: 3, Carbs: 3.8, Fiber: 2.4, Iron: 3.6, FolicAcid: 146, VitaminC: 9.8, Calcium: 136, Sodium: 70}},
		{Name: "Cooked broccoli", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 35, Protein: 2.4, Carbs: 7.2, Fiber: 3.3, Iron: 0.7, FolicAcid: 108, VitaminC: 64.9, Calcium: 40}},
		{Name: "Cooked lentils", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 116, Protein: 9, Carbs: 20, Fiber: 7.9, Iron: 3.3, FolicAcid: 181, Calcium: 19}},
		{Name: "Whole wheat bread", ServingSize: 50, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 127, Protein: 6.4, Carbs: 21, Fat: 1.8, Fiber: 3.5, Iron: 1.2, FolicAcid: 21, Calcium: 81, Sodium: 227}},
		{Name: "Rolled oats", ServingSize: 40, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 152, Protein: 5.3, Carbs: 27, Fat: 2.6, Fiber: 4.2, Iron: 1.7, FolicAcid: 13, Calcium: 21}},
		{Name: "Peanut butter", ServingSize: 32, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 188, Protein: 7.7, Carbs: 7, Fat: 16, Fiber: 1.9, Iron: 0.6, FolicAcid: 28, Calcium: 15, Sodium: 136}},
		{Name: "Cheese", ServingSize: 30, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 113, Protein: 7, Fat: 9.3, Calcium: 202, VitaminD: 0.2, Sodium: 180}},
		{Name: "Lean ground beef", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 250, Protein: 26, Fat: 15, Iron: 2.6, Calcium: 18, Sodium: 75}},
		{Name: "Chia seeds", ServingSize: 15, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 73, Protein: 2.5, Carbs: 6.3, Fat: 4.6, Fiber: 5.2, Iron: 1.2, Calcium: 95, Omega3: 2670}},
		{Name: "Orange juice", ServingSize: 200, ServingUnit: "ml", Nutrients: models.Nutrients{
			Calories: 90, Protein: 1.4, Carbs: 21, Sugar: 17, FolicAcid: 60, VitaminC: 100, Calcium: 22}},
		{Name: "Sweet potato", ServingSize: 100, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 86, Protein: 1.6, Carbs: 20, Fiber: 3, Iron: 0.6, FolicAcid: 11, VitaminC: 2.4, Calcium: 30, Sodium: 55}},
		{Name: "Sardines in oil", ServingSize: 60, ServingUnit: "g", Nutrients: models.Nutrients{
			Calories: 125, Protein: 14.8, Fat: 6.9, Iron: 1.8, Calcium: 229, Omega3: 590, VitaminD: 2.9, Sodium: 184}},
	}
}
