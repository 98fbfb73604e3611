package services

import (
	"strings"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type FavoriteService struct {
	db      *gorm.DB
	mealSvc *MealService
}

func NewFavoriteService(db *gorm.DB, ms *MealService) *FavoriteService {
	return &FavoriteService{db: db, mealSvc: ms}
}

type FavoriteItemInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

type FavoriteInput struct {
	Name     string              `json:"name" binding:"required"`
	MealType string              `json:"meal_type" binding:"required"`
	Items    []FavoriteItemInput `json:"items" binding:"required"`
}

// Create stores a reusable meal combination. Items reference foods by id
// without a foreign-key constraint; resolution happens at apply time.
func (s *FavoriteService) Create(userID uint, in FavoriteInput) (*models.FavoriteMeal, error) {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return nil, utils.Invalid("name", "name must have at least 2 characters")
	}
	if !models.ValidMealType(in.MealType) {
		return nil, utils.Invalid("meal_type", "meal type must be breakfast, lunch, dinner or snack")
	}
	if len(in.Items) == 0 {
		return nil, utils.Invalid("items", "a favorite needs at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.Quantity > 100 {
			return nil, utils.Invalid("items", "item quantity must be between 0 and 100 servings")
		}
	}

	fav := &models.FavoriteMeal{
		UserID:   userID,
		Name:     strings.TrimSpace(in.Name),
		MealType: in.MealType,
	}
	for _, it := range in.Items {
		fav.Items = append(fav.Items, models.FavoriteItem{FoodID: it.FoodID, Quantity: it.Quantity})
	}

	if err := s.db.Create(fav).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create favorite", err)
	}
	return fav, nil
}

func (s *FavoriteService) List(userID uint) ([]models.FavoriteMeal, error) {
	var favs []models.FavoriteMeal
	err := s.db.Preload("Items").Where("user_id = ?", userID).Order("name ASC").Find(&favs).Error
	if err != nil {
		return nil, utils.Storage("GET_ERROR", "list favorites", err)
	}
	return favs, nil
}

func (s *FavoriteService) Get(userID, favID uint) (*models.FavoriteMeal, error) {
	var fav models.FavoriteMeal
	err := s.db.Preload("Items").Where("user_id = ?", userID).First(&fav, favID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("favorite", favID)
		}
		return nil, utils.Storage("GET_ERROR", "load favorite", err)
	}
	return &fav, nil
}

func (s *FavoriteService) Delete(userID, favID uint) error {
	fav, err := s.Get(userID, favID)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("favorite_meal_id = ?", fav.ID).Delete(&models.FavoriteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(fav).Error
	})
	if err != nil {
		return utils.Storage("REMOVE_ERROR", "delete favorite", err)
	}
	return nil
}

// ApplyResult reports what applying a favorite actually logged.
type ApplyResult struct {
	Logged  []models.MealEntry `json:"logged"`
	Skipped int                `json:"skipped"` // items whose food no longer exists
}

// Apply logs every item of a favorite as a meal entry for the given day.
// Items pointing at deleted foods are skipped, not failed: the favorite
// keeps working with whatever still resolves.
func (s *FavoriteService) Apply(userID, favID uint, date time.Time) (*ApplyResult, error) {
	fav, err := s.Get(userID, favID)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	res := &ApplyResult{}
	for _, item := range fav.Items {
		entry, err := s.mealSvc.Log(userID, MealInput{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			MealType: fav.MealType,
			Date:     date,
		})
		if err != nil {
			if utils.IsNotFound(err) {
				res.Skipped++
				continue
			}
			return nil, err
		}
		res.Logged = append(res.Logged, *entry)
	}
	return res, nil
}
