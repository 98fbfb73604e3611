package controllers

import (
	"net/http"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func NewFavoriteController(fs *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Favorites: fs}
}

func (fc *FavoriteController) Create(c *gin.Context) {
	var input services.FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := fc.Favorites.Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

func (fc *FavoriteController) List(c *gin.Context) {
	favs, err := fc.Favorites.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favs)
}

func (fc *FavoriteController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := fc.Favorites.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Apply logs the favorite's items as meals for the given day.
func (fc *FavoriteController) Apply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input struct {
		Date time.Time `json:"date"`
	}
	// body is optional; an empty body means today
	_ = c.ShouldBindJSON(&input)

	result, err := fc.Favorites.Apply(currentUserID(c), id, input.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
