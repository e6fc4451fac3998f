// repository/restaurant_repository.go
package repository

import (
	"github.com/diptansh-1/restaurant-app/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Menu").First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindMenuItem loads one menu item and checks it belongs to the restaurant.
func (r *RestaurantRepository) FindMenuItem(restaurantID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).First(&item, itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
