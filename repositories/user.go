package repositories

import (
	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/models"
)

type UserRepo interface {
	GetUserByID(id uint) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(u *models.User) error
	ListUsers() ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) CreateUser(u *models.User) error {
	return db.DB.Create(u).Error
}

func (r *DBUserRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("u_id").Find(&users).Error
	return users, err
}
