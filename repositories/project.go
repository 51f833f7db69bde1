package repositories

import (
	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/models"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (models.Project, error)
	ListActiveProjects() ([]models.Project, error)
	CreateProject(p *models.Project) error
	UpdateProject(p *models.Project) error
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	err := db.DB.First(&project, id).Error
	return project, err
}

func (r *DBProjectRepo) ListActiveProjects() ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Where("status = ?", models.ProjectStatusActive).Order("p_id").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return db.DB.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *models.Project) error {
	return db.DB.Save(p).Error
}
