package main

// services.go entity services, thin facades over the database

import (
	"gorm.io/gorm"
)

type personalInfoService struct {
	db *gorm.DB
}

// Get returns the single profile row, or gorm.ErrRecordNotFound if none exists.
func (s *personalInfoService) Get() (*PersonalInfo, error) {
	var infos []PersonalInfo
	if err := s.db.Find(&infos).Error; err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &infos[0], nil
}

// SaveOrUpdate keeps personal_info a single-row table: if a row already
// exists, the incoming payload takes over its id and the save becomes an
// update, whatever id the caller supplied. The read-then-write is not
// transactional; two concurrent first writers can both insert.
func (s *personalInfoService) SaveOrUpdate(info *PersonalInfo) (*PersonalInfo, error) {
	var existing []PersonalInfo
	if err := s.db.Find(&existing).Error; err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		info.ID = existing[0].ID
	}
	if err := s.db.Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}

type projectService struct {
	db *gorm.DB
}

func (s *projectService) GetAll() ([]Project, error) {
	var projects []Project
	err := s.db.Order("display_order asc").Find(&projects).Error
	return projects, err
}

func (s *projectService) GetFeatured() ([]Project, error) {
	var projects []Project
	err := s.db.Where("is_featured = ?", true).Find(&projects).Error
	return projects, err
}

func (s *projectService) GetByStatus(status string) ([]Project, error) {
	var projects []Project
	err := s.db.Where("status = ?", status).Find(&projects).Error
	return projects, err
}

func (s *projectService) GetByID(id uint) (*Project, error) {
	var project Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *projectService) Create(project *Project) error {
	return s.db.Create(project).Error
}

// Update replaces every mutable field wholesale; zero values in details
// overwrite what is stored. Returns gorm.ErrRecordNotFound for unknown ids.
func (s *projectService) Update(id uint, details *Project) (*Project, error) {
	var project Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}

	project.Title = details.Title
	project.Description = details.Description
	project.ShortDescription = details.ShortDescription
	project.Technologies = details.Technologies
	project.ImageURL = details.ImageURL
	project.ProjectURL = details.ProjectURL
	project.GithubURL = details.GithubURL
	project.DemoURL = details.DemoURL
	project.DisplayOrder = details.DisplayOrder
	project.IsFeatured = details.IsFeatured
	project.Status = details.Status

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete silently succeeds if the row is already gone.
func (s *projectService) Delete(id uint) error {
	return s.db.Delete(&Project{}, id).Error
}

type experienceService struct {
	db *gorm.DB
}

func (s *experienceService) GetAll() ([]Experience, error) {
	var experiences []Experience
	err := s.db.Order("display_order asc").Find(&experiences).Error
	return experiences, err
}

func (s *experienceService) GetByStatus(status string) ([]Experience, error) {
	var experiences []Experience
	err := s.db.Where("status = ?", status).Find(&experiences).Error
	return experiences, err
}

func (s *experienceService) GetByID(id uint) (*Experience, error) {
	var experience Experience
	if err := s.db.First(&experience, id).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (s *experienceService) Create(experience *Experience) error {
	return s.db.Create(experience).Error
}

func (s *experienceService) Update(id uint, details *Experience) (*Experience, error) {
	var experience Experience
	if err := s.db.First(&experience, id).Error; err != nil {
		return nil, err
	}

	experience.Title = details.Title
	experience.Company = details.Company
	experience.StartDate = details.StartDate
	experience.EndDate = details.EndDate
	experience.Description = details.Description
	experience.Technologies = details.Technologies
	experience.CompanyURL = details.CompanyURL
	experience.DisplayOrder = details.DisplayOrder
	experience.Status = details.Status

	if err := s.db.Save(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (s *experienceService) Delete(id uint) error {
	return s.db.Delete(&Experience{}, id).Error
}
