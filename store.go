package main

// store.go database setup and user queries

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	if err := db.AutoMigrate(&User{}, &PersonalInfo{}, &Project{}, &Experience{}); err != nil {
		return nil, err
	}

	return db, nil
}

type userStore struct {
	db *gorm.DB
}

func (s *userStore) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := s.db.Model(&User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *userStore) FindByUsername(username string) (*User, error) {
	var user User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) Create(user *User) error {
	return s.db.Create(user).Error
}
