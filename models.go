// models.go database models for the portfolio
package main

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Email     string    `gorm:"size:255" json:"email"`
	Role      string    `gorm:"size:50;default:'ADMIN'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PersonalInfo holds the single profile row shown on the landing page.
// There is logically at most one of these; see personalInfoService.
type PersonalInfo struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255" json:"name"`
	Title           string    `gorm:"size:255" json:"title"`
	Bio             string    `gorm:"type:text" json:"bio"`
	About           string    `gorm:"type:text" json:"about"`
	Email           string    `gorm:"size:255" json:"email"`
	Phone           string    `gorm:"size:50" json:"phone"`
	LinkedinURL     string    `gorm:"column:linkedin_url;size:500" json:"linkedinUrl"`
	GithubURL       string    `gorm:"column:github_url;size:500" json:"githubUrl"`
	ProfileImageURL string    `gorm:"column:profile_image_url;size:500" json:"profileImageUrl"`
	ResumeURL       string    `gorm:"column:resume_url;size:500" json:"resumeUrl"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Project struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	ShortDescription string    `gorm:"size:500" json:"shortDescription"`
	Technologies     string    `gorm:"size:500" json:"technologies"`
	ImageURL         string    `gorm:"column:image_url;size:500" json:"imageUrl"`
	ProjectURL       string    `gorm:"column:project_url;size:500" json:"projectUrl"`
	GithubURL        string    `gorm:"column:github_url;size:500" json:"githubUrl"`
	DemoURL          string    `gorm:"column:demo_url;size:500" json:"demoUrl"`
	DisplayOrder     int       `gorm:"column:display_order;default:0" json:"displayOrder"`
	IsFeatured       bool      `gorm:"column:is_featured;default:false" json:"isFeatured"`
	Status           string    `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Experience struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Company      string    `gorm:"not null" json:"company"`
	StartDate    string    `gorm:"size:100" json:"startDate"`
	EndDate      string    `gorm:"size:100" json:"endDate"`
	Description  string    `gorm:"type:text" json:"description"`
	Technologies string    `gorm:"size:500" json:"technologies"`
	CompanyURL   string    `gorm:"column:company_url;size:500" json:"companyUrl"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"displayOrder"`
	Status       string    `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
