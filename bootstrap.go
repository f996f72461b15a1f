package main

// bootstrap.go first-start seeding of the admin user and sample content

import "log"

// seedData populates a fresh database: the default admin account, a sample
// profile and three sample projects. Every block is guarded, so restarts
// against a populated database change nothing. Experiences are not seeded.
func (s *server) seedData() error {
	exists, err := s.users.ExistsByUsername("admin")
	if err != nil {
		return err
	}
	if !exists {
		digest, err := hashPassword("admin123")
		if err != nil {
			return err
		}
		admin := User{
			Username: "admin",
			Password: digest,
			Email:    "admin@portfolio.com",
			Role:     "ADMIN",
		}
		if err := s.users.Create(&admin); err != nil {
			return err
		}
		log.Println("Default admin user created: username=admin, password=admin123")
	}

	var infoCount int64
	if err := s.db.Model(&PersonalInfo{}).Count(&infoCount).Error; err != nil {
		return err
	}
	if infoCount == 0 {
		info := PersonalInfo{
			Name:            "Jianyu Qiu",
			Title:           "Full Stack Developer",
			Bio:             "Experienced Full-stack developer with 2+ years of expertise in Java, python and React.js. Passionate about building scalable web applications and learning new tech.",
			Email:           "kalen.career.03@gmail.com",
			Phone:           "+1 ((555) 123-4567)",
			LinkedinURL:     "https://www.linkedin.com/in/jianyu-qiu/",
			GithubURL:       "https://github.com/klenq",
			ProfileImageURL: "https://via.placeholder.com/300",
		}
		if _, err := s.personalInfo.SaveOrUpdate(&info); err != nil {
			return err
		}
		log.Println("Default personal info created")
	}

	var projectCount int64
	if err := s.db.Model(&Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount == 0 {
		samples := []Project{
			{
				Title:            "E-Commerce Platform",
				ShortDescription: "Full-stack e-commerce solution with payment integration",
				Description:      "A comprehensive e-commerce platform built with Spring Boot and React. Features include user authentication, product management, shopping cart, payment integration with Stripe, and admin dashboard.",
				Technologies:     "Java, Spring Boot, React, PostgreSQL, Redis, Stripe API",
				ImageURL:         "https://via.placeholder.com/600x400",
				GithubURL:        "https://github.com/klenq/ecommerce",
				DemoURL:          "https://demo-ecommerce.example.com",
				DisplayOrder:     1,
				IsFeatured:       true,
				Status:           "active",
			},
			{
				Title:            "Task Management System",
				ShortDescription: "Collaborative project management tool",
				Description:      "A task management application similar to Trello, featuring drag-and-drop functionality, real-time updates using WebSockets, team collaboration, and progress tracking.",
				Technologies:     "Java, Spring Boot, React, WebSocket, MongoDB",
				ImageURL:         "https://via.placeholder.com/600x400",
				GithubURL:        "https://github.com/klenq/taskmanager",
				ProjectURL:       "https://taskmanager.example.com",
				DisplayOrder:     2,
				IsFeatured:       true,
				Status:           "active",
			},
			{
				Title:            "Social Media Analytics Dashboard",
				ShortDescription: "Real-time analytics for social media platforms",
				Description:      "An analytics dashboard that aggregates data from multiple social media platforms, providing insights on engagement, reach, and audience demographics with beautiful data visualizations.",
				Technologies:     "React, D3.js, Node.js, Express, Twitter API, Instagram API",
				ImageURL:         "https://via.placeholder.com/600x400",
				GithubURL:        "https://github.com/klenq/social-analytics",
				DisplayOrder:     3,
				IsFeatured:       false,
				Status:           "active",
			},
		}
		for i := range samples {
			if err := s.projects.Create(&samples[i]); err != nil {
				return err
			}
		}
		log.Println("Sample projects created")
	}

	return nil
}
