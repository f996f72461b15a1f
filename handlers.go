package main

// handlers.go HTTP handlers for the public and admin API

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	return uint(id), err
}

func (s *server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"application": "Portfolio Backend API",
		"version":     "1.0.0",
		"status":      "running",
		"availableEndpoints": map[string]string{
			"Personal Info (Public)":       "GET /api/public/personal-info",
			"Projects (Public)":            "GET /api/public/projects",
			"Featured Projects (Public)":   "GET /api/public/projects/featured",
			"Experiences (Public)":         "GET /api/public/experiences",
			"Login":                        "POST /api/auth/login",
			"Update Personal Info (Admin)": "POST /api/admin/personal-info",
			"Create Project (Admin)":       "POST /api/admin/projects",
			"Update Project (Admin)":       "PUT /api/admin/projects/{id}",
			"Delete Project (Admin)":       "DELETE /api/admin/projects/{id}",
		},
		"authentication": map[string]string{
			"defaultUsername": "admin",
			"defaultPassword": "admin123",
			"note":            "Use POST /api/auth/login to get JWT token for admin endpoints",
		},
	})
}

// Public endpoints

func (s *server) handleGetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	data, err := s.cached("personal-info", func() (interface{}, error) {
		return s.personalInfo.Get()
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("Error fetching personal info: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	data, err := s.cached("projects", func() (interface{}, error) {
		return s.projects.GetAll()
	})
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *server) handleFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	data, err := s.cached("projects:featured", func() (interface{}, error) {
		return s.projects.GetFeatured()
	})
	if err != nil {
		log.Printf("Error fetching featured projects: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	project, err := s.projects.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (s *server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	data, err := s.cached("experiences", func() (interface{}, error) {
		return s.experiences.GetAll()
	})
	if err != nil {
		log.Printf("Error fetching experiences: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid experience id", http.StatusBadRequest)
		return
	}

	experience, err := s.experiences.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, experience)
}

// Admin endpoints

func (s *server) handleSavePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var info PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := s.personalInfo.SaveOrUpdate(&info)
	if err != nil {
		log.Printf("Error saving personal info: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	writeJSON(w, http.StatusOK, saved)
	go s.triggerRevalidation()
}

func (s *server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var project Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if project.Title == "" {
		http.Error(w, "Project title is required", http.StatusBadRequest)
		return
	}

	if err := s.projects.Create(&project); err != nil {
		log.Printf("Error creating project: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	writeJSON(w, http.StatusOK, project)
	go s.triggerRevalidation()
}

func (s *server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	var details Project
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := s.projects.Update(id, &details)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("Error updating project: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	writeJSON(w, http.StatusOK, project)
	go s.triggerRevalidation()
}

func (s *server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	if err := s.projects.Delete(id); err != nil {
		log.Printf("Error deleting project: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	w.WriteHeader(http.StatusOK)
	go s.triggerRevalidation()
}

func (s *server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var experience Experience
	if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if experience.Title == "" || experience.Company == "" {
		http.Error(w, "Experience title and company are required", http.StatusBadRequest)
		return
	}

	if err := s.experiences.Create(&experience); err != nil {
		log.Printf("Error creating experience: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	writeJSON(w, http.StatusOK, experience)
	go s.triggerRevalidation()
}

func (s *server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid experience id", http.StatusBadRequest)
		return
	}

	var details Experience
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	experience, err := s.experiences.Update(id, &details)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("Error updating experience: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	writeJSON(w, http.StatusOK, experience)
	go s.triggerRevalidation()
}

func (s *server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid experience id", http.StatusBadRequest)
		return
	}

	if err := s.experiences.Delete(id); err != nil {
		log.Printf("Error deleting experience: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.flushCache()
	w.WriteHeader(http.StatusOK)
	go s.triggerRevalidation()
}

// triggerRevalidation pings the frontend's revalidation hook after an admin
// write so statically rendered pages pick up the change. No-op unless
// REVALIDATION_URL is set.
func (s *server) triggerRevalidation() {
	revalidationURL := os.Getenv("REVALIDATION_URL")
	if revalidationURL == "" {
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"secret": os.Getenv("REVALIDATION_SECRET"),
	})

	resp, err := http.Post(revalidationURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Error triggering revalidation: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Revalidation failed with status code: %d", resp.StatusCode)
	}
}
