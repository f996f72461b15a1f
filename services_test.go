package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectsOrderedByDisplayOrder(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, p := range []Project{
		{Title: "third", DisplayOrder: 3},
		{Title: "first", DisplayOrder: 1},
		{Title: "second", DisplayOrder: 2},
	} {
		p := p
		require.NoError(t, s.projects.Create(&p))
	}

	projects, err := s.projects.GetAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	for i := 1; i < len(projects); i++ {
		assert.LessOrEqual(t, projects[i-1].DisplayOrder, projects[i].DisplayOrder)
	}
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "third", projects[2].Title)
}

func TestFeaturedProjectsFilter(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, p := range []Project{
		{Title: "plain", IsFeatured: false},
		{Title: "starred", IsFeatured: true},
		{Title: "also starred", IsFeatured: true},
	} {
		p := p
		require.NoError(t, s.projects.Create(&p))
	}

	featured, err := s.projects.GetFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}

func TestProjectsByStatus(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, p := range []Project{
		{Title: "live", Status: "active"},
		{Title: "old", Status: "archived"},
	} {
		p := p
		require.NoError(t, s.projects.Create(&p))
	}

	active, err := s.projects.GetByStatus("active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "live", active[0].Title)
}

func TestUpdateProjectReplacesAllFields(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	project := Project{
		Title:        "before",
		Description:  "old description",
		Technologies: "Go",
		DisplayOrder: 5,
		IsFeatured:   true,
		Status:       "active",
	}
	require.NoError(t, s.projects.Create(&project))

	updated, err := s.projects.Update(project.ID, &Project{
		Title:  "after",
		Status: "archived",
	})
	require.NoError(t, err)

	// Wholesale replacement: fields absent from the payload go to zero values.
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "archived", updated.Status)
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Technologies)
	assert.Zero(t, updated.DisplayOrder)
	assert.False(t, updated.IsFeatured)

	stored, err := s.projects.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", stored.Title)
	assert.Empty(t, stored.Description)
}

func TestUpdateMissingProjectReturnsNotFound(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	_, err := s.projects.Update(12345, &Project{Title: "ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProjectIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	require.NoError(t, s.projects.Delete(999), "deleting a missing row succeeds")

	project := Project{Title: "doomed"}
	require.NoError(t, s.projects.Create(&project))
	require.NoError(t, s.projects.Delete(project.ID))
	require.NoError(t, s.projects.Delete(project.ID))

	_, err := s.projects.GetByID(project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExperiencesOrderedAndFilteredByStatus(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, e := range []Experience{
		{Title: "Senior Engineer", Company: "Acme", DisplayOrder: 2, Status: "active"},
		{Title: "Engineer", Company: "Initech", DisplayOrder: 1, Status: "archived"},
	} {
		e := e
		require.NoError(t, s.experiences.Create(&e))
	}

	all, err := s.experiences.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Engineer", all[0].Title)

	archived, err := s.experiences.GetByStatus("archived")
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "Initech", archived[0].Company)
}

func TestUpdateMissingExperienceReturnsNotFound(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	_, err := s.experiences.Update(42, &Experience{Title: "ghost", Company: "nowhere"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPersonalInfoSingletonUpsert(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	_, err := s.personalInfo.Get()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	first, err := s.personalInfo.SaveOrUpdate(&PersonalInfo{Name: "First Name"})
	require.NoError(t, err)

	// A second save collapses into an update of the existing row, even with a
	// bogus id on the payload.
	second, err := s.personalInfo.SaveOrUpdate(&PersonalInfo{ID: 999, Name: "Second Name"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, s.db.Model(&PersonalInfo{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := s.personalInfo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Second Name", stored.Name)
}
