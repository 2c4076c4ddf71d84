// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package project_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
	"github.com/demirhancelik/corporate-api/internal/project"
)

// fakeRepository is an in-memory project store.
type fakeRepository struct {
	projects map[string]*project.Project
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{projects: map[string]*project.Project{}}
}

func (repo *fakeRepository) ListProjects(_ context.Context, language string, category project.Category) ([]*project.Project, error) {
	result := make([]*project.Project, 0, len(repo.projects))
	for _, entry := range repo.projects {
		if language != "" && entry.Language != language {
			continue
		}
		if category != "" && entry.Category != category {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (repo *fakeRepository) GetProjectByID(_ context.Context, id string) (*project.Project, error) {
	entry, ok := repo.projects[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return entry, nil
}

func (repo *fakeRepository) Create(_ context.Context, entry *project.Project) error {
	repo.projects[entry.ID] = entry
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, entry *project.Project) error {
	if _, ok := repo.projects[entry.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.projects[entry.ID] = entry
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.projects[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.projects, id)
	return nil
}

func newService(repo project.Repository) *project.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	deadCache := cache.New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), logger)
	return project.NewService(repo, deadCache, logger)
}

func validInput() project.SaveInput {
	return project.SaveInput{
		Title:     "Organize Sanayi Depo Kompleksi",
		Location:  "Kocaeli",
		Category:  project.CategoryWarehouse,
		StartYear: 2023,
		EndYear:   2024,
		Language:  "tr",
	}
}

/*
TestCreateProject_SinglePrimaryImage verifies that at most one image keeps
the primary flag: the first flagged image wins and the rest are demoted.
*/
func TestCreateProject_SinglePrimaryImage(t *testing.T) {
	service := newService(newFakeRepository())

	input := validInput()
	input.Images = []project.ImageInput{
		{URL: "https://cdn.demirhancelik.com/projects/a.jpg", IsPrimary: false},
		{URL: "https://cdn.demirhancelik.com/projects/b.jpg", IsPrimary: true},
		{URL: "https://cdn.demirhancelik.com/projects/c.jpg", IsPrimary: true},
	}

	created, err := service.CreateProject(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, created.Images, 3)

	var primaries int
	for _, image := range created.Images {
		if image.IsPrimary {
			primaries++
			assert.Equal(t, "https://cdn.demirhancelik.com/projects/b.jpg", image.URL)
		}
	}
	assert.Equal(t, 1, primaries)
}

/*
TestCreateProject_Validation verifies the category and year constraints.
*/
func TestCreateProject_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	testCases := []struct {
		name   string
		mutate func(*project.SaveInput)
	}{
		{"missing title", func(input *project.SaveInput) { input.Title = "" }},
		{"unknown category", func(input *project.SaveInput) { input.Category = "havacilik" }},
		{"unknown language", func(input *project.SaveInput) { input.Language = "de" }},
		{"end year before start", func(input *project.SaveInput) { input.StartYear = 2024; input.EndYear = 2020 }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validInput()
			testCase.mutate(&input)

			_, err := service.CreateProject(context.Background(), input)
			assert.Error(t, err)
		})
	}
}

/*
TestUpdateProject_LastWriteWins verifies that an update replaces the whole
record, image set included, without merging against the stored state.
*/
func TestUpdateProject_LastWriteWins(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := validInput()
	input.Images = []project.ImageInput{
		{URL: "https://cdn.demirhancelik.com/projects/old.jpg", IsPrimary: true},
	}
	created, err := service.CreateProject(context.Background(), input)
	require.NoError(t, err)

	replacement := validInput()
	replacement.Title = "Yenilenen Proje"
	replacement.Images = nil

	updated, err := service.UpdateProject(context.Background(), created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Yenilenen Proje", updated.Title)
	assert.Empty(t, updated.Images)

	stored, err := service.GetProject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yenilenen Proje", stored.Title)
}

/*
TestDeleteProject_GoneFromListing verifies that a deleted project neither
appears in subsequent listings nor resolves by id.
*/
func TestDeleteProject_GoneFromListing(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	kept, err := service.CreateProject(context.Background(), validInput())
	require.NoError(t, err)

	doomed := validInput()
	doomed.Title = "Sökülecek Proje"
	created, err := service.CreateProject(context.Background(), doomed)
	require.NoError(t, err)

	require.NoError(t, service.DeleteProject(context.Background(), created.ID))

	listed, err := service.ListProjects(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)

	_, err = service.GetProject(context.Background(), created.ID)
	assert.Error(t, err)
}

/*
TestPublicProjects_CategoryFilter verifies that the public listing filters
by category when one is supplied.
*/
func TestPublicProjects_CategoryFilter(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	warehouse := validInput()
	_, err := service.CreateProject(context.Background(), warehouse)
	require.NoError(t, err)

	energy := validInput()
	energy.Title = "Güneş Enerjisi Santrali Konstrüksiyonu"
	energy.Category = project.CategoryEnergy
	_, err = service.CreateProject(context.Background(), energy)
	require.NoError(t, err)

	all, err := service.PublicProjects(context.Background(), "tr", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.PublicProjects(context.Background(), "tr", project.CategoryEnergy)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, project.CategoryEnergy, filtered[0].Category)
}
