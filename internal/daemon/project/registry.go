// Package project owns the list of registered project folders.
package project

import (
	"encoding/json"
	"fmt"

	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/models"
)

// corruptKey holds the last unreadable blob after a Reset.
const corruptKey = config.KeyProjects + ".corrupt"

// CorruptStateError is returned when the stored project list cannot be decoded.
type CorruptStateError struct {
	Raw string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt project list in store: %v", e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Registry is the ordered, persisted list of projects. Every call reads the
// store, and every mutation writes it back before returning.
type Registry struct {
	store config.Store
}

// NewRegistry creates a registry backed by store.
func NewRegistry(store config.Store) *Registry {
	return &Registry{store: store}
}

// Load reads the persisted list. An absent key yields an empty list.
func (r *Registry) Load() ([]models.Project, error) {
	raw, ok, err := r.store.Get(config.KeyProjects)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	if !ok || raw == "" {
		return []models.Project{}, nil
	}

	var projects []models.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		return nil, &CorruptStateError{Raw: raw, Err: err}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// List returns the projects in insertion order.
func (r *Registry) List() ([]models.Project, error) {
	return r.Load()
}

// Add registers path and returns its entry. A path that is already
// registered is returned as is, without a second entry or a write.
func (r *Registry) Add(path string) (models.Project, error) {
	projects, err := r.Load()
	if err != nil {
		return models.Project{}, err
	}

	if existing := models.FindProjectByPath(projects, path); existing != nil {
		return *existing, nil
	}

	p := models.NewProject(path)
	if err := r.save(append(projects, p)); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Remove drops every entry whose path equals path. Removing an unknown
// path succeeds without touching the store.
func (r *Registry) Remove(path string) error {
	projects, err := r.Load()
	if err != nil {
		return err
	}

	kept := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Path != path {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return nil
	}
	return r.save(kept)
}

// Reset moves an unreadable list aside under "projects.corrupt" and starts
// over with an empty registry.
func (r *Registry) Reset() error {
	raw, ok, err := r.store.Get(config.KeyProjects)
	if err != nil {
		return fmt.Errorf("failed to read projects: %w", err)
	}
	if ok && raw != "" {
		if err := r.store.Set(corruptKey, raw); err != nil {
			return fmt.Errorf("failed to back up projects: %w", err)
		}
	}
	return r.save([]models.Project{})
}

func (r *Registry) save(projects []models.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	if err := r.store.Set(config.KeyProjects, string(data)); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}
