// Package models contains shared data structures used across the application.
package models

import (
	"path/filepath"
	"strings"
)

// Project is one registered folder. Path identifies it; Name is the label
// shown in the tray.
type Project struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewProject creates a project whose name is the final segment of path.
func NewProject(path string) Project {
	return Project{Name: ProjectName(path), Path: path}
}

// ProjectName derives a display name from the last path segment, ignoring
// trailing separators.
func ProjectName(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return filepath.Clean(path)
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// FindProjectByPath finds a project by path.
func FindProjectByPath(projects []Project, path string) *Project {
	for i := range projects {
		if projects[i].Path == path {
			return &projects[i]
		}
	}
	return nil
}

// FindProject finds a project by path, falling back to a name match.
func FindProject(projects []Project, nameOrPath string) *Project {
	if p := FindProjectByPath(projects, nameOrPath); p != nil {
		return p
	}
	for i := range projects {
		if projects[i].Name == nameOrPath {
			return &projects[i]
		}
	}
	return nil
}
