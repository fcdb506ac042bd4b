package models

import "testing"

func TestFindProject(t *testing.T) {
	projects := []Project{
		NewProject("/home/u/app"),
		NewProject("/srv/app"),
		NewProject("/home/u/api"),
	}

	tests := []struct {
		query string
		want  string
	}{
		{"/srv/app", "/srv/app"},
		{"app", "/home/u/app"}, // first name match wins
		{"api", "/home/u/api"},
		{"web", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FindProject(projects, tt.query)
			if tt.want == "" {
				if got != nil {
					t.Errorf("FindProject(%q) = %+v, want nil", tt.query, got)
				}
				return
			}
			if got == nil || got.Path != tt.want {
				t.Errorf("FindProject(%q) = %+v, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestSettingsEditor(t *testing.T) {
	s := NewSettings()
	if e := s.Editor("subl"); e == nil || e.Command != "subl" {
		t.Errorf("Editor(subl) = %+v", e)
	}
	if s.Editor("vim") != nil {
		t.Error("Editor(vim) should be nil")
	}
}
