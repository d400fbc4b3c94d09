package store

import (
	"context"
	"fmt"
	"os"

	"devhub/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk layout of a listings file.
type Document struct {
	Events   []models.Event   `yaml:"events"`
	Projects []models.Project `yaml:"projects"`
}

// YAMLFile serves collections read once from a YAML document.
type YAMLFile struct {
	doc Document
}

func LoadYAMLFile(path string) (*YAMLFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings file: %w", err)
	}
	return ParseYAML(b)
}

func ParseYAML(b []byte) (*YAMLFile, error) {
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse listings yaml: %w", err)
	}
	for i := range doc.Events {
		if doc.Events[i].ID == "" {
			doc.Events[i].ID = uuid.NewString()
		}
		if m := doc.Events[i].MaxAttendees; m != nil && *m <= 0 {
			return nil, fmt.Errorf("event %s: maxAttendees must be positive", doc.Events[i].ID)
		}
		if doc.Events[i].CurrentAttendees < 0 {
			return nil, fmt.Errorf("event %s: currentAttendees must not be negative", doc.Events[i].ID)
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = uuid.NewString()
		}
		if doc.Projects[i].Feedback == nil {
			doc.Projects[i].Feedback = []models.Feedback{}
		}
	}
	return &YAMLFile{doc: doc}, nil
}

func (f *YAMLFile) FetchEvents(_ context.Context) ([]models.Event, error) {
	return append([]models.Event(nil), f.doc.Events...), nil
}

func (f *YAMLFile) FetchProjects(_ context.Context) ([]models.Project, error) {
	return append([]models.Project(nil), f.doc.Projects...), nil
}
