package models

import "time"

// Feedback is a comment left on a project.
type Feedback struct {
	ID        string    `json:"id" bson:"id" yaml:"id"`
	AuthorID  string    `json:"authorId" bson:"author_id" yaml:"authorId"`
	Content   string    `json:"content" bson:"content" yaml:"content"`
	Rating    int       `json:"rating,omitempty" bson:"rating,omitempty" yaml:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" yaml:"createdAt"`
}

type Project struct {
	ID           string     `json:"id" bson:"id" yaml:"id"`
	Title        string     `json:"title" bson:"title" yaml:"title"`
	Description  string     `json:"description" bson:"description" yaml:"description"`
	Author       string     `json:"author" bson:"author" yaml:"author"`
	AuthorID     string     `json:"authorId" bson:"author_id" yaml:"authorId"`
	Technologies []string   `json:"technologies" bson:"technologies" yaml:"technologies"`
	GithubURL    string     `json:"githubUrl,omitempty" bson:"github_url,omitempty" yaml:"githubUrl,omitempty"`
	LiveURL      string     `json:"liveUrl,omitempty" bson:"live_url,omitempty" yaml:"liveUrl,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty" bson:"image_url,omitempty" yaml:"imageUrl,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"created_at" yaml:"createdAt"`
	Feedback     []Feedback `json:"feedback" bson:"feedback" yaml:"feedback"`
}
