package store

import (
	"context"
	"time"

	"devhub/models"
)

// Seed serves the built-in sample collections. Each call returns a fresh
// copy so callers cannot alter the samples.
type Seed struct{}

func (Seed) FetchEvents(_ context.Context) ([]models.Event, error) {
	return seedEvents(), nil
}

func (Seed) FetchProjects(_ context.Context) ([]models.Project, error) {
	return seedProjects(), nil
}

func capacity(n int) *int { return &n }

func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:               "1",
			Title:            "React.js Advanced Workshop",
			Description:      "Deep dive into advanced React patterns, performance optimization, and modern hooks. Perfect for developers looking to level up their React skills.",
			Organizer:        "TechCorp Inc.",
			OrganizerID:      "company1",
			Date:             time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC),
			Location:         models.OnlineLocation,
			Type:             models.CategoryWorkshop,
			MaxAttendees:     capacity(50),
			CurrentAttendees: 45,
			ImageURL:         "https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
		},
		{
			ID:               "2",
			Title:            "AI/ML Career Fair 2024",
			Description:      "Connect with leading AI companies, attend tech talks, and explore career opportunities in machine learning and artificial intelligence.",
			Organizer:        "DataScience Hub",
			OrganizerID:      "company2",
			Date:             time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC),
			Location:         "San Francisco, CA",
			Type:             models.CategoryNetworking,
			MaxAttendees:     capacity(200),
			CurrentAttendees: 128,
			ImageURL:         "https://images.pexels.com/photos/3183197/pexels-photo-3183197.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
		},
		{
			ID:               "3",
			Title:            "Full Stack Development Bootcamp",
			Description:      "Intensive 3-day bootcamp covering frontend, backend, and deployment. Build a complete web application from scratch.",
			Organizer:        "CodeAcademy Pro",
			OrganizerID:      "company3",
			Date:             time.Date(2024, 3, 28, 9, 0, 0, 0, time.UTC),
			Location:         "New York, NY",
			Type:             models.CategoryHackathon,
			MaxAttendees:     capacity(40),
			CurrentAttendees: 32,
			ImageURL:         "https://images.pexels.com/photos/1181676/pexels-photo-1181676.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
		},
		{
			ID:               "4",
			Title:            "DevOps Best Practices Seminar",
			Description:      "Learn industry best practices for CI/CD, containerization, and cloud deployment from experienced DevOps engineers.",
			Organizer:        "Sarah Johnson",
			OrganizerID:      "professional1",
			Date:             time.Date(2024, 4, 5, 16, 0, 0, 0, time.UTC),
			Location:         models.OnlineLocation,
			Type:             models.CategorySeminar,
			MaxAttendees:     capacity(75),
			CurrentAttendees: 23,
			ImageURL:         "https://images.pexels.com/photos/1181677/pexels-photo-1181677.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
		},
		{
			ID:               "5",
			Title:            "Student Project Showcase",
			Description:      "Students present their capstone projects and receive feedback from industry professionals. Great networking opportunity!",
			Organizer:        "University Tech Club",
			OrganizerID:      "student1",
			Date:             time.Date(2024, 4, 12, 18, 0, 0, 0, time.UTC),
			Location:         "Austin, TX",
			Type:             models.CategoryNetworking,
			MaxAttendees:     capacity(100),
			CurrentAttendees: 67,
			ImageURL:         "https://images.pexels.com/photos/1181678/pexels-photo-1181678.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
		},
		{
			ID:               "6",
			Title:            "Cybersecurity Fundamentals Workshop",
			Description:      "Introduction to cybersecurity concepts, threat analysis, and security best practices for web applications.",
			Organizer:        "SecureTech Solutions",
			OrganizerID:      "company4",
			Date:             time.Date(2024, 4, 18, 13, 0, 0, 0, time.UTC),
			Location:         models.OnlineLocation,
			Type:             models.CategoryWorkshop,
			MaxAttendees:     capacity(60),
			CurrentAttendees: 41,
			ImageURL:         "https://images.pexels.com/photos/60504/security-protection-anti-virus-software-60504.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
		},
	}
}

func seedProjects() []models.Project {
	return []models.Project{
		{
			ID:           "1",
			Title:        "E-commerce React App",
			Description:  "A full-stack e-commerce application built with React, Node.js, and PostgreSQL. Features include user authentication, shopping cart, payment integration, and admin dashboard.",
			Author:       "Alex Chen",
			AuthorID:     "user1",
			Technologies: []string{"React", "Node.js", "PostgreSQL", "Stripe"},
			GithubURL:    "https://github.com/alexchen/ecommerce-app",
			LiveURL:      "https://ecommerce-demo.netlify.app",
			ImageURL:     "https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
			CreatedAt:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Feedback:     []models.Feedback{},
		},
		{
			ID:           "2",
			Title:        "Task Management Dashboard",
			Description:  "A collaborative task management tool with real-time updates, drag-and-drop functionality, and team collaboration features.",
			Author:       "Sarah Johnson",
			AuthorID:     "user2",
			Technologies: []string{"Vue.js", "Firebase", "Tailwind CSS"},
			GithubURL:    "https://github.com/sarahjohnson/task-manager",
			LiveURL:      "https://taskboard-demo.vercel.app",
			ImageURL:     "https://images.pexels.com/photos/3183197/pexels-photo-3183197.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
			CreatedAt:    time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			Feedback:     []models.Feedback{},
		},
		{
			ID:           "3",
			Title:        "Weather App with Maps",
			Description:  "Interactive weather application with location-based forecasts, interactive maps, and weather alerts.",
			Author:       "Mike Rodriguez",
			AuthorID:     "user3",
			Technologies: []string{"React", "OpenWeather API", "Mapbox", "Chart.js"},
			GithubURL:    "https://github.com/mikerodriguez/weather-app",
			ImageURL:     "https://images.pexels.com/photos/531880/pexels-photo-531880.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=2",
			CreatedAt:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Feedback:     []models.Feedback{},
		},
	}
}
