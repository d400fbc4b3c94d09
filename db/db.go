package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"devhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EventsCollectionName   = "events"
	ProjectsCollectionName = "projects"
)

// Mongo serves the listings stored in a MongoDB database.
type Mongo struct {
	Client             *mongo.Client
	EventsCollection   *mongo.Collection
	ProjectsCollection *mongo.Collection
}

// Connect opens a client against uri and pings it before returning.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Printf("Connected to MongoDB database %q", database)
	return &Mongo{
		Client:             client,
		EventsCollection:   client.Database(database).Collection(EventsCollectionName),
		ProjectsCollection: client.Database(database).Collection(ProjectsCollectionName),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *Mongo) FetchEvents(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	events, err := FindAndDecode[models.Event](ctx, m.EventsCollection, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return events, nil
}

func (m *Mongo) FetchProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	projects, err := FindAndDecode[models.Project](ctx, m.ProjectsCollection, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	for i := range projects {
		if projects[i].Feedback == nil {
			projects[i].Feedback = []models.Feedback{}
		}
	}
	return projects, nil
}

// FindAndDecode runs a find on coll and decodes every document into T.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedIfEmpty inserts the given collections when the database holds none.
func (m *Mongo) SeedIfEmpty(ctx context.Context, events []models.Event, projects []models.Project) error {
	n, err := m.EventsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if n == 0 && len(events) > 0 {
		docs := make([]any, 0, len(events))
		for _, e := range events {
			docs = append(docs, e)
		}
		if _, err := m.EventsCollection.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
		log.Printf("Seeded %d events", len(docs))
	}

	n, err = m.ProjectsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if n == 0 && len(projects) > 0 {
		docs := make([]any, 0, len(projects))
		for _, p := range projects {
			docs = append(docs, p)
		}
		if _, err := m.ProjectsCollection.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
		log.Printf("Seeded %d projects", len(docs))
	}
	return nil
}
