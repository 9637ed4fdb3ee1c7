// Package database owns the connection to the document store backing the
// catalog. All persisted state lives there; this service only reads.
package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Service wraps the Firestore client used by the repositories.
type Service struct {
	client    *firestore.Client
	projectID string
}

// New connects to Firestore. With an empty credentials file path the client
// falls back to Application Default Credentials.
func New(ctx context.Context, projectID, credentialsFile string) (*Service, error) {
	var (
		client *firestore.Client
		err    error
	)
	if credentialsFile != "" {
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &Service{client: client, projectID: projectID}, nil
}

// Client exposes the underlying Firestore client.
func (s *Service) Client() *firestore.Client {
	return s.client
}

// Health checks connectivity. Firestore has no ping API, so a minimal read
// stands in for one.
func (s *Service) Health(ctx context.Context) map[string]string {
	health := map[string]string{
		"status":  "up",
		"project": s.projectID,
	}

	if _, err := s.client.Collections(ctx).GetAll(); err != nil {
		health["status"] = "down"
		health["error"] = err.Error()
	}

	return health
}

// Close releases the client connection.
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
