package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"visionmatch/pkg/config"
	"visionmatch/pkg/logger"
)

// ClientOptions picks the service account source. Inline JSON wins over a
// file path; against the emulator no credentials are needed.
func ClientOptions(cfg *config.Config) []option.ClientOption {
	switch {
	case cfg.ServiceAccountJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))}
	case cfg.ServiceAccountPath != "":
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.ServiceAccountPath)}
	default:
		logger.Info("Using Firestore emulator at %s", cfg.FirestoreEmulatorHost)
		return nil
	}
}

// NewFirestoreClient initialises the Firebase app for the configured project
// and returns its Firestore client.
func NewFirestoreClient(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*firestore.Client, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
