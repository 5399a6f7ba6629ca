// Package firestore adapts Cloud Firestore to the catalog's store contract:
// upsert-by-id, unconditional delete, and long-lived full-snapshot
// subscriptions over the stories collection and the payment-config document.
package firestore

import (
	"context"
	"fmt"

	firestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	storiesCollection = "stories"
	configCollection  = "config"
	paymentConfigDoc  = "payment"

	// Snapshots are ordered by the creation-time id, newest first.
	orderField = "id"
)

type Config struct {
	ProjectID       string
	CredentialsFile string
}

// Client wraps the Firestore SDK client for the two logical collections this
// app owns. Transport, retries and connection management stay inside the SDK.
type Client struct {
	fs  *firestore.Client
	log *zap.Logger
}

// New initializes the Firebase app and opens a Firestore client. When no
// credentials file is configured the SDK falls back to application-default
// credentials.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore client: %w", err)
	}

	return &Client{fs: fs, log: log.Named("firestore")}, nil
}

func (c *Client) Close() error {
	return c.fs.Close()
}
