package db

import (
	"context"
	"fmt"

	"github.com/ukydev/trackpit/internal/config"
)

// Open connects to the configured backend.
func Open(ctx context.Context, cfg config.Store) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFirestore:
		store, err := ConnectFirestore(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMongo, "":
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store, err := NewMongoStore(ctx, client, cfg.MongoDB)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
