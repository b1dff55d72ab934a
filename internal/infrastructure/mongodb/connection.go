package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reservas-api/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre la conexión a MongoDB y devuelve la base de datos de la app.
// Igual que el pool de PostgreSQL, se construye una vez en el arranque y se
// inyecta; el ciclo de vida es el del proceso.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return client.Database(cfg.Database), nil
}

// Disconnect cierra la conexión del cliente subyacente.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
