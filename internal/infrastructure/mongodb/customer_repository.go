package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre MongoDB.
type CustomerRepo struct {
	collection *mongo.Collection
}

// NewCustomerRepository construye el adaptador sobre la colección customers.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{collection: db.Collection("customers")}
}

// EnsureIndexes crea el índice único sobre el id del cliente relacional.
func (r *CustomerRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sql_customer_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("crear índices de customers: %w", err)
	}
	return nil
}

// GetBySQLCustomerID busca por id de cliente relacional. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetBySQLCustomerID(ctx context.Context, sqlCustomerID int) (*entity.Customer, error) {
	var c entity.Customer
	err := r.collection.FindOne(ctx, bson.M{"sql_customer_id": sqlCustomerID}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Save inserta o actualiza por sql_customer_id (upsert). El _id solo se fija
// en la inserción; un update sobre un documento existente no puede tocarlo.
func (r *CustomerRepo) Save(ctx context.Context, c *entity.Customer) error {
	now := time.Now()
	c.UpdatedAt = now

	filter := bson.M{"sql_customer_id": c.SQLCustomerID}
	update := bson.M{
		"$set": bson.M{
			"first_name":    c.FirstName,
			"last_name":     c.LastName,
			"email":         c.Email,
			"phone":         c.Phone,
			"preferences":   c.Preferences,
			"last_activity": c.LastActivity,
			"updated_at":    c.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":             c.ID,
			"sql_customer_id": c.SQLCustomerID,
			"created_at":      now,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	return nil
}
