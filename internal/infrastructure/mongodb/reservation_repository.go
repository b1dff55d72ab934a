package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación de ReservationRepository sobre MongoDB.
type ReservationRepo struct {
	collection *mongo.Collection
}

// NewReservationRepository construye el adaptador sobre la colección reservations.
func NewReservationRepository(db *mongo.Database) *ReservationRepo {
	return &ReservationRepo{collection: db.Collection("reservations")}
}

// EnsureIndexes crea los índices de la colección. El índice único sobre
// confirmation_code es el que hace seguro el reintento de códigos en create().
func (r *ReservationRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "confirmation_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "store_id", Value: 1}, {Key: "product_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "expiry_date", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "sql_customer_id", Value: 1}},
		},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("crear índices de reservations: %w", err)
	}
	return nil
}

// Insert persiste una reserva nueva. ErrDuplicate si el código ya existe.
func (r *ReservationRepo) Insert(ctx context.Context, res *entity.Reservation) error {
	now := time.Now()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = now
	res.ConfirmationCode = strings.ToUpper(res.ConfirmationCode)

	if _, err := r.collection.InsertOne(ctx, res); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByCode busca por código de confirmación (se normaliza a mayúsculas).
func (r *ReservationRepo) GetByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	var res entity.Reservation
	filter := bson.M{"confirmation_code": strings.ToUpper(strings.TrimSpace(code))}
	err := r.collection.FindOne(ctx, filter).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation by code: %w", err)
	}
	return &res, nil
}

// UpdateStatus aplica la transición solo si el estado actual está en fromStatuses.
// Estado nuevo e historial se escriben en la misma operación; MatchedCount 0
// significa carrera perdida o estado no elegible, y no se muta nada.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id string, fromStatuses []string, toStatus string, entry entity.StatusEntry) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": fromStatuses},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     toStatus,
			"updated_at": time.Now(),
		},
		"$push": bson.M{"status_history": entry},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update reservation status: %w", err)
	}
	return result.MatchedCount == 1, nil
}

// AppendHistory agrega una entrada de historial sin tocar el estado.
func (r *ReservationRepo) AppendHistory(ctx context.Context, id string, entry entity.StatusEntry) error {
	update := bson.M{
		"$push": bson.M{"status_history": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("append reservation history: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista reservas PENDING/CONFIRMED paginadas, filtro opcional por tienda.
func (r *ReservationRepo) ListActive(ctx context.Context, storeID, page, limit int) ([]*entity.Reservation, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	filter := bson.M{"status": bson.M{"$in": []string{
		entity.ReservationStatusPending, entity.ReservationStatusConfirmed,
	}}}
	if storeID > 0 {
		filter["store_id"] = storeID
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count active reservations: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list active reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Reservation
	if err := cursor.All(ctx, &list); err != nil {
		return nil, 0, fmt.Errorf("decode active reservations: %w", err)
	}
	return list, total, nil
}

// ListByCustomer lista todas las reservas de un cliente relacional, recientes primero.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, sqlCustomerID int) ([]*entity.Reservation, error) {
	filter := bson.M{"sql_customer_id": sqlCustomerID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list customer reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Reservation
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode customer reservations: %w", err)
	}
	return list, nil
}

// FindExpiredPending devuelve las candidatas del barrido: PENDING ya vencidas.
func (r *ReservationRepo) FindExpiredPending(ctx context.Context, now time.Time) ([]*entity.Reservation, error) {
	filter := bson.M{
		"status":      entity.ReservationStatusPending,
		"expiry_date": bson.M{"$lt": now},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find expired reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Reservation
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode expired reservations: %w", err)
	}
	return list, nil
}
