package repository

import (
	"context"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos.
type ProductRepository interface {
	// GetByID devuelve nil, nil si el producto no existe o está inactivo.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
}

// StoreRepository define el puerto de lectura de tiendas.
type StoreRepository interface {
	// GetByID devuelve nil, nil si la tienda no existe.
	GetByID(ctx context.Context, id int) (*entity.Store, error)
}
