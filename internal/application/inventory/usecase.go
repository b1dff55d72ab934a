package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
	"github.com/jhoicas/Reservas-api/pkg/logger"
)

// UseCase opera el ledger de existencias: ajustes atómicos, disponibilidad,
// transferencias entre tiendas y consultas de inventario.
type UseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
	txLogRepo repository.StockTransactionRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	txLogRepo repository.StockTransactionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{txRunner: txRunner, stockRepo: stockRepo, txLogRepo: txLogRepo, log: log}
}

// Availability resultado de la consulta de disponibilidad.
type Availability struct {
	Available       bool
	QuantityInStock int
}

// AdjustInput entrada para un ajuste del ledger. Delta con signo: negativo
// descuenta (venta/apartado), positivo repone (devolución/restock).
type AdjustInput struct {
	StoreID   int
	ProductID int
	Delta     int
	Type      string // si va vacío se deriva: Restock para entradas, Removal para salidas
	Notes     string
	CreatedBy string
}

// Adjust aplica el delta y escribe exactamente una transacción en el log,
// ambas cosas dentro de una transacción SQL. El decremento es condicional a
// nivel de fila, así que dos ajustes concurrentes sobre el mismo par
// (tienda, producto) nunca dejan la cantidad en negativo.
func (uc *UseCase) Adjust(ctx context.Context, in AdjustInput) (int, error) {
	if in.StoreID <= 0 || in.ProductID <= 0 || in.Delta == 0 {
		return 0, domain.ErrInvalidInput
	}
	txType := in.Type
	if txType == "" {
		if in.Delta > 0 {
			txType = entity.TransactionTypeRestock
		} else {
			txType = entity.TransactionTypeRemoval
		}
	}
	switch txType {
	case entity.TransactionTypeSale, entity.TransactionTypeReturn,
		entity.TransactionTypeRestock, entity.TransactionTypeRemoval:
	default:
		return 0, domain.ErrInvalidInput
	}

	var newQty int
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		txLogRepo repository.StockTransactionRepository,
	) error {
		qty, err := stockRepo.ApplyDelta(ctx, in.StoreID, in.ProductID, in.Delta)
		if err != nil {
			return err
		}
		newQty = qty
		return txLogRepo.Create(ctx, &entity.StockTransaction{
			StoreID:         in.StoreID,
			ProductID:       in.ProductID,
			Type:            txType,
			Quantity:        in.Delta,
			TransactionDate: time.Now(),
			Notes:           in.Notes,
			CreatedBy:       in.CreatedBy,
		})
	})
	if err != nil {
		return 0, err
	}

	uc.log.Debug().
		Int("store_id", in.StoreID).
		Int("product_id", in.ProductID).
		Int("delta", in.Delta).
		Int("new_quantity", newQty).
		Str("type", txType).
		Msg("ajuste de inventario aplicado")
	return newQty, nil
}

// CheckAvailability consulta de solo lectura sobre el mismo registro del ledger.
// available = quantity_in_stock > 0; un par sin registro cuenta como no disponible.
func (uc *UseCase) CheckAvailability(ctx context.Context, storeID, productID int) (Availability, error) {
	if storeID <= 0 || productID <= 0 {
		return Availability{}, domain.ErrInvalidInput
	}
	record, err := uc.stockRepo.Get(ctx, storeID, productID)
	if err != nil {
		return Availability{}, err
	}
	if record == nil {
		return Availability{Available: false, QuantityInStock: 0}, nil
	}
	return Availability{
		Available:       record.QuantityInStock > 0,
		QuantityInStock: record.QuantityInStock,
	}, nil
}

// TransferInput entrada para transferencia entre tiendas.
type TransferInput struct {
	SourceStoreID int
	TargetStoreID int
	ProductID     int
	Quantity      int
	CreatedBy     string
}

// Transfer mueve existencias entre tiendas: decrementa origen, incrementa
// destino y escribe el par de transacciones Transfer (la del destino lleva
// source_store_id). Todo en una sola transacción SQL: si el incremento en
// destino falla, el rollback deshace el decremento en origen y el ledger
// nunca queda a medias.
func (uc *UseCase) Transfer(ctx context.Context, in TransferInput) (*dto.TransferResultDTO, error) {
	if in.SourceStoreID == in.TargetStoreID || in.Quantity <= 0 {
		return nil, domain.ErrInvalidTransfer
	}
	if in.SourceStoreID <= 0 || in.TargetStoreID <= 0 || in.ProductID <= 0 {
		return nil, domain.ErrInvalidTransfer
	}

	var result dto.TransferResultDTO
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		txLogRepo repository.StockTransactionRepository,
	) error {
		now := time.Now()

		sourceQty, err := stockRepo.ApplyDelta(ctx, in.SourceStoreID, in.ProductID, -in.Quantity)
		if err != nil {
			return err
		}
		targetQty, err := stockRepo.ApplyDelta(ctx, in.TargetStoreID, in.ProductID, in.Quantity)
		if err != nil {
			return err
		}

		notes := fmt.Sprintf("Transferencia de tienda %d a tienda %d", in.SourceStoreID, in.TargetStoreID)
		outTx := &entity.StockTransaction{
			StoreID:         in.SourceStoreID,
			ProductID:       in.ProductID,
			Type:            entity.TransactionTypeTransfer,
			Quantity:        -in.Quantity,
			TransactionDate: now,
			Notes:           notes,
			CreatedBy:       in.CreatedBy,
		}
		if err := txLogRepo.Create(ctx, outTx); err != nil {
			return err
		}
		sourceID := in.SourceStoreID
		inTx := &entity.StockTransaction{
			StoreID:         in.TargetStoreID,
			ProductID:       in.ProductID,
			Type:            entity.TransactionTypeTransfer,
			Quantity:        in.Quantity,
			TransactionDate: now,
			SourceStoreID:   &sourceID,
			Notes:           notes,
			CreatedBy:       in.CreatedBy,
		}
		if err := txLogRepo.Create(ctx, inTx); err != nil {
			return err
		}

		result = dto.TransferResultDTO{
			SourceStoreID:  in.SourceStoreID,
			TargetStoreID:  in.TargetStoreID,
			ProductID:      in.ProductID,
			Quantity:       in.Quantity,
			SourceQuantity: sourceQty,
			TargetQuantity: targetQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("source_store_id", in.SourceStoreID).
		Int("target_store_id", in.TargetStoreID).
		Int("product_id", in.ProductID).
		Int("quantity", in.Quantity).
		Msg("transferencia entre tiendas completada")
	return &result, nil
}

// ListInventory lista existencias de toda la cadena.
func (uc *UseCase) ListInventory(ctx context.Context, limit int) ([]dto.InventoryItemDTO, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := uc.stockRepo.ListAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toInventoryDTOs(records), nil
}

// ListStoreInventory lista existencias de una tienda.
func (uc *UseCase) ListStoreInventory(ctx context.Context, storeID int) ([]dto.InventoryItemDTO, error) {
	if storeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.stockRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return toInventoryDTOs(records), nil
}

// ListProductInventory lista existencias de un producto en todas las tiendas.
func (uc *UseCase) ListProductInventory(ctx context.Context, productID int) ([]dto.InventoryItemDTO, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toInventoryDTOs(records), nil
}

// ListLowStock lista productos en o bajo su punto de reorden.
func (uc *UseCase) ListLowStock(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	items, err := uc.stockRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockItemDTO{
			StoreID:         it.StoreID,
			StoreName:       it.StoreName,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			SKU:             it.SKU,
			RetailPrice:     it.RetailPrice,
			QuantityInStock: it.QuantityInStock,
			MinStockLevel:   it.MinStockLevel,
			ReorderPoint:    it.ReorderPoint,
			StockStatus:     it.StockStatus,
		})
	}
	return out, nil
}

// ListTransactions lista el log de transacciones de una tienda.
func (uc *UseCase) ListTransactions(ctx context.Context, storeID, limit int) ([]dto.StockTransactionDTO, error) {
	if storeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	txs, err := uc.txLogRepo.ListByStore(ctx, storeID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockTransactionDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, dto.StockTransactionDTO{
			ID:              t.ID,
			StoreID:         t.StoreID,
			StoreName:       t.StoreName,
			ProductID:       t.ProductID,
			ProductName:     t.ProductName,
			SKU:             t.SKU,
			TransactionType: t.Type,
			Quantity:        t.Quantity,
			TransactionDate: t.TransactionDate,
			SourceStoreID:   t.SourceStoreID,
			SourceStoreName: t.SourceStoreName,
			Notes:           t.Notes,
		})
	}
	return out, nil
}

func toInventoryDTOs(records []*entity.StockRecord) []dto.InventoryItemDTO {
	out := make([]dto.InventoryItemDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.InventoryItemDTO{
			StoreID:         r.StoreID,
			StoreName:       r.StoreName,
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			SKU:             r.SKU,
			QuantityInStock: r.QuantityInStock,
			LastRestockDate: r.LastRestockDate,
		})
	}
	return out
}
