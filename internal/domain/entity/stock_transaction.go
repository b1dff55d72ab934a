package entity

import "time"

// Tipos de transacción del ledger de inventario.
const (
	TransactionTypeSale     = "Sale"
	TransactionTypeReturn   = "Return"
	TransactionTypeRestock  = "Restock"
	TransactionTypeRemoval  = "Removal"
	TransactionTypeTransfer = "Transfer"
)

// StockTransaction es una entrada del log append-only del ledger.
// Se escribe exactamente una por ajuste y nunca se muta: es la pista de
// auditoría con la que se reconstruye cualquier cambio neto de existencias.
type StockTransaction struct {
	ID              string
	StoreID         int
	ProductID       int
	Type            string
	Quantity        int // delta con signo: negativo salida, positivo entrada
	TransactionDate time.Time
	SourceStoreID   *int // solo en el registro Transfer-in de la tienda destino
	Notes           string
	CreatedBy       string

	// Denormalizados para listados.
	StoreName       string
	ProductName     string
	SKU             string
	SourceStoreName string
}
