package entity

import "time"

// Estados del ciclo de vida de una reserva.
//
//	create()            confirm()             complete()
//	(none) ──▶ PENDING ──────────▶ CONFIRMED ──────────▶ COMPLETED
//	              │ │                   │
//	              │ │cancel()           │cancel()
//	              │ ▼                   ▼
//	              │ CANCELLED ◀─────────┘
//	              │ (expiración detectada)
//	              ▼
//	           EXPIRED
//
// complete() también admite PENDING: el cliente puede recoger sin haber
// confirmado antes.
//
// CANCELLED, COMPLETED y EXPIRED son terminales; las reservas nunca se
// eliminan físicamente una vez alcanzan un estado terminal.
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCompleted = "COMPLETED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusExpired   = "EXPIRED"
)

// IsTerminalStatus indica si el estado no admite más transiciones.
func IsTerminalStatus(status string) bool {
	switch status {
	case ReservationStatusCompleted, ReservationStatusCancelled, ReservationStatusExpired:
		return true
	}
	return false
}

// StatusEntry es una entrada del historial de estados de la reserva (append-only).
type StatusEntry struct {
	Status  string    `bson:"status" json:"status"`
	Date    time.Time `bson:"date" json:"date"`
	Comment string    `bson:"comment" json:"comment"`
}

// Reservation es el documento de reserva en MongoDB.
// Invariante: toda reserva PENDING o CONFIRMED tiene exactamente un decremento
// de stock vigente por Quantity unidades sobre (StoreID, ProductID); salir de
// esos estados hacia CANCELLED o EXPIRED produce exactamente una transacción
// Return compensatoria, y hacia COMPLETED ninguna.
type Reservation struct {
	ID               string        `bson:"_id" json:"reservationId"`
	StoreID          int           `bson:"store_id" json:"storeId"`
	StoreName        string        `bson:"store_name" json:"storeName"`
	ProductID        int           `bson:"product_id" json:"productId"`
	ProductName      string        `bson:"product_name" json:"productName"`
	ProductSKU       string        `bson:"product_sku" json:"productSku"`
	Quantity         int           `bson:"quantity" json:"quantity"`
	UnitPrice        float64       `bson:"unit_price" json:"unitPrice"`
	ConfirmationCode string        `bson:"confirmation_code" json:"confirmationCode"` // siempre en mayúsculas
	Status           string        `bson:"status" json:"status"`
	ReservationDate  time.Time     `bson:"reservation_date" json:"reservationDate"`
	ExpiryDate       time.Time     `bson:"expiry_date" json:"expiryDate"`
	Notes            string        `bson:"notes,omitempty" json:"notes,omitempty"`
	StatusHistory    []StatusEntry `bson:"status_history" json:"statusHistory"`

	// Vínculo opcional con el cliente (la reserva puede ser anónima).
	SQLCustomerID *int   `bson:"sql_customer_id,omitempty" json:"sqlCustomerId,omitempty"`
	CustomerName  string `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	CustomerEmail string `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	CustomerPhone string `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsExpired indica si la reserva superó su fecha de expiración en el instante dado.
func (r *Reservation) IsExpired(now time.Time) bool {
	return now.After(r.ExpiryDate)
}
