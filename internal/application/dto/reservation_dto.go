package dto

import (
	"time"

	"github.com/jhoicas/Reservas-api/internal/domain/entity"
)

// CustomerInfoRequest datos opcionales del cliente al crear una reserva.
type CustomerInfoRequest struct {
	SQLCustomerID int    `json:"sqlCustomerId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// CreateReservationRequest petición de creación de reserva.
type CreateReservationRequest struct {
	StoreID      int                  `json:"storeId"`
	ProductID    int                  `json:"productId"`
	Quantity     int                  `json:"quantity"`
	Notes        string               `json:"notes"`
	CustomerInfo *CustomerInfoRequest `json:"customerInfo"`
}

// CancelReservationRequest motivo opcional de cancelación.
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// ReservationCreatedDTO respuesta de creación de reserva.
type ReservationCreatedDTO struct {
	ReservationID    string    `json:"reservationId"`
	ConfirmationCode string    `json:"confirmationCode"`
	Status           string    `json:"status"`
	StoreName        string    `json:"storeName"`
	ProductName      string    `json:"productName"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unitPrice"`
	TotalPrice       float64   `json:"totalPrice"`
	ExpiryDate       time.Time `json:"expiryDate"`
}

// ReservationStatusDTO respuesta de una transición de ciclo de vida.
type ReservationStatusDTO struct {
	ReservationID    string `json:"reservationId"`
	ConfirmationCode string `json:"confirmationCode"`
	Status           string `json:"status"`
	StoreName        string `json:"storeName"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
}

// ActiveReservationsDTO listado paginado de reservas activas.
type ActiveReservationsDTO struct {
	Reservations []*entity.Reservation `json:"reservations"`
	Pagination   Pagination            `json:"pagination"`
}
