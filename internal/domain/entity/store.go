package entity

import "time"

// Store tienda física de la cadena (lado relacional).
type Store struct {
	ID        int
	Name      string
	Code      string
	City      string
	IsActive  bool
	CreatedAt time.Time
}
