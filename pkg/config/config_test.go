package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reservas-api/pkg/config"
)

// Load sin variables de entorno debe devolver valores por defecto usables en
// desarrollo local.
func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "retail_chain", cfg.DB.DBName)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "retail_reservations", cfg.Mongo.Database)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 24, cfg.Reservation.HoldHours, "las reservas duran 24 horas por defecto")
}

// El DSN debe URL-escapar credenciales con caracteres especiales.
func TestDSN_EscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "usuario",
		Password: "p@ss/word:raro",
		DBName:   "retail_chain",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword%3Araro", "la contraseña debe ir escapada")
	assert.Contains(t, dsn, "sslmode=disable")
}

// DatabaseURL completo tiene prioridad sobre los campos individuales.
func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/prod?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}

func TestAddr_FormatoHostPuerto(t *testing.T) {
	h := config.HTTPConfig{Host: "0.0.0.0", Port: 9090}
	assert.Equal(t, "0.0.0.0:9090", h.Addr())
}
