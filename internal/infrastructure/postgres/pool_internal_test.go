package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/pkg/config"
)

func TestParsePoolConfig_SoloLectura(t *testing.T) {
	pc, err := parsePoolConfig(config.DBConfig{
		Host: "localhost", Port: 5432, User: "conta", Password: "p@ss:word", DBName: "puc", SSLMode: "disable",
	})
	require.NoError(t, err)
	assert.Equal(t, "on", pc.ConnConfig.RuntimeParams["default_transaction_read_only"])
	assert.Equal(t, "p@ss:word", pc.ConnConfig.Password)
	assert.Equal(t, "puc", pc.ConnConfig.Database)
	assert.EqualValues(t, 10, pc.MaxConns)
	assert.NotNil(t, pc.AfterConnect)
}

func TestParsePoolConfig_DatabaseURL(t *testing.T) {
	pc, err := parsePoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@db.example.com:6543/catalogo?sslmode=disable"})
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", pc.ConnConfig.Host)
	assert.EqualValues(t, 6543, pc.ConnConfig.Port)
}

func TestParsePoolConfig_DSNInvalido(t *testing.T) {
	_, err := parsePoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:notaport/db"})
	assert.Error(t, err)
}
