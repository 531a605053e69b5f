package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardiao/guardiao-api/pkg/config"
)

func TestLoad_PortaNumericaValida(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	t.Setenv("DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
}

// Valor não numérico numa env inteira cai no padrão em vez de virar 0.
func TestLoad_PortaInvalidaCaiNoPadrao(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	t.Setenv("DB_PORT", "abc")
	t.Setenv("HTTP_PORT", "oitenta")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_SemJWTSecret_Falha(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
