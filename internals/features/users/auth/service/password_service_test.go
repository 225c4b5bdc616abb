package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_YVerificacion(t *testing.T) {
	hash, err := HashPassword("contraseña-segura")
	require.NoError(t, err)
	assert.NotEqual(t, "contraseña-segura", hash)

	assert.NoError(t, CheckPasswordHash(hash, "contraseña-segura"))
	assert.Error(t, CheckPasswordHash(hash, "otra-contraseña"))
}

func TestHashPassword_SalAleatoria(t *testing.T) {
	h1, err := HashPassword("misma-clave")
	require.NoError(t, err)
	h2, err := HashPassword("misma-clave")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt genera una sal distinta por hash")
	assert.NoError(t, CheckPasswordHash(h1, "misma-clave"))
	assert.NoError(t, CheckPasswordHash(h2, "misma-clave"))
}
