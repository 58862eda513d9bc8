package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendai_backend/internals/configs"
	"agendai_backend/internals/constants"
)

func TestHashSenha(t *testing.T) {
	hash, err := HashSenha("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.True(t, CompararSenha(hash, "senha123"))
	assert.False(t, CompararSenha(hash, "senha124"))
}

func TestRefreshTokenIdaEVolta(t *testing.T) {
	configs.JWTSecret = "segredo-de-teste"
	configs.JWTRefreshSecret = "segredo-refresh-de-teste"

	refresh, err := CriarRefreshToken("Ana.Costa@uece.br", constants.RoleProfessor)
	require.NoError(t, err)

	email, papel, err := DecodificarRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "ana.costa@uece.br", email) // sub é normalizado para minúsculas
	assert.Equal(t, constants.RoleProfessor, papel)
}

func TestAccessTokenNaoServeComoRefresh(t *testing.T) {
	configs.JWTSecret = "segredo-de-teste"
	configs.JWTRefreshSecret = "segredo-refresh-de-teste"

	access, err := CriarAccessToken("ana.costa@uece.br", constants.RoleProfessor)
	require.NoError(t, err)

	_, _, err = DecodificarRefresh(access)
	assert.Error(t, err)
}
