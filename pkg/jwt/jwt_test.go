package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Reciclaje-api/pkg/jwt"
)

const (
	secret = "test-secret-key-for-unit-tests"
	userID = "00000000-0000-0000-0000-000000000001"
	issuer = "reciclaje-auth-test"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, pkgjwt.RoleOperator, issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUser, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, userID, gotUser)
	assert.Equal(t, pkgjwt.RoleOperator, role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, pkgjwt.RoleAdmin, issuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, pkgjwt.RoleAdmin, issuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, pkgjwt.RoleAdmin, issuer, 60)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "x.y.z")
	assert.Error(t, err)
}
