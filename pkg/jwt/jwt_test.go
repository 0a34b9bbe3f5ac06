package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/zyck/property-admin/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "zyck-admin-test"
)

func adminSession() pkgjwt.Session {
	return pkgjwt.Session{
		SessionID: "sid-1",
		UserID:    "kp_admin",
		Name:      "Nazia Majid",
		Email:     "nazia@example.com",
		IsAdmin:   true,
		Image:     "https://lh3.googleusercontent.com/a.png",
	}
}

func TestGenerateAndParse_ConservaSesion(t *testing.T) {
	tok, exp, err := pkgjwt.Generate(testSecret, testIssuer, adminSession(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	s, parsedExp, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, adminSession(), *s)
	assert.WithinDuration(t, exp, parsedExp, time.Second)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, adminSession(), -time.Minute)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, adminSession(), time.Hour)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_NoAdmin(t *testing.T) {
	s := adminSession()
	s.IsAdmin = false
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, s, time.Hour)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrNotAdmin)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate("", testIssuer, adminSession(), time.Hour)
	assert.Error(t, err)
}
