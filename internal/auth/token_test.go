package auth

import (
	"encoding/hex"
	"testing"

	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, s string) []byte {
	t.Helper()
	key, err := hex.DecodeString(s)
	require.NoError(t, err)
	return key
}

func TestAuthToken_Roundtrip(t *testing.T) {
	at := NewAuthToken(testKey(t, "9c1185a5c5e9fc54612808977ee8f548"))

	user := &models.User{ID: 7, Role: models.RoleClient}

	tokenString, err := at.CreateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	payload, err := at.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, user.Role, payload.Role)
}

func TestAuthToken_WrongKey(t *testing.T) {
	issuer := NewAuthToken(testKey(t, "9c1185a5c5e9fc54612808977ee8f548"))
	verifier := NewAuthToken(testKey(t, "00000000000000000000000000000000"))

	tokenString, err := issuer.CreateToken(&models.User{ID: 7, Role: models.RoleClient})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestAuthToken_Garbage(t *testing.T) {
	at := NewAuthToken(testKey(t, "9c1185a5c5e9fc54612808977ee8f548"))

	_, err := at.VerifyToken("not-a-token")
	assert.Error(t, err)
}
