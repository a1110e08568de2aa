package dashboard

import (
	"path/filepath"
	"testing"

	"github.com/ryazanov/inkstudio/internal/localstore"
	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ss := NewSessionStore(localstore.New(path))

	t.Run("logged_out_by_default", func(t *testing.T) {
		sess, err := ss.Current()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("survives_reopen", func(t *testing.T) {
		want := Session{UserID: 7, Name: "Клиент", Role: models.RoleClient, Token: "token"}
		require.NoError(t, ss.Init(want))

		reopened := NewSessionStore(localstore.New(path))
		sess, err := reopened.Current()
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, want, *sess)
	})

	t.Run("clear_logs_out", func(t *testing.T) {
		require.NoError(t, ss.Clear())

		sess, err := ss.Current()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})
}
