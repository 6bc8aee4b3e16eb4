package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	t.Run(`хеш проходит проверку с исходным паролем`, func(t *testing.T) {
		hash, err := HashPassword("secret-password")
		require.Nil(t, err)
		require.NotEqual(t, "secret-password", hash)
		require.True(t, CheckPassword(hash, "secret-password"))
	})

	t.Run(`неправильный пароль не проходит`, func(t *testing.T) {
		hash, err := HashPassword("secret-password")
		require.Nil(t, err)
		require.False(t, CheckPassword(hash, "other-password"))
	})

	t.Run(`разные хеши для одного пароля`, func(t *testing.T) {
		hash1, err := HashPassword("secret-password")
		require.Nil(t, err)
		hash2, err := HashPassword("secret-password")
		require.Nil(t, err)
		require.NotEqual(t, hash1, hash2)
	})
}
