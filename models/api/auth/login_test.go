package authapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginRequestValidate(t *testing.T) {
	t.Run(`корректный запрос`, func(t *testing.T) {
		request := LoginRequest{Email: "user@example.com", Password: "secret"}
		require.Nil(t, request.Validate())
	})

	t.Run(`почта в неправильном формате`, func(t *testing.T) {
		request := LoginRequest{Email: "не почта", Password: "secret"}
		require.NotNil(t, request.Validate())
	})

	t.Run(`без пароля`, func(t *testing.T) {
		request := LoginRequest{Email: "user@example.com"}
		require.NotNil(t, request.Validate())
	})
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Run(`корректный запрос`, func(t *testing.T) {
		request := RegisterRequest{
			Email:    "user@example.com",
			Password: "secret",
			Name:     "Иван Иванов",
			Role:     "HR",
		}
		require.Nil(t, request.Validate())
	})

	t.Run(`неизвестная роль`, func(t *testing.T) {
		request := RegisterRequest{
			Email:    "user@example.com",
			Password: "secret",
			Name:     "Иван Иванов",
			Role:     "SUPERVISOR",
		}
		require.NotNil(t, request.Validate())
	})

	t.Run(`без имени`, func(t *testing.T) {
		request := RegisterRequest{
			Email:    "user@example.com",
			Password: "secret",
			Role:     "HR",
		}
		require.NotNil(t, request.Validate())
	})
}
