package models

import "github.com/pkg/errors"

// типовые ошибки доменных сервисов,
// контроллеры транслируют их в http статусы
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrDuplicateEmail     = errors.New("запись с такой почтой уже существует")
	ErrInvalidCredentials = errors.New("неверная почта или пароль")
	ErrInvalidStatus      = errors.New("недопустимый статус")
)
