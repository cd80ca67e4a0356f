package notifier

import "errors"

var (
	// ErrInternal возвращается при ошибках построения или выполнения запроса
	ErrInternal = errors.New("notifier: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе сервиса уведомлений
	ErrInvalidResponse = errors.New("notifier: invalid response")
)
