package directory

import "errors"

var (
	// ErrProviderNotFound возвращается, когда специалист не найден в справочнике
	// Пустой результат фильтрации по id означает "не найден", а не ошибку
	ErrProviderNotFound = errors.New("directory client: provider not found")

	// ErrServiceUnavailable возвращается при недоступности справочника:
	// сетевая ошибка, таймаут, не-2xx ответ или некорректное тело ответа.
	// Транспортные ошибки наружу не пробрасываются
	ErrServiceUnavailable = errors.New("directory client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")
)
