package create_appointment

import "errors"

var (
	// ErrProviderNotFound возвращается, когда специалист не подтверждён справочником.
	// Недоступность справочника на пути бронирования тоже сводится сюда:
	// бронирование к возможно несуществующему специалисту небезопасно (fail-closed)
	ErrProviderNotFound = errors.New("create_appointment: provider not recognized")

	// ErrSlotTaken возвращается, когда слот уже занят: как по предварительной
	// проверке, так и по нарушению уникального индекса в БД
	ErrSlotTaken = errors.New("create_appointment: slot already booked")

	// ErrDateNotInFuture возвращается, когда время приёма не строго в будущем
	ErrDateNotInFuture = errors.New("create_appointment: appointment time must be in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
