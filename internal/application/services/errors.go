package services

import "errors"

// User-facing failure messages. The API responds in Spanish, so the text of
// each sentinel is the exact message the boundary echoes back.
var (
	ErrInvalidEmail           = errors.New("Correo inválido.")
	ErrEmailNotRegistered     = errors.New("El correo no está registrado.")
	ErrInvalidCredentials     = errors.New("Contraseña incorrecta.")
	ErrPasswordTooShort       = errors.New("La contraseña es demasiado corta.")
	ErrEmailAlreadyRegistered = errors.New("Este correo ya está registrado.")

	ErrMissingServicioFields = errors.New("Faltan campos obligatorios para el servicio.")
	ErrMissingReservaFields  = errors.New("Faltan campos obligatorios para la reserva.")
	ErrInvalidSlotTime       = errors.New("Formato de fecha u hora inválido")
	ErrInvalidPaymentMethod  = errors.New("Método de pago inválido")
	ErrInvalidAmount         = errors.New("El monto debe ser mayor a 0.")
	ErrReservationIDRequired = errors.New("ID de reserva requerido para el pago.")
	ErrInvalidID             = errors.New("Identificador inválido")

	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

var validationErrs = []error{
	ErrInvalidEmail,
	ErrEmailNotRegistered,
	ErrInvalidCredentials,
	ErrPasswordTooShort,
	ErrEmailAlreadyRegistered,
	ErrMissingServicioFields,
	ErrMissingReservaFields,
	ErrInvalidSlotTime,
	ErrInvalidPaymentMethod,
	ErrInvalidAmount,
	ErrReservationIDRequired,
	ErrInvalidID,
}

// IsValidationErr reports whether err carries a caller-fault message that is
// safe to echo back. Anything else is surfaced as a generic failure.
func IsValidationErr(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
