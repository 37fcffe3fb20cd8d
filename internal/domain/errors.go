package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidRole    = errors.New("rol inválido")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrEmptyUpdate    = errors.New("debe indicarse al menos un campo a actualizar")
	ErrPrimaryWrite   = errors.New("fallo de escritura primaria")
	ErrSecondaryWrite = errors.New("fallo de escritura secundaria")
)

// PrimaryWriteError indica que la escritura primaria (proveedor de identidad)
// falló. No hay nada que compensar: ningún paso anterior se completó.
type PrimaryWriteError struct {
	Step string // nombre del paso de la saga que falló
	Err  error
}

func (e *PrimaryWriteError) Error() string {
	return fmt.Sprintf("escritura primaria (%s): %v", e.Step, e.Err)
}

func (e *PrimaryWriteError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrPrimaryWrite).
func (e *PrimaryWriteError) Is(target error) bool { return target == ErrPrimaryWrite }

// SecondaryWriteError indica que un paso posterior al primero falló y la saga
// ejecutó la compensación de los pasos ya completados. El error original se
// conserva vía Unwrap; una compensación fallida nunca lo reemplaza.
type SecondaryWriteError struct {
	Step string
	Err  error
}

func (e *SecondaryWriteError) Error() string {
	return fmt.Sprintf("escritura secundaria (%s): %v", e.Step, e.Err)
}

func (e *SecondaryWriteError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrSecondaryWrite).
func (e *SecondaryWriteError) Is(target error) bool { return target == ErrSecondaryWrite }
