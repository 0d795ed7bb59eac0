package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
)

var (
	// ErrMissingBinding is matched by every *MissingBindingError.
	ErrMissingBinding = errors.New("registry: missing binding")
	// ErrResolutionFault wraps failures raised while resolving a name and type together.
	ErrResolutionFault = errors.New("registry: resolution fault")
	// ErrSealed is returned when providers are added after the registry was built.
	ErrSealed = errors.New("registry: sealed")
)

// MissingBindingError is the panic value of strict lookups that find nothing.
type MissingBindingError struct {
	Type reflect.Type
	Name string
}

func (e *MissingBindingError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("registry: no binding registered for type [%s]", TypeKey(e.Type))
	}
	return fmt.Sprintf("registry: no binding registered for name [%s]", e.Name)
}

func (e *MissingBindingError) Is(target error) bool { return target == ErrMissingBinding }

// ErrorHandler receives resolution faults and returns the error the caller sees.
// Returning nil swallows the fault.
type ErrorHandler func(err error) error

// LogErrors returns an ErrorHandler that logs the fault and passes it on.
func LogErrors(log *slog.Logger) ErrorHandler {
	return func(err error) error {
		log.Error("resolution failed", "error", err)
		return err
	}
}
