package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

// validarEmail valida el formato de un email. El vacío se acepta: el email
// es opcional en huéspedes y clientes.
func validarEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: el formato del email '%s' no es válido", domain.ErrValidacion, email)
	}
	return nil
}

// validarTelefono valida el formato de un teléfono, tolerando espacios,
// guiones y paréntesis
func validarTelefono(telefono string) error {
	if telefono == "" {
		return nil
	}
	limpio := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(telefono)
	if !phoneRegex.MatchString(limpio) {
		return fmt.Errorf("%w: el teléfono '%s' debe tener entre 7 y 15 dígitos", domain.ErrValidacion, telefono)
	}
	return nil
}
