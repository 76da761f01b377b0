package application

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// generarCodigo produce un código corto legible con el prefijo dado, por
// ejemplo R-3FA85C para reservas o I-9B2D1E para facturas.
func generarCodigo(prefijo string) string {
	return fmt.Sprintf("%s-%s", prefijo, strings.ToUpper(uuid.NewString()[:6]))
}
