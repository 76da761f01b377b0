package http

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

var validate = validator.New()

// errorResponse traduce los errores centinela del dominio a códigos HTTP.
// Cualquier error fuera de la taxonomía es un 500 y se registra.
func errorResponse(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, domain.ErrNoEncontrado):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflicto):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrTransicionInvalida):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrValidacion):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNoAutorizado):
		status = fiber.StatusForbidden
	default:
		log.Printf("error interno en %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error interno del servidor",
		})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// validationError arma la respuesta 400 de un cuerpo que no pasa las reglas
// del DTO
func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": mensaje})
}

// parseFecha parsea una fecha en formato YYYY-MM-DD en UTC
func parseFecha(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// paginacionQuery lee los parámetros comunes de listado. Los valores fuera
// de rango los normaliza la capa de aplicación.
func paginacionQuery(c *fiber.Ctx) (pagina, porPagina int, busqueda string) {
	pagina = c.QueryInt("pagina", 1)
	porPagina = c.QueryInt("porPagina", 20)
	busqueda = c.Query("busqueda")
	return pagina, porPagina, busqueda
}
