package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type AuthHandler struct {
	service *application.AuthService
}

func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login valida credenciales y devuelve rol e identidad de la cuenta
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	usuario, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNoAutorizado) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "credenciales inválidas"})
		}
		return errorResponse(c, err)
	}
	return c.JSON(usuario)
}

type registroRequest struct {
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
	Password       string `json:"password" validate:"required,min=8"`
}

// Register crea el perfil de cliente y su cuenta de acceso
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registroRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	cliente := &domain.Cliente{
		NombreCompleto: req.NombreCompleto,
		Email:          req.Email,
		Telefono:       req.Telefono,
		Direccion:      req.Direccion,
	}
	usuario, err := h.service.Registrar(c.Context(), cliente, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}
