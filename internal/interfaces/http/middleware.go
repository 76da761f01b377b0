package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

const actorKey = "actor"

// ActorMiddleware extrae la identidad ya verificada por la capa externa de
// autenticación: X-User-Role trae el rol y, para clientes, X-Client-Id su
// identificador. Sin cabeceras no hay actor y las rutas protegidas
// rechazan con 401.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := domain.Rol(c.Get("X-User-Role"))
		if rol == "" {
			return c.Next()
		}
		if !domain.RolValido(rol) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "rol desconocido"})
		}

		actor := domain.Actor{Rol: rol}
		if rol == domain.RolCliente {
			id, err := strconv.Atoi(c.Get("X-Client-Id"))
			if err != nil || id <= 0 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "cliente sin identificar"})
			}
			actor.ClienteID = &id
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// RequireRoles corta la cadena si el actor no tiene uno de los roles dados
func RequireRoles(roles ...domain.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals(actorKey).(domain.Actor)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "se requiere autenticación"})
		}
		for _, rol := range roles {
			if actor.Rol == rol {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "rol sin permiso para esta operación"})
	}
}

// getActor devuelve el actor del contexto, o el actor vacío si la ruta es
// pública
func getActor(c *fiber.Ctx) domain.Actor {
	if actor, ok := c.Locals(actorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Actor{}
}
