package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/config"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/email"
	"github.com/lalavale064/gestion-hotelera/internal/infrastructure/database"
	"github.com/lalavale064/gestion-hotelera/internal/infrastructure/repository"
	handlers "github.com/lalavale064/gestion-hotelera/internal/interfaces/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if cfg.RunMigrations {
		if err := database.Migrate(cfg.GetDBConnString(), cfg.MigrationsDir); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}
	}

	db, err := database.Connect(cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-User-Role,X-Client-Id",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))
	app.Use(handlers.ActorMiddleware())

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}

	// Habitaciones
	habitacionRepo := repository.NewHabitacionRepository(db)
	habitacionService := application.NewHabitacionService(habitacionRepo)
	habitacionHandler := handlers.NewHabitacionHandler(habitacionService)

	// Clientes
	clienteRepo := repository.NewClienteRepository(db)
	clienteService := application.NewClienteService(clienteRepo)
	clienteHandler := handlers.NewClienteHandler(clienteService)

	// Reservas
	reservaRepo := repository.NewReservaRepository(db)
	reservaService := application.NewReservaService(reservaRepo, habitacionRepo, clienteRepo, emailClient)
	reservaHandler := handlers.NewReservaHandler(reservaService)

	// Líneas de servicio
	lineaRepo := repository.NewLineaServicioRepository(db)
	lineaService := application.NewLineaServicioService(lineaRepo)
	lineaHandler := handlers.NewLineaServicioHandler(lineaService)

	// Facturación
	facturaRepo := repository.NewFacturaRepository(db)
	facturaService := application.NewFacturaService(facturaRepo)
	facturaHandler := handlers.NewFacturaHandler(facturaService)

	// Servicios
	servicioRepo := repository.NewServicioRepository(db)
	servicioService := application.NewServicioService(servicioRepo)
	servicioHandler := handlers.NewServicioHandler(servicioService)

	// Personal
	empleadoRepo := repository.NewEmpleadoRepository(db)
	empleadoService := application.NewEmpleadoService(empleadoRepo)
	empleadoHandler := handlers.NewEmpleadoHandler(empleadoService)

	// Autenticación
	usuarioRepo := repository.NewUsuarioRepository(db)
	authService := application.NewAuthService(usuarioRepo)
	authHandler := handlers.NewAuthHandler(authService)

	// Reportes
	reporteRepo := repository.NewReporteRepository(db)
	reporteService := application.NewReporteService(reporteRepo)
	reporteHandler := handlers.NewReporteHandler(reporteService)

	api := app.Group("/api")

	personal := handlers.RequireRoles(domain.RolAdmin, domain.RolRecepcion, domain.RolSpa)
	recepcion := handlers.RequireRoles(domain.RolAdmin, domain.RolRecepcion)
	admin := handlers.RequireRoles(domain.RolAdmin)
	autenticado := handlers.RequireRoles(domain.RolAdmin, domain.RolRecepcion, domain.RolSpa, domain.RolCliente)

	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	habitaciones := api.Group("/habitaciones")
	habitaciones.Get("/disponibles", habitacionHandler.Disponibles)
	habitaciones.Get("/", personal, habitacionHandler.List)
	habitaciones.Get("/:id", personal, habitacionHandler.Get)
	habitaciones.Post("/", admin, habitacionHandler.Create)
	habitaciones.Put("/:id", admin, habitacionHandler.Update)
	habitaciones.Delete("/:id", admin, habitacionHandler.Delete)

	reservas := api.Group("/reservas")
	reservas.Get("/operaciones", recepcion, reservaHandler.OperacionesDia)
	reservas.Get("/en-casa", recepcion, reservaHandler.EnCasa)
	reservas.Get("/facturables", recepcion, reservaHandler.Facturables)
	reservas.Get("/", recepcion, reservaHandler.List)
	reservas.Post("/", autenticado, reservaHandler.Create)
	reservas.Get("/:id", autenticado, reservaHandler.Get)
	reservas.Patch("/:id/estado", autenticado, reservaHandler.Transicion)
	reservas.Delete("/:id", admin, reservaHandler.Delete)
	reservas.Post("/:id/servicios", personal, lineaHandler.Create)

	lineas := api.Group("/servicios-reserva")
	lineas.Get("/", personal, lineaHandler.List)
	lineas.Get("/:id", personal, lineaHandler.Get)
	lineas.Put("/:id", personal, lineaHandler.Update)
	lineas.Delete("/:id", personal, lineaHandler.Delete)

	facturas := api.Group("/facturas")
	facturas.Post("/", recepcion, facturaHandler.Emitir)
	facturas.Get("/", recepcion, facturaHandler.List)
	facturas.Get("/:id", recepcion, facturaHandler.Get)

	servicios := api.Group("/servicios")
	servicios.Get("/", servicioHandler.List)
	servicios.Get("/:id", servicioHandler.Get)
	servicios.Post("/", admin, servicioHandler.Create)
	servicios.Put("/:id", admin, servicioHandler.Update)
	servicios.Delete("/:id", admin, servicioHandler.Delete)

	clientes := api.Group("/clientes")
	clientes.Get("/", recepcion, clienteHandler.List)
	clientes.Get("/:id", autenticado, clienteHandler.Get)
	clientes.Post("/", recepcion, clienteHandler.Create)
	clientes.Put("/:id", recepcion, clienteHandler.Update)
	clientes.Delete("/:id", admin, clienteHandler.Delete)

	empleados := api.Group("/empleados")
	empleados.Get("/", admin, empleadoHandler.List)
	empleados.Get("/:id", admin, empleadoHandler.Get)
	empleados.Post("/", admin, empleadoHandler.Create)
	empleados.Put("/:id", admin, empleadoHandler.Update)
	empleados.Delete("/:id", admin, empleadoHandler.Delete)

	cliente := handlers.RequireRoles(domain.RolCliente)
	mi := api.Group("/mi", cliente)
	mi.Get("/reservas", reservaHandler.MisReservas)
	mi.Get("/consumos", lineaHandler.MisConsumos)

	api.Get("/dashboard", admin, reporteHandler.Dashboard)

	log.Printf("Servidor escuchando en :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
