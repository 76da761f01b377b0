package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/config"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/infrastructure/database"
	"github.com/lalavale064/gestion-hotelera/internal/infrastructure/repository"
	"github.com/lalavale064/gestion-hotelera/internal/seed"
)

func main() {
	var (
		semilla      = flag.Int64("semilla", 1, "Semilla del generador")
		habitaciones = flag.Int("habitaciones", 12, "Cantidad de habitaciones")
		clientes     = flag.Int("clientes", 10, "Cantidad de clientes")
		reservas     = flag.Int("reservas", 40, "Cantidad de reservas")
		dias         = flag.Int("dias", 60, "Días de la ventana de reservas")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := database.Migrate(cfg.GetDBConnString(), cfg.MigrationsDir); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	db, err := database.Connect(cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	clienteRepo := repository.NewClienteRepository(db)
	habitacionRepo := repository.NewHabitacionRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	reservaService := application.NewReservaService(reservaRepo, habitacionRepo, clienteRepo, nil)

	g := seed.NewGenerator(*semilla)
	admin := domain.Actor{Rol: domain.RolAdmin}

	listaClientes := g.GenerarClientes(*clientes)
	for i := range listaClientes {
		if err := clienteRepo.CrearCliente(ctx, &listaClientes[i]); err != nil {
			log.Fatalf("Error al crear cliente: %v", err)
		}
	}
	log.Printf("Creados %d clientes", len(listaClientes))

	listaHabitaciones := g.GenerarHabitaciones(*habitaciones)
	for i := range listaHabitaciones {
		if err := habitacionRepo.CrearHabitacion(ctx, &listaHabitaciones[i]); err != nil {
			log.Fatalf("Error al crear habitación: %v", err)
		}
	}
	log.Printf("Creadas %d habitaciones", len(listaHabitaciones))

	for _, s := range g.GenerarServicios() {
		servicio := s
		if err := servicioRepo.CrearServicio(ctx, &servicio); err != nil {
			log.Fatalf("Error al crear servicio: %v", err)
		}
	}
	log.Printf("Creado el catálogo de servicios")

	// Cuentas de acceso de demostración.
	cuentas := []struct {
		email, password string
		rol             domain.Rol
		clienteID       *int
	}{
		{"admin@hotel.test", "admin123", domain.RolAdmin, nil},
		{"recepcion@hotel.test", "recepcion123", domain.RolRecepcion, nil},
		{"spa@hotel.test", "spa123", domain.RolSpa, nil},
		{"cliente@hotel.test", "cliente123", domain.RolCliente, &listaClientes[0].ID},
	}
	for _, cuenta := range cuentas {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO users (email, password_hash, role, client_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING`,
			cuenta.email, application.HashPassword(cuenta.password), cuenta.rol, cuenta.clienteID,
		); err != nil {
			log.Fatalf("Error al crear cuenta %s: %v", cuenta.email, err)
		}
	}
	log.Printf("Creadas %d cuentas de acceso", len(cuentas))

	desde := time.Now().UTC().Truncate(24 * time.Hour)
	creadas := 0
	for _, r := range g.GenerarReservas(*reservas, listaHabitaciones, listaClientes, desde, *dias) {
		reserva := r
		if err := reservaService.CrearReserva(ctx, admin, &reserva); err != nil {
			log.Printf("Reserva omitida: %v", err)
			continue
		}
		creadas++
	}
	log.Printf("Creadas %d reservas", creadas)
}
