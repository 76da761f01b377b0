package database

import (
	"database/sql"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	// Registran el driver postgres y la fuente de archivos para golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Connect abre el pool de conexiones y verifica conectividad.
func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("error al abrir conexión a la base de datos: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error al verificar conexión a la base de datos: %w", err)
	}
	return db, nil
}

// Migrate aplica las migraciones SQL pendientes desde el directorio dado.
func Migrate(connString, dir string) error {
	m, err := migrate.New("file://"+dir, connString)
	if err != nil {
		return fmt.Errorf("error al preparar migraciones: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error al aplicar migraciones: %w", err)
	}
	return nil
}
