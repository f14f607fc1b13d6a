package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"registration-form/internal/domain/registrations"
)

// DefaultConnectTimeout aplica si el DSN no trae connect_timeout.
// Queda por debajo del WriteTimeout del server (10s).
const DefaultConnectTimeout = 5 * time.Second

// Connect abre una conexión única (sin pool) para un solo request.
// El caller la cierra siempre con Close.
func Connect(ctx context.Context, dsn string) (*pgx.Conn, error) {
	cfg, err := parseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return pgx.ConnectConfig(ctx, cfg)
}

func parseConfig(dsn string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	return cfg, nil
}

// storeErr etiqueta el error con el paso y el SQLSTATE si es un error del servidor.
func storeErr(op string, err error) error {
	se := &registrations.StoreError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	return se
}
