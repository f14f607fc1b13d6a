package postgres

import (
	"context"
	"strings"

	"registration-form/internal/domain/registrations"
)

// RegistrationsRepo abre conexión y transacción por cada Create.
// No hay estado compartido entre requests; la base es el único recurso común.
type RegistrationsRepo struct {
	dsn string
}

func NewRegistrationsRepo(dsn string) *RegistrationsRepo {
	return &RegistrationsRepo{dsn: strings.TrimSpace(dsn)}
}

func (r *RegistrationsRepo) Create(ctx context.Context, s registrations.Submission) (reg registrations.Registration, err error) {
	conn, err := Connect(ctx, r.dsn)
	if err != nil {
		return registrations.Registration{}, storeErr("connect", err)
	}
	defer func() {
		// ctx puede estar cancelado; el cierre usa su propio contexto.
		_ = conn.Close(context.WithoutCancel(ctx))
	}()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return registrations.Registration{}, storeErr("begin", err)
	}
	// Rollback después de Commit es no-op.
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if _, err := tx.Exec(ctx, ensureSchemaSQL); err != nil {
		return registrations.Registration{}, storeErr("ensure schema", err)
	}

	reg = registrations.Registration{Submission: s}
	if err := tx.QueryRow(ctx, insertRegistrationSQL,
		s.Name,
		s.FamilyName,
		s.CallPhone,
		s.Email,
		s.MomName,
		s.MomFamilyName,
		s.FirstPet,
	).Scan(&reg.ID, &reg.CreatedAt); err != nil {
		return registrations.Registration{}, storeErr("insert", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return registrations.Registration{}, storeErr("commit", err)
	}
	return reg, nil
}
