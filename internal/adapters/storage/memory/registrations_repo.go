package memory

import (
	"context"
	"sync"
	"time"

	"registration-form/internal/domain/registrations"
)

// RegistrationsRepo imita la tabla registrations: ids SERIAL crecientes,
// created_at puesto al insertar, filas inmutables.
type RegistrationsRepo struct {
	mu     sync.Mutex
	lastID int64
	rows   []registrations.Registration
	now    func() time.Time
}

func NewRegistrationsRepo() *RegistrationsRepo {
	return &RegistrationsRepo{now: time.Now}
}

func (r *RegistrationsRepo) Create(ctx context.Context, s registrations.Submission) (registrations.Registration, error) {
	if err := ctx.Err(); err != nil {
		return registrations.Registration{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	reg := registrations.Registration{
		ID:         r.lastID,
		Submission: s,
		CreatedAt:  r.now(),
	}
	r.rows = append(r.rows, reg)
	return reg, nil
}

// List devuelve una copia en orden de inserción.
func (r *RegistrationsRepo) List() []registrations.Registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]registrations.Registration, len(r.rows))
	copy(out, r.rows)
	return out
}
