package registrations

import "context"

type Repository interface {
	// Create persiste la submission y devuelve la fila con id y created_at generados.
	Create(ctx context.Context, s Submission) (Registration, error)
}
