package registrations

import (
	"context"
	"errors"
)

var (
	ErrNilRepository = errors.New("registrations: nil repository")
)

// StoreError envuelve una falla del storage con el paso que falló
// (connect, begin, ensure schema, insert, commit).
// Err conserva el mensaje crudo del driver, que es lo que ve el cliente.
type StoreError struct {
	Op   string
	Code string // SQLSTATE si el driver lo informa
	Err  error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register valida antes de tocar el repo; una submission inválida nunca llega a la base.
// Cada llamada crea una fila nueva, no hay deduplicación.
func (s *Service) Register(ctx context.Context, in Submission) (Registration, error) {
	if err := in.Validate(); err != nil {
		return Registration{}, err
	}
	if s.repo == nil {
		return Registration{}, ErrNilRepository
	}
	return s.repo.Create(ctx, in)
}

// PublicMessage es el texto que se devuelve en el 500: el mensaje crudo de la causa.
func PublicMessage(err error) string {
	var se *StoreError
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}
