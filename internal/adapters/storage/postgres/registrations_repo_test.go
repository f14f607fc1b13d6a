package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registration-form/internal/domain/registrations"
)

func TestRegistrationsRepo_InvalidDSN_ConnectStoreError(t *testing.T) {
	repo := NewRegistrationsRepo("::not-a-dsn::")

	_, err := repo.Create(context.Background(), registrations.Submission{Name: "a"})

	var se *registrations.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "connect", se.Op)
	assert.Empty(t, se.Code)
	assert.NotEmpty(t, registrations.PublicMessage(err))
}

func TestStoreErr_CarriesSQLState(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Message: `null value in column "name"`}

	err := storeErr("insert", pgErr)

	var se *registrations.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "insert", se.Op)
	assert.Equal(t, "23502", se.Code)
	assert.True(t, errors.Is(err, pgErr))
}

func TestParseConfig_DefaultConnectTimeout(t *testing.T) {
	cfg, err := parseConfig("postgres://reg@localhost:5432/reg")
	require.NoError(t, err)
	assert.Equal(t, DefaultConnectTimeout, cfg.ConnectTimeout)

	cfg, err = parseConfig("postgres://reg@localhost:5432/reg?connect_timeout=2")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
}
