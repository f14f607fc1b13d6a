package postgres

// ensureSchemaSQL es idempotente; se ejecuta en cada registro.
const ensureSchemaSQL = `
	CREATE TABLE IF NOT EXISTS registrations (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		familyname TEXT NOT NULL,
		callphone TEXT NOT NULL,
		email TEXT NOT NULL,
		mom_name TEXT NOT NULL,
		mom_family_name TEXT NOT NULL,
		first_pet TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// insertRegistrationSQL: siempre parámetros, nunca concatenar input del usuario.
const insertRegistrationSQL = `
	INSERT INTO registrations (
		name, familyname, callphone, email,
		mom_name, mom_family_name, first_pet
	) VALUES ($1,$2,$3,$4,$5,$6,$7)
	RETURNING id, created_at
`
