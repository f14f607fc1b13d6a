package registrations

import "time"

// Submission son los siete campos que llegan del formulario.
// El tag form es el nombre del campo y también el nombre de la columna.
type Submission struct {
	Name          string `form:"name" validate:"required"`
	FamilyName    string `form:"familyname" validate:"required"`
	CallPhone     string `form:"callphone" validate:"required"`
	Email         string `form:"email" validate:"required"`
	MomName       string `form:"mom_name" validate:"required"`
	MomFamilyName string `form:"mom_family_name" validate:"required"`
	FirstPet      string `form:"first_pet" validate:"required"`
}

// Registration es una fila persistida de registrations. Nunca se actualiza ni borra.
type Registration struct {
	ID int64
	Submission
	CreatedAt time.Time
}

// FieldNames en el orden de declaración; es el orden en que se reportan los faltantes.
var FieldNames = []string{
	"name",
	"familyname",
	"callphone",
	"email",
	"mom_name",
	"mom_family_name",
	"first_pet",
}
