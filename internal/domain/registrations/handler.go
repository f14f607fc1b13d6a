package registrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"mime"
	"net/http"

	"registration-form/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxFormBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/register", registerHandler(svc, log))
}

type errorResponse struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error" example:"Missing: email, first_pet"`
}

var confirmationPage = template.Must(template.New("confirmation").Parse(`<!doctype html>
<html lang="uk">
<head><meta charset="utf-8"><title>Успіх</title></head>
<body>
<h2>Дякуємо за реєстрацію!</h2>
<p>Ваш номер заявки: {{ .ID }}</p>
<a href="/">Повернутись</a>
</body>
</html>
`))

// registerHandler godoc
// @Summary      Registrar una persona
// @Description  Recibe los siete campos del formulario, los guarda y devuelve la página de confirmación con el id.
// @Tags         registrations
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name             formData  string  true  "Nombre"
// @Param        familyname       formData  string  true  "Apellido"
// @Param        callphone        formData  string  true  "Teléfono"
// @Param        email            formData  string  true  "Email"
// @Param        mom_name         formData  string  true  "Nombre de la madre"
// @Param        mom_family_name  formData  string  true  "Apellido de la madre"
// @Param        first_pet        formData  string  true  "Primera mascota"
// @Success      200  {string}  string  "confirmación HTML"
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /register [post]
func registerHandler(svc *Service, base logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context(), base)

		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := parseBody(r); err != nil {
			log.Warn("invalid form", logger.Fields{"error": err})
			writeJSON(w, http.StatusBadRequest, errorResponse{OK: false, Error: "invalid form"})
			return
		}

		in, err := FromForm(r.PostForm)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{OK: false, Error: err.Error()})
			return
		}

		reg, err := svc.Register(r.Context(), in)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, errorResponse{OK: false, Error: verr.Error()})
				return
			}

			fields := logger.Fields{"error": err}
			var se *StoreError
			if errors.As(err, &se) {
				fields["op"] = se.Op
				if se.Code != "" {
					fields["sqlstate"] = se.Code
				}
			}
			log.Error("registration failed", fields)

			// El mensaje crudo del driver va al cliente tal cual (ver DESIGN.md).
			writeJSON(w, http.StatusInternalServerError, errorResponse{OK: false, Error: PublicMessage(err)})
			return
		}

		log.Info("registration created", logger.Fields{"registration_id": reg.ID})

		var buf bytes.Buffer
		if err := confirmationPage.Execute(&buf, reg); err != nil {
			log.Error("render confirmation", logger.Fields{"error": err})
			writeJSON(w, http.StatusInternalServerError, errorResponse{OK: false, Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// parseBody llena r.PostForm. urlencoded lo resuelve ParseForm;
// multipart solo se parsea si el Content-Type lo declara.
func parseBody(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "multipart/form-data" {
		return nil
	}
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
