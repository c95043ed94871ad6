package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petName string) {
	r.Get("/categories", listCategoriesHandler(petName))

	r.Route("/categories/{category}/records", func(cr chi.Router) {
		cr.Get("/", listRecordsHandler(svc))
		cr.Post("/", createRecordHandler(svc))
		cr.Delete("/", clearAllHandler(svc))

		cr.Get("/{recordID}", beginEditHandler(svc))
		cr.Put("/{recordID}", updateRecordHandler(svc))
		cr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

// submitRecordRequest es el cuerpo de un alta o edición de registro.
// Qué campos son obligatorios depende de la categoría.
type submitRecordRequest struct {
	Name string `json:"name"`
	// Date es la fecha de aplicación, formato YYYY-MM-DD.
	Date string `json:"date"`
	// Duration es el intervalo hasta la próxima aplicación
	// (días para medications/dewormings, meses para vaccines).
	Duration int     `json:"duration"`
	Location string  `json:"location" enums:"Casa,Veterinaria,Petco"`
	Type     string  `json:"type"`
	Weight   float64 `json:"weight"`
}

// recordResponse representa un registro de la cartilla devuelto por la API.
type recordResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name,omitempty"`
	Date     string  `json:"date"`
	Duration int     `json:"duration,omitempty"`
	NextDate string  `json:"next_date,omitempty"`
	Location string  `json:"location,omitempty"`
	Type     string  `json:"type,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

// submitResponse acompaña el registro guardado con el mensaje de feedback
// que la UI muestra tras guardar.
type submitResponse struct {
	Message string         `json:"message"`
	Record  recordResponse `json:"record"`
}

// categoryResponse describe una cartilla disponible (pantalla home).
type categoryResponse struct {
	Category     string `json:"category"`
	IntervalUnit string `json:"interval_unit"`
	HasReminder  bool   `json:"has_reminder"`
}

type categoriesResponse struct {
	PetName    string             `json:"pet_name"`
	Categories []categoryResponse `json:"categories"`
}

// listCategoriesHandler godoc
// @Summary Listar cartillas disponibles
// @Description Devuelve las categorías de la cartilla (medicamentos, baños, desparasitaciones, vacunas) y el nombre de la mascota. Equivale a la pantalla de inicio.
// @Tags categories
// @Produce json
// @Success 200 {object} categoriesResponse
// @Router /categories [get]
func listCategoriesHandler(petName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		descs := Categories()
		out := make([]categoryResponse, 0, len(descs))
		for _, d := range descs {
			out = append(out, categoryResponse{
				Category:     string(d.Category),
				IntervalUnit: string(d.Unit),
				HasReminder:  d.HasReminder(),
			})
		}
		writeJSON(w, http.StatusOK, categoriesResponse{PetName: petName, Categories: out})
	}
}

// listRecordsHandler godoc
// @Summary Listar registros de una cartilla
// @Description Devuelve la cartilla completa de la categoría, en orden de inserción.
// @Tags records
// @Produce json
// @Param category path string true "Categoría" Enums(medications,baths,dewormings,vaccines)
// @Success 200 {array} recordResponse
// @Failure 404 {string} string "unknown category"
// @Router /categories/{category}/records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Category(chi.URLParam(r, "category"))

		ledger, err := svc.List(r.Context(), c)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]recordResponse, 0, len(ledger))
		for _, rec := range ledger {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createRecordHandler godoc
// @Summary Registrar en la cartilla
// @Description Crea un registro nuevo (dosis de medicamento, baño, desparasitación o vacuna). Calcula la próxima fecha y programa el recordatorio cuando la categoría tiene recurrencia.
// @Tags records
// @Accept json
// @Produce json
// @Param category path string true "Categoría" Enums(medications,baths,dewormings,vaccines)
// @Param payload body submitRecordRequest true "Campos del formulario; date en formato YYYY-MM-DD"
// @Success 201 {object} submitResponse
// @Failure 400 {string} string "invalid json / campos requeridos faltantes"
// @Failure 404 {string} string "unknown category"
// @Failure 500 {string} string "storage error"
// @Router /categories/{category}/records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Category(chi.URLParam(r, "category"))

		in, err := decodeInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Submit(r.Context(), c, Idle(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, submitResponse{
			Message: "Registro guardado",
			Record:  toRecordResponse(rec),
		})
	}
}

// beginEditHandler godoc
// @Summary Cargar un registro para edición
// @Description Devuelve los campos del registro para poblar el formulario de edición. No muta el almacén.
// @Tags records
// @Produce json
// @Param category path string true "Categoría" Enums(medications,baths,dewormings,vaccines)
// @Param recordID path int true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 404 {string} string "record not found"
// @Router /categories/{category}/records/{recordID} [get]
func beginEditHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Category(chi.URLParam(r, "category"))
		id, err := parseRecordID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, _, err := svc.BeginEdit(r.Context(), c, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar un registro
// @Description Reemplaza los campos del registro conservando su id, recalcula la próxima fecha y rearma el recordatorio (el anterior se retira).
// @Tags records
// @Accept json
// @Produce json
// @Param category path string true "Categoría" Enums(medications,baths,dewormings,vaccines)
// @Param recordID path int true "ID del registro"
// @Param payload body submitRecordRequest true "Campos del formulario; date en formato YYYY-MM-DD"
// @Success 200 {object} submitResponse
// @Failure 400 {string} string "invalid json / campos requeridos faltantes"
// @Failure 404 {string} string "record not found"
// @Failure 500 {string} string "storage error"
// @Router /categories/{category}/records/{recordID} [put]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Category(chi.URLParam(r, "category"))
		id, err := parseRecordID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in, err := decodeInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Submit(r.Context(), c, Editing(id), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, submitResponse{
			Message: "Registro actualizado",
			Record:  toRecordResponse(rec),
		})
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar un registro
// @Description Quita el registro de la cartilla y retira su recordatorio. Un id ausente es un no-op.
// @Tags records
// @Param category path string true "Categoría" Enums(medications,baths,dewormings,vaccines)
// @Param recordID path int true "ID del registro"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "unknown category"
// @Failure 500 {string} string "storage error"
// @Router /categories/{category}/records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Category(chi.URLParam(r, "category"))
		id, err := parseRecordID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), c, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// clearAllHandler godoc
// @Summary Vaciar una cartilla completa
// @Description Borra todos los registros de la categoría. Requiere confirm=true; sin confirmación la cartilla queda intacta (gate de confirmación en dos pasos).
// @Tags records
// @Produce json
// @Param category path string true "Categoría" Enums(medications,baths,dewormings,vaccines)
// @Param confirm query bool true "Debe ser true para confirmar el borrado"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "unknown category"
// @Failure 409 {string} string "confirmation required"
// @Failure 500 {string} string "storage error"
// @Router /categories/{category}/records [delete]
func clearAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Category(chi.URLParam(r, "category"))
		confirmed := r.URL.Query().Get("confirm") == "true"

		if err := svc.ClearAll(r.Context(), c, confirmed); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Cartilla vaciada"})
	}
}

func decodeInput(r *http.Request) (Input, error) {
	var req submitRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Input{}, errors.New("invalid json")
	}

	applied, err := ParseDate(req.Date)
	if err != nil {
		return Input{}, err
	}

	return Input{
		Name:          req.Name,
		AppliedDate:   applied,
		IntervalValue: req.Duration,
		Location:      BathLocation(req.Location),
		Type:          req.Type,
		Weight:        req.Weight,
	}, nil
}

func parseRecordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		return 0, errors.New("record id must be an integer")
	}
	return id, nil
}

func toRecordResponse(rec Record) recordResponse {
	out := recordResponse{
		ID:       rec.ID,
		Name:     rec.Name,
		Date:     rec.AppliedDate.String(),
		Duration: rec.IntervalValue,
		Location: string(rec.Location),
		Type:     rec.Type,
		Weight:   rec.Weight,
	}
	if rec.NextDate != nil {
		out.NextDate = rec.NextDate.String()
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnknownCategory), errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrConfirmRequired):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrStorage):
		http.Error(w, "storage error", http.StatusInternalServerError)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
