package sitters

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zoo-management/internal/domain/animals"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/sitters", func(sr chi.Router) {
		sr.Post("/", createSitterHandler(svc))
		sr.Get("/", listSittersHandler(svc))
		sr.Get("/{sitterID}", getSitterHandler(svc))

		// Asignar un animal existente al cuidador.
		sr.Post("/{sitterID}/animals", assignAnimalHandler(svc))
	})
}

// createSitterRequest es el cuerpo para registrar un cuidador.
type createSitterRequest struct {
	Name      string   `json:"name"`
	AnimalIDs []string `json:"animal_ids"` // colección inicial; los ya reclamados se saltan
}

// assignAnimalRequest es el cuerpo para asignar un animal a un cuidador.
type assignAnimalRequest struct {
	AnimalID string `json:"animal_id"`
}

// sitterResponse representa un cuidador devuelto por la API. El salario es
// derivado: 750 por animal asignado al momento de la lectura.
type sitterResponse struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Salary  int                    `json:"salary"`
	Animals []sitterAnimalResponse `json:"animals"`
}

type sitterAnimalResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Species          string `json:"species"`
	WaterConsumption int    `json:"water_consumption"`
	SitterID         string `json:"sitter_id,omitempty"`
}

// createSitterHandler godoc
// @Summary Registrar cuidador
// @Description Registra un cuidador nuevo. Los animales de animal_ids que todavía no tengan cuidador quedan reclamados por este; los que ya tengan cuidador se saltan en silencio (la creación no falla por eso). Un id de animal inexistente sí hace fallar la creación completa.
// @Tags sitters
// @Accept json
// @Produce json
// @Param payload body createSitterRequest true "Datos del cuidador"
// @Success 201 {object} sitterResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "animal not found"
// @Router /sitters [post]
func createSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			AnimalIDs: req.AnimalIDs,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrAnimalNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toSitterResponse(snap))
	}
}

// listSittersHandler godoc
// @Summary Listar cuidadores
// @Description Lista todos los cuidadores registrados, con su salario derivado actual.
// @Tags sitters
// @Produce json
// @Success 200 {array} sitterResponse
// @Router /sitters [get]
func listSittersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]sitterResponse, 0, len(items))
		for _, snap := range items {
			out = append(out, toSitterResponse(snap))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getSitterHandler godoc
// @Summary Perfil de cuidador
// @Description Devuelve el cuidador con su colección de animales y el salario derivado al momento de la lectura.
// @Tags sitters
// @Produce json
// @Param sitterID path string true "ID del cuidador"
// @Success 200 {object} sitterResponse
// @Failure 404 {string} string "sitter not found"
// @Router /sitters/{sitterID} [get]
func getSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.GetByID(r.Context(), chi.URLParam(r, "sitterID"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "sitter not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSitterResponse(snap))
	}
}

// assignAnimalHandler godoc
// @Summary Asignar animal a cuidador
// @Description Asigna un animal existente al cuidador. Falla con 409 si el animal ya tiene cuidador, incluso si ese cuidador es el mismo que intenta asignarlo (no hay reasignación).
// @Tags sitters
// @Accept json
// @Produce json
// @Param sitterID path string true "ID del cuidador"
// @Param payload body assignAnimalRequest true "Animal a asignar"
// @Success 200 {object} sitterAnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "sitter not found / animal not found"
// @Failure 409 {string} string "animal has already a sitter"
// @Router /sitters/{sitterID}/animals [post]
func assignAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assignAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.Assign(r.Context(), chi.URLParam(r, "sitterID"), req.AnimalID)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "sitter not found", http.StatusNotFound)
			case ErrAnimalNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			case ErrHasAlreadySitter:
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAssignedAnimalResponse(snap))
	}
}

func toSitterResponse(snap Snapshot) sitterResponse {
	as := make([]sitterAnimalResponse, 0, len(snap.Animals))
	for _, a := range snap.Animals {
		as = append(as, toAssignedAnimalResponse(a))
	}
	return sitterResponse{
		ID:      snap.ID,
		Name:    snap.Name,
		Salary:  snap.Salary,
		Animals: as,
	}
}

func toAssignedAnimalResponse(a animals.Snapshot) sitterAnimalResponse {
	return sitterAnimalResponse{
		ID:               a.ID,
		Name:             a.Name,
		Species:          string(a.Species),
		WaterConsumption: a.WaterConsumption,
		SitterID:         a.SitterID,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/sitters/zoos) para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
