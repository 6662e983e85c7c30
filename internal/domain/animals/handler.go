package animals

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))

		// Hace "hablar" al animal; el sonido sale por stdout del proceso.
		ar.Post("/{animalID}/speak", speakHandler(svc))
	})
}

type createAnimalRequest struct {
	Name             string `json:"name"`
	Species          string `json:"species"` // dog | cat
	WaterConsumption int    `json:"water_consumption"`
}

type animalResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Species          string `json:"species"`
	WaterConsumption int    `json:"water_consumption"`
	SitterID         string `json:"sitter_id,omitempty"`
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.Create(r.Context(), CreateInput{
			Name:             req.Name,
			Species:          req.Species,
			WaterConsumption: req.WaterConsumption,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(snap))
	}
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, snap := range items {
			out = append(out, toAnimalResponse(snap))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(snap))
	}
}

func speakHandler(svc *Service) http.HandlerFunc {
	// 204: la operación no tiene resultado observable por HTTP.
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Speak(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(snap Snapshot) animalResponse {
	return animalResponse{
		ID:               snap.ID,
		Name:             snap.Name,
		Species:          string(snap.Species),
		WaterConsumption: snap.WaterConsumption,
		SitterID:         snap.SitterID,
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
