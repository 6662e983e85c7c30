package zoos

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/zoos", func(zr chi.Router) {
		zr.Post("/", createZooHandler(svc))
		zr.Get("/", listZoosHandler(svc))
		zr.Get("/{zooID}", getZooHandler(svc))

		// Operaciones de presupuesto
		zr.Post("/{zooID}/income", addIncomeHandler(svc))
		zr.Post("/{zooID}/expenses", addExpenseHandler(svc))
		zr.Post("/{zooID}/salaries", paySalariesHandler(svc))

		// Operaciones de agua y poblaciones
		zr.Post("/{zooID}/water", increaseWaterHandler(svc))
		zr.Post("/{zooID}/animals", admitAnimalHandler(svc))
		zr.Post("/{zooID}/sitters", hireSitterHandler(svc))
	})
}

// createZooRequest es el cuerpo para fundar un zoológico.
type createZooRequest struct {
	Name       string   `json:"name"`
	WaterLimit int      `json:"water_limit"`
	Budget     int      `json:"budget"`
	AnimalIDs  []string `json:"animal_ids"` // admitidos iniciales, sin pasar por la regla de agua
	SitterIDs  []string `json:"sitter_ids"` // contratados iniciales, sin pasar por la regla de nómina
}

// amountRequest es el cuerpo común de income/expenses/water.
type amountRequest struct {
	Amount int `json:"amount"`
}

// admitAnimalRequest es el cuerpo para admitir un animal ya registrado.
type admitAnimalRequest struct {
	AnimalID string `json:"animal_id"`
}

// hireSitterRequest es el cuerpo para contratar un cuidador ya registrado.
type hireSitterRequest struct {
	SitterID string `json:"sitter_id"`
}

// zooResponse representa un zoológico devuelto por la API. total_salaries es
// la nómina derivada al momento de la lectura; water_limit es la reserva que
// queda después de todas las admisiones.
type zooResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	WaterLimit    int                 `json:"water_limit"`
	Budget        int                 `json:"budget"`
	TotalSalaries int                 `json:"total_salaries"`
	Animals       []zooAnimalResponse `json:"animals"`
	Sitters       []zooSitterResponse `json:"sitters"`
}

type zooAnimalResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Species          string `json:"species"`
	WaterConsumption int    `json:"water_consumption"`
	SitterID         string `json:"sitter_id,omitempty"`
}

type zooSitterResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Salary int    `json:"salary"`
}

// budgetResponse es la respuesta de las operaciones que devuelven el
// presupuesto nuevo (income, expenses, salaries).
type budgetResponse struct {
	Budget int `json:"budget"`
}

// waterResponse es la respuesta de increaseWater.
type waterResponse struct {
	WaterLimit int `json:"water_limit"`
}

// createZooHandler godoc
// @Summary Fundar zoológico
// @Description Crea un zoológico con presupuesto y límite de agua iniciales. El límite efectivo arranca en water_limit menos el consumo de los animales iniciales; los animales y cuidadores iniciales entran sin pasar por las reglas de admisión ni de contratación.
// @Tags zoos
// @Accept json
// @Produce json
// @Param payload body createZooRequest true "Datos del zoológico"
// @Success 201 {object} zooResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "animal not found / sitter not found"
// @Router /zoos [post]
func createZooHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createZooRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			WaterLimit: req.WaterLimit,
			Budget:     req.Budget,
			AnimalIDs:  req.AnimalIDs,
			SitterIDs:  req.SitterIDs,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrAnimalNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			case ErrSitterNotFound:
				http.Error(w, "sitter not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toZooResponse(snap))
	}
}

// listZoosHandler godoc
// @Summary Listar zoológicos
// @Description Lista todos los zoológicos con su estado actual.
// @Tags zoos
// @Produce json
// @Success 200 {array} zooResponse
// @Router /zoos [get]
func listZoosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]zooResponse, 0, len(items))
		for _, snap := range items {
			out = append(out, toZooResponse(snap))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getZooHandler godoc
// @Summary Estado de zoológico
// @Description Devuelve el zoológico con presupuesto, reserva de agua, nómina derivada y sus dos colecciones.
// @Tags zoos
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Success 200 {object} zooResponse
// @Failure 404 {string} string "zoo not found"
// @Router /zoos/{zooID} [get]
func getZooHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.GetByID(r.Context(), chi.URLParam(r, "zooID"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toZooResponse(snap))
	}
}

// addIncomeHandler godoc
// @Summary Registrar ingreso
// @Description Suma el monto al presupuesto. El monto tiene que ser estrictamente positivo.
// @Tags zoos
// @Accept json
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Param payload body amountRequest true "Monto del ingreso"
// @Success 200 {object} budgetResponse
// @Failure 400 {string} string "invalid json / income must be positive"
// @Failure 404 {string} string "zoo not found"
// @Router /zoos/{zooID}/income [post]
func addIncomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		budget, err := svc.AddIncome(r.Context(), chi.URLParam(r, "zooID"), req.Amount)
		if err != nil {
			switch err {
			case ErrIncomeNotPositive:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, budgetResponse{Budget: budget})
	}
}

// addExpenseHandler godoc
// @Summary Registrar gasto
// @Description Descuenta el monto del presupuesto. Falla con 409 si el presupuesto no alcanza: nunca queda negativo.
// @Tags zoos
// @Accept json
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Param payload body amountRequest true "Monto del gasto"
// @Success 200 {object} budgetResponse
// @Failure 400 {string} string "invalid json / expense must be positive"
// @Failure 404 {string} string "zoo not found"
// @Failure 409 {string} string "not enough budget"
// @Router /zoos/{zooID}/expenses [post]
func addExpenseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		budget, err := svc.AddExpense(r.Context(), chi.URLParam(r, "zooID"), req.Amount)
		if err != nil {
			switch err {
			case ErrExpenseNotPositive:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotEnoughBudget:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, budgetResponse{Budget: budget})
	}
}

// admitAnimalHandler godoc
// @Summary Admitir animal
// @Description Admite un animal ya registrado. La regla de agua exige que la reserva restante después de la admisión todavía cubra el consumo de otro animal igual; si no, 409 y la reserva no cambia.
// @Tags zoos
// @Accept json
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Param payload body admitAnimalRequest true "Animal a admitir"
// @Success 200 {object} zooAnimalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "zoo not found / animal not found"
// @Failure 409 {string} string "not enough water allowance"
// @Router /zoos/{zooID}/animals [post]
func admitAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admitAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.AdmitAnimal(r.Context(), chi.URLParam(r, "zooID"), req.AnimalID)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			case ErrAnimalNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			case ErrNotEnoughWater:
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toZooAnimalResponse(snap))
	}
}

// hireSitterHandler godoc
// @Summary Contratar cuidador
// @Description Contrata un cuidador ya registrado. Falla con 409 si el mismo id ya está contratado o si la nómina resultante excede el presupuesto. La contratación no descuenta nada del presupuesto.
// @Tags zoos
// @Accept json
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Param payload body hireSitterRequest true "Cuidador a contratar"
// @Success 200 {object} zooSitterResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "zoo not found / sitter not found"
// @Failure 409 {string} string "sitter already exists in the zoo / not enough budget"
// @Router /zoos/{zooID}/sitters [post]
func hireSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hireSitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.HireSitter(r.Context(), chi.URLParam(r, "zooID"), req.SitterID)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			case ErrSitterNotFound:
				http.Error(w, "sitter not found", http.StatusNotFound)
			case ErrSitterExists, ErrNotEnoughBudget:
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toZooSitterResponse(snap))
	}
}

// increaseWaterHandler godoc
// @Summary Ampliar reserva de agua
// @Description Suma el monto a la reserva de agua. El monto tiene que ser estrictamente positivo.
// @Tags zoos
// @Accept json
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Param payload body amountRequest true "Monto a sumar"
// @Success 200 {object} waterResponse
// @Failure 400 {string} string "invalid json / water amount must be positive"
// @Failure 404 {string} string "zoo not found"
// @Router /zoos/{zooID}/water [post]
func increaseWaterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		limit, err := svc.IncreaseWater(r.Context(), chi.URLParam(r, "zooID"), req.Amount)
		if err != nil {
			switch err {
			case ErrLimitNotPositive:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, waterResponse{WaterLimit: limit})
	}
}

// paySalariesHandler godoc
// @Summary Pagar salarios
// @Description Paga la nómina completa de una vez. Si la nómina excede el presupuesto, 409 y no se paga nada (no hay pagos parciales).
// @Tags zoos
// @Produce json
// @Param zooID path string true "ID del zoológico"
// @Success 200 {object} budgetResponse
// @Failure 404 {string} string "zoo not found"
// @Failure 409 {string} string "not enough budget"
// @Router /zoos/{zooID}/salaries [post]
func paySalariesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budget, err := svc.PaySalaries(r.Context(), chi.URLParam(r, "zooID"))
		if err != nil {
			switch err {
			case ErrNotEnoughBudget:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrNotFound:
				http.Error(w, "zoo not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, budgetResponse{Budget: budget})
	}
}

func toZooResponse(snap Snapshot) zooResponse {
	as := make([]zooAnimalResponse, 0, len(snap.Animals))
	for _, a := range snap.Animals {
		as = append(as, toZooAnimalResponse(a))
	}
	ss := make([]zooSitterResponse, 0, len(snap.Sitters))
	for _, s := range snap.Sitters {
		ss = append(ss, zooSitterResponse{ID: s.ID, Name: s.Name, Salary: s.Salary})
	}
	return zooResponse{
		ID:            snap.ID,
		Name:          snap.Name,
		WaterLimit:    snap.WaterLimit,
		Budget:        snap.Budget,
		TotalSalaries: snap.TotalSalaries,
		Animals:       as,
		Sitters:       ss,
	}
}

func toZooAnimalResponse(a animals.Snapshot) zooAnimalResponse {
	return zooAnimalResponse{
		ID:               a.ID,
		Name:             a.Name,
		Species:          string(a.Species),
		WaterConsumption: a.WaterConsumption,
		SitterID:         a.SitterID,
	}
}

func toZooSitterResponse(s sitters.Snapshot) zooSitterResponse {
	return zooSitterResponse{ID: s.ID, Name: s.Name, Salary: s.Salary}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/sitters/zoos) para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
