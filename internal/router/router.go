package router

import (
	"net/http"
	"sync"

	mem "zoo-management/internal/adapters/storage/memory"
	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/sitters"
	"zoo-management/internal/domain/zoos"
	"zoo-management/internal/middleware"
	"zoo-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "zoo-management/docs" // registra el spec swagger generado
)

type Options struct {
	Logger logger.Logger // puede ser nil (sin request log)

	// Opcional: services ya cableados (main los arma antes para poder sembrar
	// datos). Si falta alguno, el router arma el juego completo in-memory.
	Animals *animals.Service
	Sitters *sitters.Service
	Zoos    *zoos.Service
}

// NewServices arma el cableado in-memory completo: los tres repos, el mutex de
// la instalación y los tres services compartiéndolo. Los services de sitters y
// zoos reciben además los repos ajenos para resolver ids a handles vivos.
func NewServices() (*animals.Service, *sitters.Service, *zoos.Service) {
	var mu sync.Mutex

	animalRepo := mem.NewAnimalRepo()
	sitterRepo := mem.NewSitterRepo()
	zooRepo := mem.NewZooRepo()

	animalsSvc := animals.NewService(animalRepo, &mu)
	sittersSvc := sitters.NewService(sitterRepo, animalRepo, &mu)
	zoosSvc := zoos.NewService(zooRepo, animalRepo, sitterRepo, &mu)

	return animalsSvc, sittersSvc, zoosSvc
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// UI de swagger sobre el spec generado por swag
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Services por módulo (o los que ya vienen armados desde main)
	animalsSvc, sittersSvc, zoosSvc := opts.Animals, opts.Sitters, opts.Zoos
	if animalsSvc == nil || sittersSvc == nil || zoosSvc == nil {
		animalsSvc, sittersSvc, zoosSvc = NewServices()
	}

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	sitters.RegisterRoutes(r, sittersSvc)
	zoos.RegisterRoutes(r, zoosSvc)

	return r
}
