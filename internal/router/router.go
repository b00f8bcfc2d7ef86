package router

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "pet-health-record/docs"
	jwtauth "pet-health-record/internal/adapters/auth/jwt"
	"pet-health-record/internal/adapters/cache"
	mem "pet-health-record/internal/adapters/storage/memory"
	pg "pet-health-record/internal/adapters/storage/postgres"
	"pet-health-record/internal/domain/pets"
	"pet-health-record/internal/domain/users"
	"pet-health-record/internal/domain/vaccinations"
	"pet-health-record/internal/domain/vaccines"
	"pet-health-record/internal/middleware"
	"pet-health-record/internal/platform/logger"
	"pet-health-record/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	Logger logger.Logger // nil = Discard

	// Opcional: si viene, usa Postgres. Si no, Store (o uno nuevo en memoria).
	DB    *sql.DB
	Store *mem.Store

	// Opcional: blacklist de refresh tokens en Redis. Si no, en memoria.
	Redis *redis.Client

	JWT        jwtauth.Config
	BcryptCost int // 0 = bcrypt.DefaultCost

	// Reloj para el filtro upcoming. nil = time.Now
	Now func() time.Time
}

// Services son los servicios por módulo ya cableados. Los usa NewRouter y
// también cmd/seed, que no levanta HTTP.
type Services struct {
	Users        *users.Service
	Pets         *pets.Service
	Vaccines     *vaccines.Service
	Vaccinations *vaccinations.Service
}

func NewServices(opts Options) (*Services, error) {
	signer, err := jwtauth.NewSigner(opts.JWT)
	if err != nil {
		return nil, fmt.Errorf("router: jwt signer: %w", err)
	}

	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	var (
		userRepo        users.Repository
		petRepo         pets.Repository
		vaccineRepo     vaccines.Repository
		vaccinationRepo vaccinations.Repository
		revoked         auth.RevocationStore
	)

	store := opts.Store
	if opts.DB == nil && store == nil {
		store = mem.NewStore()
	}

	if opts.DB != nil {
		repos := pg.NewRepos(opts.DB)
		userRepo = repos.Users
		petRepo = repos.Pets
		vaccineRepo = repos.Vaccines
		vaccinationRepo = repos.Vaccinations
	} else {
		userRepo = store.Users()
		petRepo = store.Pets()
		vaccineRepo = store.Vaccines()
		vaccinationRepo = store.Vaccinations()
	}

	switch {
	case opts.Redis != nil:
		revoked = cache.NewRevocationStore(opts.Redis)
	case store != nil:
		revoked = store.Revocations()
	default:
		revoked = mem.NewStore().Revocations()
	}

	petsSvc := pets.NewService(petRepo)
	vaccinesSvc := vaccines.NewService(vaccineRepo)

	return &Services{
		Users:        users.NewService(userRepo, signer, revoked, cost),
		Pets:         petsSvc,
		Vaccines:     vaccinesSvc,
		Vaccinations: vaccinations.NewService(vaccinationRepo, petsSvc, vaccinesSvc).WithClock(opts.Now),
	}, nil
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	svcs, err := NewServices(opts)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(svcs.Users))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, svcs.Users)
		pets.RegisterRoutes(api, svcs.Pets)
		vaccines.RegisterRoutes(api, svcs.Vaccines)
		vaccinations.RegisterRoutes(api, svcs.Vaccinations)
	})

	return r, nil
}
