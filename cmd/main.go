package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/aust-acm/austoj/internal/api"
	"github.com/aust-acm/austoj/internal/database"
	"github.com/aust-acm/austoj/internal/service"
	"github.com/aust-acm/austoj/internal/service/auth_service"
	"github.com/aust-acm/austoj/internal/service/contest_service"
	"github.com/aust-acm/austoj/internal/service/judge_service"
	"github.com/aust-acm/austoj/internal/service/problem_service"
	"github.com/aust-acm/austoj/internal/service/solution_service"
	"github.com/aust-acm/austoj/internal/service/user_service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initDatabase() *database.Queries {
	// get the database url
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		panic("dbURL not found")
	}

	// create a conneciton to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	// get the query tool with this connection
	return database.New(pool)
}

func initUserService(db *database.Queries) *user_service.UserService {
	log.Info("initializing user service")
	return &user_service.UserService{
		DB: db,
	}
}

func initAuthService(us *user_service.UserService) *auth_service.AuthService {
	log.Info("initializing auth service")
	return &auth_service.AuthService{
		UserConfig: us,
	}
}

func initProblemService(db *database.Queries) *problem_service.ProblemService {
	log.Info("initializing problem service")
	return &problem_service.ProblemService{
		DB: db,
	}
}

func initContestService(db *database.Queries) *contest_service.ContestService {
	log.Info("initializing contest service")
	cs := contest_service.ContestService{
		DB: db,
	}
	cs.Start()
	return &cs
}

func initJudgeService(
	db *database.Queries,
	ps *problem_service.ProblemService,
	cs *contest_service.ContestService,
) *judge_service.JudgeService {
	log.Info("initializing judge service")
	sink := judge_service.DBJobSink{
		DB:        db,
		JudgerURL: os.Getenv("JUDGER_URL"),
	}
	sink.Start()
	return &judge_service.JudgeService{
		ProblemServiceConfig: ps,
		ContestServiceConfig: cs,
		Sink:                 &sink,
	}
}

func initSolutionService(db *database.Queries) *solution_service.SolutionService {
	log.Info("initializing solution service")
	return &solution_service.SolutionService{
		DB: db,
	}
}

func initApi(db *database.Queries) *api.Api {
	log.Info("initializing api config")
	us := initUserService(db)
	as := initAuthService(us)
	ps := initProblemService(db)
	cs := initContestService(db)
	js := initJudgeService(db, ps, cs)
	ss := initSolutionService(db)
	return &api.Api{
		AuthServiceConfig:     as,
		UserServiceConfig:     us,
		JudgeServiceConfig:    js,
		SolutionServiceConfig: ss,
	}
}

func setup() {
	godotenv.Load()
	service.InitializeServices()
	db := initDatabase()
	apiConfig = initApi(db)
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	setup()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)

	// mount v1 router
	v1router := NewV1Router()
	router.Mount("/v1", v1router)
	log.Info("v1 router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}
