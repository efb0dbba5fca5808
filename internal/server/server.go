package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	adminapp "github.com/rewax-co/survey-services/api/internal/admin/application"
	"github.com/rewax-co/survey-services/api/internal/auth"
	"github.com/rewax-co/survey-services/api/internal/config"
	mongodoc "github.com/rewax-co/survey-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/rewax-co/survey-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/rewax-co/survey-services/api/internal/interfaces/http/common"
	publichttp "github.com/rewax-co/survey-services/api/internal/interfaces/http/public"
	publicapp "github.com/rewax-co/survey-services/api/internal/public/application"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server gestiona el ciclo de vida HTTP e inyecta dependencias a los
// handlers público y administrativo; es la raíz de composición del servicio.
type Server struct {
	logger               *log.Logger
	client               *mongo.Client
	database             *mongo.Database
	tokens               *auth.Service
	surveyCommandService publicapp.SurveyCommandService
	adminSurveyService   adminapp.SurveyService
	adminAuthService     adminapp.AuthService
	location             *time.Location
	stores               []string
	addr                 string
	allowedOrigins       []string
}

// Run arranca el servidor HTTP y arma rutas y middlewares. Aquí sólo vive
// inicialización de infraestructura, nunca lógica de dominio.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger,
		SurveyCommands: s.surveyCommandService,
		Stores:         s.stores,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:        s.logger,
		AuthService:   s.adminAuthService,
		SurveyService: s.adminSurveyService,
	})
	router.Route("/admin", adminHandler.Register(s.authMiddleware))

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("servidor HTTP escuchando en http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS añade cabeceras CORS según la lista de orígenes permitidos.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler verifica la conexión a MongoDB para los chequeos de
// monitoreo; reporta estado de infraestructura, no de dominio.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware valida el JWT del encabezado Authorization y deja el
// principal autenticado en el contexto de la petición.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "falta el encabezado Authorization"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "indica un token Bearer"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "el token de acceso está vacío"})
			return
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := commonhttp.AuthenticatedUser{
			ID:      claims.Subject,
			Email:   claims.Email,
			Store:   claims.Store,
			Manager: claims.Manager,
		}
		if claims.IssuedAt != nil {
			user.IssuedAt = claims.IssuedAt.Time
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeJSON centraliza la escritura de respuestas JSON del servidor.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("fallo al codificar JSON: %v", err)
	}
}

// shutdown desconecta el cliente de MongoDB con timeout al apagar.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("error al desconectar MongoDB: %v", err)
	}
}

// waitForShutdown vigila la terminación de ListenAndServe y las señales del
// sistema para lograr un apagado ordenado.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("el servidor terminó con error: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("señal %s recibida, iniciando apagado", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error al detener el servidor: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New recibe la configuración y el cliente Mongo y arma los servicios de
// aplicación y handlers; es el punto de resolución de dependencias.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("COT", -5*60*60)
		cfg.ServerLog.Printf("no se pudo cargar la zona horaria %s: %v, usando COT", cfg.Timezone, err)
	}

	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		location:       loc,
		stores:         append([]string(nil), cfg.Stores...),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	srv.tokens = auth.New(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.SessionTTL, cfg.RememberTTL)

	surveyRepo := mongodoc.NewSurveyRepository(srv.database, cfg.SurveyCollection)
	userRepo := mongodoc.NewUserRepository(srv.database, cfg.UserCollection)

	srv.surveyCommandService = publicapp.NewSurveyCommandService(surveyRepo, cfg.Stores)
	srv.adminSurveyService = adminapp.NewSurveyService(surveyRepo, loc)
	srv.adminAuthService = adminapp.NewAuthService(userRepo, srv.tokens, cfg.RecentAuthWindow)

	return srv
}
