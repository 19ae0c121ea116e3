package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	appsim "casino-sim/internal/app/simulation"
	apptable "casino-sim/internal/app/table"
	"casino-sim/internal/config"
	"casino-sim/internal/randsrc"
	"casino-sim/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.AppConfig, src randsrc.Source) *chi.Mux {
	simSvc := appsim.NewService(st, cfg.Baccarat, cfg.Server.Locale, src)
	tableSvc := apptable.NewService(st, cfg.Poker, cfg.Server.Locale, src)

	baccaratHandlers := NewBaccaratHandlers(simSvc)
	pokerHandlers := NewPokerHandlers(tableSvc, cfg.Poker)
	adminHandlers := NewAdminHandlers(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(CORSMiddleware(cfg.Server.CORSAllowedOrigins))

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Get("/baccarat/strategies", baccaratHandlers.Strategies())
		r.Post("/baccarat/simulations", baccaratHandlers.Simulate())
		r.Get("/baccarat/simulations/{run_id}", baccaratHandlers.GetRun())
		r.Get("/baccarat/simulations/{run_id}/export", baccaratHandlers.Export())
		r.Post("/baccarat/batches", baccaratHandlers.Batch())

		r.Post("/poker/tables", pokerHandlers.Create())
		r.Get("/poker/tables/{table_id}", pokerHandlers.Get())
		r.Put("/poker/tables/{table_id}/chips", pokerHandlers.SetChips())
		r.Put("/poker/tables/{table_id}/ante", pokerHandlers.SetAnte())
		r.Post("/poker/tables/{table_id}/deal", pokerHandlers.Deal())
		r.Post("/poker/tables/{table_id}/fold", pokerHandlers.Fold())
		r.Post("/poker/tables/{table_id}/play", pokerHandlers.Play())
		r.Post("/poker/tables/{table_id}/next", pokerHandlers.Next())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminAPIKey))
			r.Get("/admin/stats", adminHandlers.Stats())
			r.Post("/admin/sweep", adminHandlers.Sweep())

			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})

	staticDir := cfg.Server.StaticDir
	if info, err := os.Stat(staticDir); staticDir != "" && err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	} else {
		log.Warn().Str("path", staticDir).Msg("static directory not found; skipping catch-all static route")
	}
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
