package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/inventory-service/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const helloMessage = "hello from inventory api"

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases — набор сценариев, которые обслуживает HTTP API.
type UseCases struct {
	Catalog  usecase.CatalogUC
	Order    usecase.OrderUC
	Forecast usecase.ForecastUC
	Report   usecase.ReportUC
}

func (r *Router) Init(uc UseCases, forecastCfg *cfg.ForecastCfg) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(r.requestLogger)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"message": helloMessage})
	})

	registerProductRoutes(r.router, NewProductHandler(uc.Catalog, forecastCfg.AlertThreshold, r.logger))
	registerOrderRoutes(r.router, NewOrderHandler(uc.Order, r.logger))
	registerForecastRoutes(r.router, NewForecastHandler(uc.Forecast, forecastCfg, r.logger))
	registerReportRoutes(r.router, NewReportHandler(uc.Report, r.logger))
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.addProduct)
		pr.Get("/low-stock", prHandler.lowStock)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Patch("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

func registerOrderRoutes(router chi.Router, orHandler *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Get("/", orHandler.listOrders)
		or.Post("/", orHandler.placeOrder)
		or.Get("/{id}/invoice", orHandler.invoice)
	})

	router.Route("/carts", func(cr chi.Router) {
		cr.Post("/", orHandler.openCart)
		cr.Get("/{id}", orHandler.getCart)
		cr.Post("/{id}/lines", orHandler.addCartLine)
		cr.Post("/{id}/checkout", orHandler.checkoutCart)
	})
}

func registerForecastRoutes(router chi.Router, fcHandler *ForecastHandler) {
	router.Route("/ai", func(ai chi.Router) {
		ai.Get("/low-stock-forecast", fcHandler.lowStockForecast)
		ai.Get("/reorder-suggest", fcHandler.reorderSuggest)
	})
}

func registerReportRoutes(router chi.Router, rpHandler *ReportHandler) {
	router.Route("/reports", func(rp chi.Router) {
		rp.Get("/{kind}", rpHandler.getReport)
		rp.Post("/{kind}/export", rpHandler.exportReport)
	})
}

// requestLogger пишет в лог метод, путь, статус и длительность запроса.
func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s %d %s request_id=%s",
			req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}
