package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/carousel"
	"boutique_back_end/internal/config"
	"boutique_back_end/internal/database"
	"boutique_back_end/internal/handlers"
	"boutique_back_end/internal/routes"
	"boutique_back_end/internal/services"
	"boutique_back_end/internal/store"
)

func main() {
	config.Load()
	if err := run(config.FromEnv()); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run rend la main à main une fois tout fermé, pour que les defer s'exécutent
func run(cfg config.Settings) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET manquant dans .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("échec ouverture du stockage: %w", err)
	}
	defer kv.Close()

	h := &handlers.Handler{
		JWTSecret: []byte(cfg.JWTSecret),
		Hub:       handlers.NewHub(),
	}
	opts := store.Options{
		OrderStatusDelay: cfg.OrderStatusDelay,
		AdminStatusDelay: cfg.AdminStatusDelay,
	}

	if cfg.ElasticURL != "" {
		index, err := services.ConnectElastic(cfg.ElasticURL, cfg.ElasticUser, cfg.ElasticPassword, cfg.ElasticIndex)
		if err != nil {
			log.Println("⚠️ Elasticsearch indisponible, recherche locale uniquement:", err)
		} else {
			opts.Observer = index
			h.Search = index
		}
	}

	if cfg.MinioEndpoint != "" {
		images, err := services.ConnectMinio(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Println("⚠️ MinIO indisponible, upload d'images désactivé:", err)
		} else {
			h.Images = images
		}
	}

	state, err := store.New(ctx, store.NewRepository(kv), opts)
	if err != nil {
		return fmt.Errorf("chargement de la vitrine impossible: %w", err)
	}
	h.State = state
	state.Subscribe(h.Hub.Broadcast)

	if opts.Observer != nil {
		catalog := store.BaseProducts()
		catalog = append(catalog, state.CustomProducts()...)
		opts.Observer.CatalogChanged(catalog)
	}

	slides := carousel.New(cfg.CarouselInterval, cfg.CarouselSlides, state.SetSlide)
	go slides.Run(ctx)

	r := gin.Default()
	routes.RegisterRoutes(r, h, cfg.CORSOrigins)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Println("🚀 Vitrine lancée sur le port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serveur arrêté: %w", err)
	}
	log.Println("👋 Vitrine arrêtée")
	return nil
}
