package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"protein-hand/config"
	"protein-hand/providers"
	"protein-hand/providers/placeholder"
	"protein-hand/providers/stringdb"
	"protein-hand/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	lookupCounter     prometheus.Counter
	fetchErrorCounter *prometheus.CounterVec
)

func init() {
	lookupCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "protein_lookups_total",
			Help: "Total number of protein record lookups served.",
		},
	)
	fetchErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_fetch_errors_total",
			Help: "Total number of failed upstream fetches, by source.",
		},
		[]string{"source"},
	)
	prometheus.MustRegister(lookupCounter, fetchErrorCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Netzwerk-Provider
	var network providers.NetworkProvider
	switch cfg.NetworkProvider {
	case "stringdb":
		network = stringdb.NewFetcher(cfg, logging)
	case "placeholder":
		network = placeholder.NewFetcher(logging)
	default:
		logging.Fatal("Unknown network provider in config", zap.String("provider_name", cfg.NetworkProvider))
	}
	logging.Info("Active network provider loaded", zap.String("provider", network.Name()))

	lookupService := services.NewLookupService(cfg, logging, network)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.LoadHTMLGlob("templates/*")

	// Setup Routes
	setupPageRoutes(router, cfg)
	setupProteinRoutes(router, cfg, lookupService)

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// setupPageRoutes liefert die interaktive Oberfläche aus.
func setupPageRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Species": cfg.StringSpecies,
		})
	})
}

// setupProteinRoutes konfiguriert die JSON-Endpunkte für den Abruf-Zyklus.
// Die drei Teil-Abrufe (Eintrag, Netzwerk, Struktur) sind unabhängige Gatter:
// ein Fehler in einem davon betrifft die anderen Endpunkte nicht.
func setupProteinRoutes(router *gin.Engine, cfg *config.Config, lookup *services.LookupService) {
	log := lookup.Logger
	rg := router.Group("/proteins")
	rg.Use(apiKeyAuthMiddleware(cfg))

	// GET - Extrahierter Eintrag für eine Accession
	rg.GET("/:id", func(c *gin.Context) {
		accession := c.Param("id")
		record, err := lookup.Record(accession)
		if err != nil {
			fetchErrorCounter.WithLabelValues("uniprot").Inc()
			log.Error("UniProt lookup failed", zap.String("accession", accession), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid UniProt ID or unable to fetch data.", "detail": err.Error()})
			return
		}
		lookupCounter.Inc()
		c.JSON(http.StatusOK, record)
	})

	// GET - Interaktionsnetzwerk; species optional per Query, Default aus Config
	rg.GET("/:id/network", func(c *gin.Context) {
		accession := c.Param("id")
		species := cfg.StringSpecies
		if q := c.Query("species"); q != "" {
			s, err := strconv.Atoi(q)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid species code"})
				return
			}
			species = s
		}

		network, err := lookup.NetworkFor(accession, species)
		if err != nil {
			fetchErrorCounter.WithLabelValues("network").Inc()
			log.Error("Network lookup failed", zap.String("accession", accession), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch PPI data from STRING DB."})
			return
		}
		c.JSON(http.StatusOK, network)
	})

	// GET - Strukturdatei (PDB bevorzugt, AlphaFold als Fallback)
	rg.GET("/:id/structure", func(c *gin.Context) {
		accession := c.Param("id")
		record, err := lookup.Record(accession)
		if err != nil {
			fetchErrorCounter.WithLabelValues("uniprot").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid UniProt ID or unable to fetch data.", "detail": err.Error()})
			return
		}
		if !record.HasStructure() {
			c.JSON(http.StatusNotFound, gin.H{"warning": "No PDB or AlphaFold structure available for this protein."})
			return
		}

		structure, err := lookup.Structure(record)
		if err != nil {
			fetchErrorCounter.WithLabelValues("structure").Inc()
			log.Error("Structure download failed", zap.String("accession", accession), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch structure file."})
			return
		}
		c.JSON(http.StatusOK, structure)
	})

	// GET - Vollständiger Zyklus in einer Antwort (für die CLI und Integrationen)
	rg.GET("/:id/lookup", func(c *gin.Context) {
		accession := c.Param("id")
		result, err := lookup.Lookup(accession)
		if err != nil {
			fetchErrorCounter.WithLabelValues("uniprot").Inc()
			log.Error("Full lookup failed", zap.String("accession", accession), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid UniProt ID or unable to fetch data.", "detail": err.Error()})
			return
		}
		lookupCounter.Inc()
		c.JSON(http.StatusOK, result)
	})
}
