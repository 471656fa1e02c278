package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"protein-hand/config"
	"protein-hand/providers"
	"protein-hand/providers/placeholder"
	"protein-hand/providers/stringdb"
	"protein-hand/services"

	"go.uber.org/zap"
)

// Einmaliger Lookup-Zyklus von der Kommandozeile: holt Eintrag, Netzwerk und
// Struktur für eine Accession und gibt das Ergebnis als JSON aus.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: lookup <uniprot-accession>")
		os.Exit(2)
	}
	accession := os.Args[1]

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Config load error", zap.Error(err))
	}

	var network providers.NetworkProvider
	switch cfg.NetworkProvider {
	case "stringdb":
		network = stringdb.NewFetcher(cfg, logger)
	case "placeholder":
		network = placeholder.NewFetcher(logger)
	default:
		logger.Fatal("Unknown network provider in config", zap.String("provider_name", cfg.NetworkProvider))
	}

	svc := services.NewLookupService(cfg, logger, network)
	result, err := svc.Lookup(accession)
	if err != nil {
		logger.Fatal("Lookup failed", zap.String("accession", accession), zap.Error(err))
	}

	// Der Dateiinhalt der Struktur ist für die Konsole zu groß; nur die Größe ausgeben.
	if result.Structure != nil {
		result.Structure.Data = fmt.Sprintf("(%d bytes)", len(result.Structure.Data))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("Failed to marshal result", zap.Error(err))
	}
	fmt.Println(string(out))
}
