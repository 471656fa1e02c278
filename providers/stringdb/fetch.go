package stringdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"protein-hand/config"
	"protein-hand/models"

	"go.uber.org/zap"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// Fetcher implementiert das NetworkProvider-Interface für STRING-DB.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen STRING-DB-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "stringdb"
}

// Interactions holt die Kantenliste des Interaktionsnetzwerks für eine
// Accession und einen Organismus-Code. Einträge ohne beide Proteinnamen
// werden übersprungen; eine leere Antwort ist kein Fehler.
func (f *Fetcher) Interactions(accession string, species int) ([]models.Interaction, error) {
	networkURL := fmt.Sprintf("%s/api/json/network?identifiers=%s&species=%d",
		f.Config.StringBaseURL, url.QueryEscape(accession), species)
	log := f.Logger.With(zap.String("accession", accession))
	log.Info("Rufe STRING-DB Netzwerk ab.", zap.String("url", networkURL))

	resp, err := httpClient.Get(networkURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("STRING-DB hat nicht-200-Status zurückgegeben", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("string-db request failed: status %d", resp.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}

	var interactions []models.Interaction
	for _, entry := range entries {
		if entry.PreferredNameA == "" || entry.PreferredNameB == "" {
			continue
		}
		interactions = append(interactions, models.Interaction{
			ProteinA: entry.PreferredNameA,
			ProteinB: entry.PreferredNameB,
		})
	}

	log.Info("STRING-DB Abruf abgeschlossen", zap.Int("interactions", len(interactions)))
	return interactions, nil
}
