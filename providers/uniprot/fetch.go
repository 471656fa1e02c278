package uniprot

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"protein-hand/config"
	"protein-hand/models"

	"go.uber.org/zap"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// Fetcher kapselt den Zugriff auf die UniProt-TXT-API.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen UniProt-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// FetchRecord lädt den Flat-Text-Eintrag für eine Accession herunter und
// extrahiert die Felder. Ein nicht-200-Status gilt als ungültige Accession.
func (f *Fetcher) FetchRecord(accession string) (*models.ProteinRecord, error) {
	url := fmt.Sprintf("%s/%s.txt", f.Config.UniProtBaseURL, accession)
	log := f.Logger.With(zap.String("accession", accession), zap.String("url", url))
	log.Info("Rufe UniProt-Eintrag ab.")

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("UniProt hat nicht-200-Status zurückgegeben", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("uniprot request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	record, err := ParseRecord(accession, string(body))
	if err != nil {
		return nil, fmt.Errorf("uniprot-eintrag %s extrahieren: %w", accession, err)
	}

	log.Debug("UniProt-Eintrag erfolgreich extrahiert.")
	return record, nil
}
