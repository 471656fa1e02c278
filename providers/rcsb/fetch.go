package rcsb

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

// Fetcher lädt experimentell bestimmte Strukturdateien vom RCSB-Dateiserver.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen RCSB-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// FetchStructure lädt die PDB-Datei für eine PDB-ID.
func (f *Fetcher) FetchStructure(pdbID string) (*models.Structure, error) {
	fileURL := fmt.Sprintf("%s/%s.pdb", f.Config.RCSBDownloadURL, pdbID)
	log := f.Logger.With(zap.String("pdb_id", pdbID), zap.String("url", fileURL))
	log.Info("Lade PDB-Struktur herunter.")

	resp, err := httpClient.Get(fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("RCSB hat nicht-200-Status zurückgegeben", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("rcsb download failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &models.Structure{
		Source: models.StructureSourcePDB,
		ID:     pdbID,
		URL:    fileURL,
		Data:   string(data),
	}, nil
}
