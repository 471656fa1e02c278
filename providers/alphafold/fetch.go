package alphafold

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

// Fetcher lädt vorhergesagte Strukturdateien vom AlphaFold-Dateiserver.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen AlphaFold-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// FetchStructure lädt das AlphaFold-Modell (v4, Fragment F1) für eine
// UniProt-Accession.
func (f *Fetcher) FetchStructure(accession string) (*models.Structure, error) {
	fileURL := fmt.Sprintf("%s/AF-%s-F1-model_v4.pdb", f.Config.AlphaFoldFileURL, accession)
	log := f.Logger.With(zap.String("accession", accession), zap.String("url", fileURL))
	log.Info("Lade AlphaFold-Struktur herunter.")

	resp, err := httpClient.Get(fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("AlphaFold hat nicht-200-Status zurückgegeben", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("alphafold download failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &models.Structure{
		Source: models.StructureSourceAlphaFold,
		ID:     accession,
		URL:    fileURL,
		Data:   string(data),
	}, nil
}
