package services

import (
	"fmt"

	"go.uber.org/zap"

	"protein-hand/config"
	"protein-hand/models"
	"protein-hand/providers"
	"protein-hand/providers/alphafold"
	"protein-hand/providers/rcsb"
	"protein-hand/providers/uniprot"
)

// LookupService kümmert sich um die Orchestrierung eines Abruf-Zyklus:
// Eintrag holen und extrahieren, Interaktionsnetzwerk holen, Strukturdatei
// holen. Jeder Zyklus ist zustandslos, es gibt keine Retries und kein Caching.
type LookupService struct {
	Config    *config.Config
	Logger    *zap.Logger
	UniProt   *uniprot.Fetcher
	Network   providers.NetworkProvider
	RCSB      *rcsb.Fetcher
	AlphaFold *alphafold.Fetcher
}

// LookupResult bündelt die Teil-Ergebnisse eines vollständigen Zyklus.
// Netzwerk und Struktur können fehlen, ohne dass der Zyklus scheitert;
// die Warnings erklären dann warum.
type LookupResult struct {
	Record    *models.ProteinRecord `json:"record"`
	Network   *models.Network       `json:"network,omitempty"`
	Structure *models.Structure     `json:"structure,omitempty"`
	Warnings  []string              `json:"warnings,omitempty"`
}

// NewLookupService erstellt eine neue Instanz des LookupService.
func NewLookupService(cfg *config.Config, logger *zap.Logger, network providers.NetworkProvider) *LookupService {
	return &LookupService{
		Config:    cfg,
		Logger:    logger,
		UniProt:   uniprot.NewFetcher(cfg, logger),
		Network:   network,
		RCSB:      rcsb.NewFetcher(cfg, logger),
		AlphaFold: alphafold.NewFetcher(cfg, logger),
	}
}

// Record holt den UniProt-Eintrag für eine Accession und extrahiert die Felder.
func (s *LookupService) Record(accession string) (*models.ProteinRecord, error) {
	return s.UniProt.FetchRecord(accession)
}

// NetworkFor holt die Interaktions-Kantenliste vom konfigurierten Provider
// und bereitet sie als Netzwerk mit eindeutiger Knotenmenge auf.
func (s *LookupService) NetworkFor(accession string, species int) (*models.Network, error) {
	interactions, err := s.Network.Interactions(accession, species)
	if err != nil {
		return nil, fmt.Errorf("netzwerk via %s: %w", s.Network.Name(), err)
	}
	return models.NewNetwork(interactions), nil
}

// Structure wählt die Strukturquelle nach Vorrang (PDB vor AlphaFold) und
// lädt die Datei. Trägt der Record keine Struktur-Referenz, kommt (nil, nil)
// zurück; das ist kein Fehler, sondern eine Warnung auf der Oberfläche.
func (s *LookupService) Structure(record *models.ProteinRecord) (*models.Structure, error) {
	switch {
	case record.PDBID != "":
		return s.RCSB.FetchStructure(record.PDBID)
	case record.AlphaFoldID != "":
		return s.AlphaFold.FetchStructure(record.AlphaFoldID)
	default:
		return nil, nil
	}
}

// Lookup führt den vollständigen Zyklus für eine Accession aus: drei
// sequentielle Abrufe ohne Überlappung. Scheitert der Eintrags-Abruf,
// bricht der Zyklus ab; Netzwerk- und Struktur-Fehler degradieren zu
// Warnungen, da die drei Abrufe unabhängige Gatter sind.
func (s *LookupService) Lookup(accession string) (*LookupResult, error) {
	log := s.Logger.With(zap.String("accession", accession))
	log.Info("Starte Lookup-Zyklus.")

	record, err := s.Record(accession)
	if err != nil {
		return nil, err
	}
	result := &LookupResult{Record: record}

	network, err := s.NetworkFor(accession, s.Config.StringSpecies)
	if err != nil {
		log.Warn("Netzwerk-Abruf fehlgeschlagen", zap.Error(err))
		result.Warnings = append(result.Warnings, "Failed to fetch PPI data from STRING DB.")
	} else {
		result.Network = network
	}

	if !record.HasStructure() {
		result.Warnings = append(result.Warnings, "No PDB or AlphaFold structure available for this protein.")
	} else {
		structure, err := s.Structure(record)
		if err != nil {
			log.Warn("Struktur-Abruf fehlgeschlagen", zap.Error(err))
			result.Warnings = append(result.Warnings, "Unable to fetch structure file.")
		} else {
			result.Structure = structure
		}
	}

	log.Info("Lookup-Zyklus abgeschlossen",
		zap.Bool("network", result.Network != nil),
		zap.Bool("structure", result.Structure != nil))
	return result, nil
}
