package placeholder

import (
	"protein-hand/models"

	"go.uber.org/zap"
)

// proteins ist die feste Knotenmenge des Demo-Netzwerks.
var proteins = []string{
	"ProteinA", "ProteinB", "ProteinC", "ProteinD", "ProteinE",
	"ProteinF", "ProteinG", "ProteinH", "ProteinI", "ProteinJ",
}

// Fetcher implementiert das NetworkProvider-Interface mit einem synthetischen
// vollständigen Graphen über einer festen Proteinmenge. Kein Netzwerkzugriff;
// gedacht für Demos ohne Verbindung zu STRING-DB.
type Fetcher struct {
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Placeholder-Fetcher.
func NewFetcher(logger *zap.Logger) *Fetcher {
	return &Fetcher{Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "placeholder"
}

// Interactions liefert alle ungeordneten Paare der festen Proteinmenge.
// Accession und Organismus werden ignoriert.
func (f *Fetcher) Interactions(accession string, species int) ([]models.Interaction, error) {
	var interactions []models.Interaction
	for i := range proteins {
		for j := i + 1; j < len(proteins); j++ {
			interactions = append(interactions, models.Interaction{
				ProteinA: proteins[i],
				ProteinB: proteins[j],
			})
		}
	}
	f.Logger.Debug("Placeholder-Netzwerk erzeugt", zap.Int("interactions", len(interactions)))
	return interactions, nil
}
