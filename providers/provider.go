package providers

import "protein-hand/models"

// NetworkProvider ist das Interface, das jede Interaktions-Quelle
// (z.B. STRING-DB, Placeholder) implementieren muss.
type NetworkProvider interface {
	// Interactions liefert die Kantenliste bekannter bzw. vorhergesagter
	// Protein-Protein-Interaktionen für eine Accession und einen
	// Organismus-Code (NCBI-Taxon, z.B. 9606 für Mensch).
	Interactions(accession string, species int) ([]models.Interaction, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "stringdb").
	Name() string
}
