package models

// ProteinRecord enthält die aus dem UniProt-Flat-Text extrahierten Felder
// für eine einzelne Accession. Nicht gefundene Felder bleiben leer und
// tauchen dank omitempty auch in der JSON-Antwort nicht auf.
type ProteinRecord struct {
	// ID ist die vom Aufrufer übergebene Accession, nicht aus dem Record abgeleitet.
	ID string `json:"id"`

	Name                string   `json:"name,omitempty"`
	Weight              string   `json:"weight,omitempty"`
	Function            string   `json:"function,omitempty"`
	Structure           string   `json:"structure,omitempty"`
	Length              *int     `json:"length,omitempty"`
	PTMs                []string `json:"ptms,omitempty"`
	SubcellularLocation string   `json:"subcellular_location,omitempty"`
	Pathway             string   `json:"pathway,omitempty"`
	Disease             string   `json:"disease,omitempty"`

	// Struktur-Referenzen für den 3D-Viewer
	PDBID       string `json:"pdb_id,omitempty"`
	AlphaFoldID string `json:"alphafold_id,omitempty"`
}

// HasStructure gibt zurück, ob der Record mindestens eine Struktur-Referenz trägt.
func (r *ProteinRecord) HasStructure() bool {
	return r.PDBID != "" || r.AlphaFoldID != ""
}
