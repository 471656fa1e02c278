package models

// Quellen für 3D-Strukturdateien.
const (
	StructureSourcePDB       = "pdb"
	StructureSourceAlphaFold = "alphafold"
)

// Structure ist eine heruntergeladene 3D-Strukturdatei samt Herkunft.
type Structure struct {
	Source string `json:"source"` // "pdb" oder "alphafold"
	ID     string `json:"id"`     // PDB-ID bzw. UniProt-Accession
	URL    string `json:"url"`    // Download-URL der Datei
	Data   string `json:"data"`   // Dateiinhalt im PDB-Format
}
