package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"4242"`

	// Optionaler API-Key für die JSON-Endpunkte. Leer = Auth deaktiviert.
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	UniProtBaseURL string `envconfig:"UNIPROT_BASE_URL" default:"https://www.uniprot.org/uniprot"`

	// STRING-DB für Protein-Protein-Interaktionen
	StringBaseURL string `envconfig:"STRING_BASE_URL" default:"https://string-db.org"`
	StringSpecies int    `envconfig:"STRING_SPECIES" default:"9606"`

	// Struktur-Quellen (PDB bevorzugt, AlphaFold als Fallback)
	RCSBDownloadURL  string `envconfig:"RCSB_DOWNLOAD_URL" default:"https://files.rcsb.org/download"`
	AlphaFoldFileURL string `envconfig:"ALPHAFOLD_FILES_URL" default:"https://alphafold.ebi.ac.uk/files"`

	// Netzwerk-Provider: "stringdb" (echte Daten) oder "placeholder" (Demo-Graph)
	NetworkProvider string `envconfig:"NETWORK_PROVIDER" default:"stringdb"`
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
