package stringdb

// Entry ist ein einzelner Interaktions-Eintrag in der JSON-Antwort der
// STRING-Netzwerk-API. Wir brauchen nur die beiden Proteinnamen, der Rest
// der Felder wird ignoriert.
type Entry struct {
	StringIDA      string  `json:"stringId_A"`
	StringIDB      string  `json:"stringId_B"`
	PreferredNameA string  `json:"preferredName_A"`
	PreferredNameB string  `json:"preferredName_B"`
	Score          float64 `json:"score"`
}
