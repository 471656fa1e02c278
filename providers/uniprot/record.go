package uniprot

import (
	"fmt"
	"strconv"
	"strings"

	"protein-hand/models"
)

// Zeilen-Präfixe der erkannten Feldtypen im UniProt-Flat-Text.
const (
	prefixID          = "ID"
	prefixSQ          = "SQ"
	prefixFunction    = "DE   RecName: Full="
	prefixStructure   = "DR   SUPFAM"
	prefixModRes      = "FT   MOD_RES"
	prefixSubcellular = "CC   -!- SUBCELLULAR LOCATION:"
	prefixPathway     = "DR   Reactome"
	prefixDisease     = "DR   MIM"
	prefixPDB         = "DR   PDB"
	prefixAlphaFold   = "DR   AlphaFoldDB"
)

// nameFallback wird gesetzt, wenn die ID-Zeile keinen Namensteil trägt.
const nameFallback = "Not available"

// ParseError beschreibt eine Zeile, die einem bekannten Präfix entspricht,
// aber nicht die erwartete Form hat. Der Fehler bricht die Extraktion des
// gesamten Eintrags ab; es gibt keine Teilergebnisse.
type ParseError struct {
	Field  string // betroffenes Record-Feld, z.B. "Structure"
	LineNo int    // 1-basierte Zeilennummer im Eintrag
	Line   string // die fehlerhafte Zeile
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zeile %d: feld %q: unerwartetes format: %q", e.LineNo, e.Field, e.Line)
}

// ParseRecord extrahiert die benannten Felder aus dem Flat-Text eines
// UniProt-Eintrags. Ein einzelner Vorwärtsdurchlauf über die Zeilen; nur
// für das Molekulargewicht wird eine Zeile vorausgeschaut. Pro Zeile kann
// höchstens ein Präfix greifen, die Reihenfolge der Fälle ist fest.
// Wiederholte Zeilen desselben Typs überschreiben frühere Werte.
func ParseRecord(accession, body string) (*models.ProteinRecord, error) {
	record := &models.ProteinRecord{ID: accession}

	// Ein abschließender Zeilenumbruch erzeugt keine leere Schlusszeile;
	// eine SQ-Zeile am Dateiende darf sie nicht als Lookahead sehen.
	body = strings.TrimSuffix(body, "\n")
	body = strings.TrimSuffix(body, "\r")
	lines := strings.Split(body, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, prefixID):
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				record.Name = strings.Join(fields[1:], " ")
			} else {
				record.Name = nameFallback
			}

		case strings.HasPrefix(line, prefixSQ) && i+1 < len(lines):
			// Das Gewicht steht als letztes Token der Folgezeile. Eine
			// SQ-Zeile als allerletzte Zeile liefert kein Gewicht.
			fields := strings.Fields(lines[i+1])
			if len(fields) == 0 {
				return nil, &ParseError{Field: "Weight", LineNo: i + 2, Line: lines[i+1]}
			}
			record.Weight = fields[len(fields)-1]

		case strings.HasPrefix(line, prefixFunction):
			rest := line[len(prefixFunction):]
			end := strings.Index(rest, ";")
			if end < 0 {
				return nil, &ParseError{Field: "Function", LineNo: i + 1, Line: line}
			}
			record.Function = rest[:end]

		case strings.HasPrefix(line, prefixStructure):
			value, ok := secondField(line)
			if !ok {
				return nil, &ParseError{Field: "Structure", LineNo: i + 1, Line: line}
			}
			record.Structure = value

		case strings.HasPrefix(line, prefixModRes):
			fields := strings.Fields(line)
			if len(fields) >= 3 {
				length, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, &ParseError{Field: "Length", LineNo: i + 1, Line: line}
				}
				record.Length = &length
			}
			if parts := strings.Split(line, ";"); len(parts) > 1 {
				ptms := make([]string, 0, len(parts)-1)
				for _, p := range parts[1:] {
					ptms = append(ptms, strings.TrimSpace(p))
				}
				record.PTMs = ptms
			}

		case strings.HasPrefix(line, prefixSubcellular):
			record.SubcellularLocation = strings.TrimSpace(line[len(prefixSubcellular):])

		case strings.HasPrefix(line, prefixPathway):
			value, ok := secondField(line)
			if !ok {
				return nil, &ParseError{Field: "Pathway", LineNo: i + 1, Line: line}
			}
			record.Pathway = value

		case strings.HasPrefix(line, prefixDisease):
			value, ok := secondField(line)
			if !ok {
				return nil, &ParseError{Field: "Disease", LineNo: i + 1, Line: line}
			}
			record.Disease = value

		case strings.HasPrefix(line, prefixPDB):
			value, ok := secondField(line)
			if !ok {
				return nil, &ParseError{Field: "PDB_ID", LineNo: i + 1, Line: line}
			}
			record.PDBID = strings.TrimSpace(value)

		case strings.HasPrefix(line, prefixAlphaFold):
			value, ok := secondField(line)
			if !ok {
				return nil, &ParseError{Field: "AlphaFold_ID", LineNo: i + 1, Line: line}
			}
			record.AlphaFoldID = strings.TrimSpace(value)
		}
	}

	return record, nil
}

// secondField liefert das zweite ";"-getrennte Feld einer Zeile, unverändert
// mit umgebendem Whitespace.
func secondField(line string) (string, bool) {
	parts := strings.Split(line, ";")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}
