package uniprot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRecord enthält genau eine Zeile pro erkanntem Feldtyp.
const sampleRecord = `ID   HBA_HUMAN               Reviewed;         141 AA.
AC   P69905; P01922; Q1HDT5;
DE   RecName: Full=Hemoglobin subunit alpha;
DE   AltName: Full=Alpha-globin;
GN   Name=HBA1;
DR   PDB; 1LFL; X-ray; 2.05 A; A/C=2-142.
DR   AlphaFoldDB; P69905; -.
DR   Reactome; R-HSA-1237044; Erythrocytes take up carbon dioxide and release oxygen.
DR   MIM; 141800; gene.
DR   SUPFAM; SSF46458; Globin-like.
CC   -!- SUBCELLULAR LOCATION: Cytoplasm.
FT   MOD_RES   8   ; Phosphoserine; by CK2
SQ   SEQUENCE   141 AA;  15258 MW;  15E13666573BBBAE CRC64;
     MVLSPADKTN VKAAWGKVGA HAGEYGAEAL ERMFLSFPTT KTYFPHF`

func TestParseRecordAllFields(t *testing.T) {
	record, err := ParseRecord("P69905", sampleRecord)
	require.NoError(t, err)

	assert.Equal(t, "P69905", record.ID)
	assert.Equal(t, "HBA_HUMAN Reviewed; 141 AA.", record.Name)
	assert.Equal(t, "Hemoglobin subunit alpha", record.Function)
	assert.Equal(t, " SSF46458", record.Structure)
	assert.Equal(t, "Cytoplasm.", record.SubcellularLocation)
	assert.Equal(t, " R-HSA-1237044", record.Pathway)
	assert.Equal(t, " 141800", record.Disease)
	assert.Equal(t, "1LFL", record.PDBID)
	assert.Equal(t, "P69905", record.AlphaFoldID)

	require.NotNil(t, record.Length)
	assert.Equal(t, 8, *record.Length)
	assert.Equal(t, []string{"Phosphoserine", "by CK2"}, record.PTMs)

	// Das Gewicht ist das letzte Token der Zeile nach SQ.
	assert.Equal(t, "KTYFPHF", record.Weight)
}

func TestParseRecordNoRecognizedPrefixes(t *testing.T) {
	record, err := ParseRecord("Q00001", "XX   nichts\nYY   bekanntes\n")
	require.NoError(t, err)

	assert.Equal(t, "Q00001", record.ID)
	assert.Empty(t, record.Name)
	assert.Empty(t, record.Weight)
	assert.Empty(t, record.Function)
	assert.Nil(t, record.Length)
	assert.Nil(t, record.PTMs)
	assert.False(t, record.HasStructure())
}

func TestParseRecordName(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"alle Tokens nach dem ersten", "ID   SOME_NAME Reviewed; 141 AA.", "SOME_NAME Reviewed; 141 AA."},
		{"nur ein Token", "ID", "Not available"},
		{"ein Token mit Whitespace", "ID   ", "Not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseRecord("X", tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.Name)
		})
	}
}

func TestParseRecordWeight(t *testing.T) {
	record, err := ParseRecord("X", "SQ   SEQUENCE   61 AA;\n  61 AA;  15126 MW;")
	require.NoError(t, err)
	assert.Equal(t, "MW;", record.Weight)
}

func TestParseRecordWeightSQLastLine(t *testing.T) {
	// SQ als letzte Zeile: kein Lookahead über das Ende hinaus, kein Gewicht.
	record, err := ParseRecord("X", "ID   HBA_HUMAN Reviewed;\nSQ   SEQUENCE   141 AA;")
	require.NoError(t, err)
	assert.Empty(t, record.Weight)
}

func TestParseRecordWeightSQLastLineTrailingNewline(t *testing.T) {
	// HTTP-geholte Textdateien enden mit Zeilenumbruch; die synthetische
	// leere Schlusszeile ist kein Lookahead-Ziel.
	record, err := ParseRecord("X", "ID   HBA_HUMAN Reviewed;\nSQ   SEQUENCE   141 AA;\n")
	require.NoError(t, err)
	assert.Empty(t, record.Weight)

	record, err = ParseRecord("X", "ID   HBA_HUMAN Reviewed;\r\nSQ   SEQUENCE   141 AA;\r\n")
	require.NoError(t, err)
	assert.Empty(t, record.Weight)
}

func TestParseRecordWeightEmptyFollowingLine(t *testing.T) {
	_, err := ParseRecord("X", "SQ   SEQUENCE   141 AA;\n\nmehr")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Weight", parseErr.Field)
	assert.Equal(t, 2, parseErr.LineNo)
}

func TestParseRecordModResLastWriteWins(t *testing.T) {
	body := "FT   MOD_RES   4   ; Acetylation; N-terminal\n" +
		"FT   MOD_RES   8   ; Phosphoserine; by CK2"

	record, err := ParseRecord("X", body)
	require.NoError(t, err)

	require.NotNil(t, record.Length)
	assert.Equal(t, 8, *record.Length)
	assert.Equal(t, []string{"Phosphoserine", "by CK2"}, record.PTMs)
}

func TestParseRecordModResWithoutPosition(t *testing.T) {
	// Weniger als drei Whitespace-Tokens: keine Länge, aber auch kein Fehler.
	record, err := ParseRecord("X", "FT   MOD_RES;Phosphoserine")
	require.NoError(t, err)
	assert.Nil(t, record.Length)
	assert.Equal(t, []string{"Phosphoserine"}, record.PTMs)
}

func TestParseRecordFailFast(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"Function ohne Semikolon", "DE   RecName: Full=Hemoglobin subunit alpha", "Function"},
		{"Structure ohne zweites Feld", "DR   SUPFAM", "Structure"},
		{"Pathway ohne zweites Feld", "DR   Reactome", "Pathway"},
		{"Disease ohne zweites Feld", "DR   MIM", "Disease"},
		{"PDB ohne zweites Feld", "DR   PDB", "PDB_ID"},
		{"AlphaFold ohne zweites Feld", "DR   AlphaFoldDB", "AlphaFold_ID"},
		{"MOD_RES Position keine Zahl", "FT   MOD_RES   abc   ; note", "Length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord("X", tt.body)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantField, parseErr.Field)
			assert.Equal(t, 1, parseErr.LineNo)
			assert.NotEmpty(t, parseErr.Error())
		})
	}
}

func TestParseRecordRepeatedSingularFieldsOverwrite(t *testing.T) {
	body := "DR   MIM; 141800; gene.\nDR   MIM; 604131; phenotype."
	record, err := ParseRecord("X", body)
	require.NoError(t, err)
	assert.Equal(t, " 604131", record.Disease)
}

func TestParseErrorIsError(t *testing.T) {
	_, err := ParseRecord("X", "DR   SUPFAM")
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*ParseError)))
}
