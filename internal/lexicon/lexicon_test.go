package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midosis/pkg/dosistypes"
)

func TestDefaultLoads(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, lex.Actions)
	assert.NotEmpty(t, lex.Entities)
	assert.NotEmpty(t, lex.WakePhrases)
	assert.NotEmpty(t, lex.Frequencies)
	assert.NotNil(t, lex.Synonyms)
	assert.NotEmpty(t, lex.Synonyms.Templates)
}

func TestActionTableOrderPreserved(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	// The add keywords must come before the reminder keywords: priority is
	// positional, and the table is the contract.
	indexOf := func(keyword string) int {
		for i, a := range lex.Actions {
			if a.Keyword == keyword {
				return i
			}
		}
		return -1
	}
	require.GreaterOrEqual(t, indexOf("agregar"), 0)
	require.GreaterOrEqual(t, indexOf("recuérdame"), 0)
	assert.Less(t, indexOf("agregar"), indexOf("recuérdame"))
}

func TestLookupEntity(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	testCases := []struct {
		name      string
		text      string
		wantName  string
		wantFound bool
	}{
		{
			name:      "direct name",
			text:      "agregar paracetamol ahora",
			wantName:  "Paracetamol",
			wantFound: true,
		},
		{
			name:      "brand alias",
			text:      "necesito tylenol",
			wantName:  "Paracetamol",
			wantFound: true,
		},
		{
			name:      "multiword alias wins over nothing",
			text:      "tomar ácido acetilsalicílico",
			wantName:  "Aspirina",
			wantFound: true,
		},
		{
			name:      "no substring matches",
			text:      "ibuprofenol no existe",
			wantFound: false,
		},
		{
			name:      "unknown",
			text:      "nada conocido aquí",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, alias, ok := lex.LookupEntity(tc.text)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantName, name)
				assert.NotEmpty(t, alias)
			}
		})
	}
}

func TestTableLookups(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	unit, ok := lex.CanonicalUnit("miligramos")
	require.True(t, ok)
	assert.Equal(t, "mg", unit)

	unit, ok = lex.CanonicalUnit("tabletas")
	require.True(t, ok)
	assert.Equal(t, "tableta", unit)

	n, ok := lex.NumberWord("ocho")
	require.True(t, ok)
	assert.Equal(t, 8, n)

	class, ok := lex.DaypartClass("noche")
	require.True(t, ok)
	assert.Equal(t, Evening, class)

	ct, ok := lex.NamedTime("mediodía")
	require.True(t, ok)
	assert.Equal(t, dosistypes.ClockTime{Hour: 12}, ct)

	assert.True(t, lex.IsStopword("recordatorios"))
	assert.True(t, lex.IsQuantityUnit("cajas"))
	assert.False(t, lex.IsQuantityUnit("mg"))
}

func TestNamedTimePhrasesLongestFirst(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	phrases := lex.NamedTimePhrases()
	require.NotEmpty(t, phrases)
	for i := 1; i < len(phrases); i++ {
		assert.GreaterOrEqual(t, len(phrases[i-1]), len(phrases[i]))
	}
}

func TestLoadFileRejectsBadData(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name string
		data string
	}{
		{
			name: "not yaml",
			data: "{{{",
		},
		{
			name: "no actions",
			data: "entities:\n  - name: X\n    aliases: [x]\n",
		},
		{
			name: "unknown action",
			data: "actions:\n  - keyword: foo\n    action: explode\nentities:\n  - name: X\n    aliases: [x]\n",
		},
		{
			name: "bad named time",
			data: "actions:\n  - keyword: agregar\n    action: add_medication\nentities:\n  - name: X\n    aliases: [x]\nnamed_times:\n  mediodía: \"25:00\"\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0644))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
