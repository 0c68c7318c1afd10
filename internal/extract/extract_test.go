package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midosis/internal/stringprocessing"
	"midosis/internal/testutils"
	"midosis/pkg/dosistypes"
)

func TestAction(t *testing.T) {
	lex := testutils.MustLexicon(t)

	testCases := []struct {
		name       string
		text       string
		wantAction dosistypes.Action
		wantFound  bool
	}{
		{
			name:       "add keyword",
			text:       "agregar paracetamol",
			wantAction: dosistypes.ActionAddMedication,
			wantFound:  true,
		},
		{
			name:       "delete keyword",
			text:       "eliminar ibuprofeno",
			wantAction: dosistypes.ActionDeleteMedication,
			wantFound:  true,
		},
		{
			name:       "list keyword",
			text:       "mostrar mis medicamentos",
			wantAction: dosistypes.ActionListMedications,
			wantFound:  true,
		},
		{
			name:       "check today question",
			text:       "qué medicamentos tengo hoy",
			wantAction: dosistypes.ActionCheckToday,
			wantFound:  true,
		},
		{
			name:       "took already",
			text:       "ya tomé el omeprazol",
			wantAction: dosistypes.ActionCheckMedication,
			wantFound:  true,
		},
		{
			name:       "reminder keyword",
			text:       "recuérdame la aspirina",
			wantAction: dosistypes.ActionSetReminder,
			wantFound:  true,
		},
		{
			name:       "table order breaks ties",
			text:       "recuérdame agregar paracetamol",
			wantAction: dosistypes.ActionAddMedication,
			wantFound:  true,
		},
		{
			name:       "no action",
			text:       "buenos días",
			wantAction: dosistypes.ActionUnknown,
			wantFound:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, span, ok := Action(tc.text, lex)
			assert.Equal(t, tc.wantFound, ok)
			assert.Equal(t, tc.wantAction, action)
			if ok {
				assert.NotEmpty(t, tc.text[span.Start:span.End])
			}
		})
	}
}

func TestWakeWord(t *testing.T) {
	lex := testutils.MustLexicon(t)

	assert.True(t, WakeWord("mi dosis agrégame paracetamol", lex))
	assert.True(t, WakeWord("hey dosis qué tengo hoy", lex))
	assert.False(t, WakeWord("agregar paracetamol", lex))
	assert.False(t, WakeWord("la dosis es de 500 mg", lex))
}

func TestEntity(t *testing.T) {
	lex := testutils.MustLexicon(t)

	testCases := []struct {
		name      string
		text      string
		wantName  string
		wantFound bool
	}{
		{
			name:      "curated name",
			text:      "agregar paracetamol 500 mg",
			wantName:  "Paracetamol",
			wantFound: true,
		},
		{
			name:      "brand alias resolves to canonical",
			text:      "quiero advil",
			wantName:  "Ibuprofeno",
			wantFound: true,
		},
		{
			name:      "fallback after trigger",
			text:      "agregar blorazepan 10 mg",
			wantName:  "Blorazepan",
			wantFound: true,
		},
		{
			name:      "fallback skips article",
			text:      "eliminar el zantacol de mis recordatorios",
			wantName:  "Zantacol",
			wantFound: true,
		},
		{
			name:      "trigger noun then unknown name",
			text:      "agregar medicamento juanicol",
			wantName:  "Juanicol",
			wantFound: true,
		},
		{
			name:      "no trigger no lexicon hit",
			text:      "qué medicamentos tengo hoy",
			wantFound: false,
		},
		{
			name:      "no medication mentioned",
			text:      "listar mis recordatorios de hoy",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, _, ok := Entity(tc.text, lex)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantName, name)
			}
		})
	}
}

func TestDosage(t *testing.T) {
	lex := testutils.MustLexicon(t)

	testCases := []struct {
		name      string
		text      string
		want      dosistypes.Dosage
		wantFound bool
	}{
		{
			name:      "amount with unit",
			text:      "agregar paracetamol 500 mg",
			want:      dosistypes.Dosage{Amount: 500, Unit: "mg"},
			wantFound: true,
		},
		{
			name:      "joined amount and unit",
			text:      "tomar 500mg por la noche",
			want:      dosistypes.Dosage{Amount: 500, Unit: "mg"},
			wantFound: true,
		},
		{
			name:      "spelled unit",
			text:      "dosis de 10 mililitros",
			want:      dosistypes.Dosage{Amount: 10, Unit: "ml"},
			wantFound: true,
		},
		{
			name:      "count unit stays count",
			text:      "tomar 2 tabletas",
			want:      dosistypes.Dosage{Amount: 2, Unit: "tableta"},
			wantFound: true,
		},
		{
			name:      "no dosage",
			text:      "eliminar ibuprofeno",
			wantFound: false,
		},
		{
			name:      "number without unit",
			text:      "tomar 3 al día",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, _, ok := Dosage(tc.text, lex)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.want, d)
			}
		})
	}
}

func TestFrequency(t *testing.T) {
	lex := testutils.MustLexicon(t)

	testCases := []struct {
		name        string
		text        string
		wantSurface string
		wantFound   bool
	}{
		{
			name:        "numeric interval",
			text:        "tomar cada 12 horas por una semana",
			wantSurface: "cada 12 horas",
			wantFound:   true,
		},
		{
			name:        "spelled interval",
			text:        "tomar cada ocho horas",
			wantSurface: "cada ocho horas",
			wantFound:   true,
		},
		{
			name:        "worded phrase",
			text:        "tomar dos veces al día",
			wantSurface: "dos veces al día",
			wantFound:   true,
		},
		{
			name:        "daily word",
			text:        "omeprazol diario en la noche",
			wantSurface: "diario",
			wantFound:   true,
		},
		{
			name:      "no frequency",
			text:      "eliminar ibuprofeno",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			surface, span, ok := Frequency(tc.text, lex)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantSurface, surface)
				assert.Equal(t, surface, tc.text[span.Start:span.End])
			}
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	lex := testutils.MustLexicon(t)

	testCases := []struct {
		name        string
		text        string
		wantSurface string
		wantFound   bool
	}{
		{
			name:        "clock literal",
			text:        "tomar a las 8:30",
			wantSurface: "8:30",
			wantFound:   true,
		},
		{
			name:        "hour with daypart",
			text:        "a las 8 de la mañana cada 12 horas",
			wantSurface: "8 de la mañana",
			wantFound:   true,
		},
		{
			name:        "hour with meridiem",
			text:        "tomar a las 7 pm",
			wantSurface: "7 pm",
			wantFound:   true,
		},
		{
			name:        "bare hour horas",
			text:        "tomar a las 20 horas",
			wantSurface: "20 horas",
			wantFound:   true,
		},
		{
			name:        "named instant",
			text:        "tomar después del desayuno",
			wantSurface: "después del desayuno",
			wantFound:   true,
		},
		{
			name:        "daypart only",
			text:        "omeprazol en la noche diario",
			wantSurface: "en la noche",
			wantFound:   true,
		},
		{
			name:      "interval is not a time",
			text:      "tomar cada 12 horas",
			wantFound: false,
		},
		{
			name:      "no time",
			text:      "eliminar ibuprofeno",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			surface, span, ok := TimeOfDay(tc.text, lex)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantSurface, surface)
				assert.Equal(t, surface, tc.text[span.Start:span.End])
			}
		})
	}
}

func TestDuration(t *testing.T) {
	lex := testutils.MustLexicon(t)

	testCases := []struct {
		name        string
		text        string
		wantSurface string
		wantFound   bool
	}{
		{
			name:        "days",
			text:        "tomar por 14 días",
			wantSurface: "por 14 días",
			wantFound:   true,
		},
		{
			name:        "weeks spelled",
			text:        "durante dos semanas",
			wantSurface: "durante dos semanas",
			wantFound:   true,
		},
		{
			name:        "months",
			text:        "para 2 meses",
			wantSurface: "para 2 meses",
			wantFound:   true,
		},
		{
			name:      "no duration",
			text:      "eliminar ibuprofeno",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			surface, _, ok := Duration(tc.text, lex)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantSurface, surface)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	lex := testutils.MustLexicon(t)

	surface, _, ok := Quantity("comprar 2 cajas de paracetamol", lex)
	require.True(t, ok)
	assert.Equal(t, "2 cajas", surface)

	surface, _, ok = Quantity("un frasco de jarabe", lex)
	require.True(t, ok)
	assert.Equal(t, "un frasco", surface)

	_, _, ok = Quantity("agregar paracetamol 500 mg", lex)
	assert.False(t, ok)
}

func TestExtractorsUseNormalizedSpans(t *testing.T) {
	lex := testutils.MustLexicon(t)
	text := stringprocessing.Normalize("Agregar   Paracetamol 500 MG a las 8 de la mañana")

	_, span, ok := Action(text, lex)
	require.True(t, ok)
	assert.Equal(t, "agregar", text[span.Start:span.End])
}
