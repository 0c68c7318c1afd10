// Package testutils provides shared fixtures for the engine's tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"midosis/internal/lexicon"
)

// MustLexicon loads the embedded default lexicon and fails the test on
// error. Tests share one immutable instance safely.
func MustLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err, "embedded lexicon must load")
	return lex
}

// SampleCommands returns representative transcripts covering every action.
func SampleCommands() []string {
	return []string{
		"agregar paracetamol 500 mg a las 8 de la mañana cada 12 horas por 14 días",
		"mi dosis agrégame ibuprofeno de 400 mg cada 8 horas por 7 días",
		"eliminar ibuprofeno",
		"¿qué medicamentos tengo hoy?",
		"listar mis medicamentos",
		"recuérdame tomar la aspirina en la noche",
		"ya tomé el omeprazol",
	}
}
