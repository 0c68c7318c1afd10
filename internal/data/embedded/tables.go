// Package embedded provides access to the embedded lexicon data files.
package embedded

import _ "embed"

// LexiconData contains the embedded lexicon table YAML data.
//
//go:embed lexicon.yaml
var LexiconData []byte

// SynonymData contains the embedded synonym table YAML data used by the
// variation generator.
//
//go:embed synonyms.yaml
var SynonymData []byte
