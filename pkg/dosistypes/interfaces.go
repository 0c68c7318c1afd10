package dosistypes

// Interpreter turns one free-form sentence into a structured command record.
// Implementations never fail: degraded input yields an ActionUnknown record
// with zero confidence.
type Interpreter interface {
	Interpret(text string) ParsedCommand
}

// VariationGenerator expands one canonical sentence into a bounded list of
// distinct paraphrases. An undecomposable sentence yields an empty list.
type VariationGenerator interface {
	Generate(sentence string, cap int) []string
}
