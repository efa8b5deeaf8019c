// Package chords parses the textual notation musicians write for chords
// (CMaj7#9#11b6Omit5, Ab°7(Maj7,9), Cm11b5/G) into a fully specified
// harmonic object, and infers candidate chord names from a multiset of
// MIDI pitch codes.
//
// Parsing runs a small pipeline: a Lexer tokenises the input, a Parser
// turns the token stream into an AST of a root plus an ordered
// expression list (a slash bass rides along as one of those
// expressions), an evaluator folds the AST into an interval set, a
// validator checks the
// result for semantic consistency, and a quality classifier + normaliser
// produce the canonical name. Every stage is exported separately so
// callers can inspect intermediate state, but Parse is the entrypoint
// almost everyone wants.
package chords
