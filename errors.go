package morfo

import "errors"

var ErrCardNotFound = errors.New("language card not found")
var ErrUnknownFamily = errors.New("unknown language family")
var ErrReadOnly = errors.New("modifications are not allowed")

// Lexicon failure taxonomy. The render path treats the two not-found
// errors as "use the concept ID as a literal lemma"; schema and config
// errors are surfaced to the caller.
var ErrLexiconNotFound = errors.New("lexicon not found for language")
var ErrLexemeNotFound = errors.New("lexeme not found")
var ErrLexiconSchema = errors.New("lexicon file does not match schema")
var ErrLexiconConfig = errors.New("lexicon is misconfigured")
