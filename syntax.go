package fountain

// Token represents a syntax-highlighted segment of a document.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply
}

// Tokenizer extracts syntax tokens from source text.
type Tokenizer interface {
	// Tokenize splits source into syntax-highlighted tokens for the given language.
	// Returns nil if the language is not supported.
	Tokenize(language, source string) []Token

	// TokenizeLines tokenizes source and groups the tokens by line.
	// Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector determines the markup language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path,
	// or an empty string if the language cannot be determined.
	DetectFromPath(path string) string
}
