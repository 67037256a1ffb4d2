package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var _ fountain.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromStyles to create a style function from a theme.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []fountain.Token {
	if source == "" {
		return []fountain.Token{}
	}

	iterator, ok := t.tokenise(language, source)
	if !ok {
		return nil
	}

	var tokens []fountain.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, fountain.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return tokens
}

// TokenizeLines tokenizes source with full context, then splits tokens by line.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]fountain.Token {
	if source == "" {
		return [][]fountain.Token{}
	}
	tokens := t.Tokenize(language, source)
	if tokens == nil {
		return nil
	}
	return splitTokensByLine(tokens)
}

func (t *Tokenizer) tokenise(language, source string) (chromalib.Iterator, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, false
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, false
	}
	return iterator, true
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
func splitTokensByLine(tokens []fountain.Token) [][]fountain.Token {
	if len(tokens) == 0 {
		return [][]fountain.Token{}
	}

	var result [][]fountain.Token
	var currentLine []fountain.Token

	// A trailing newline still opens a final, empty line.
	last := tokens[len(tokens)-1].Text
	endsWithNewline := strings.HasSuffix(last, "\n")

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, fountain.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			// Every part but the last ends a line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 || endsWithNewline {
		result = append(result, currentLine)
	}

	return result
}
