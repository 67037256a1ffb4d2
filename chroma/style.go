package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/fountain"
)

// StyleFunc maps chroma token types to fountain styles.
type StyleFunc func(chromalib.TokenType) fountain.Style

// StyleFromStyles returns a function that maps token types emitted by the
// Fountain lexer to the category styles of a theme.
func StyleFromStyles(s fountain.Styles) StyleFunc {
	return func(tt chromalib.TokenType) fountain.Style {
		if tt == chromalib.Text {
			return fountain.Style{}
		}
		return s.For(CategoryFor(tt))
	}
}
