// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/fountain"
)

// LanguageName is the chroma name of the Fountain lexer.
const LanguageName = "Fountain"

// Compile-time interface verification.
var _ chromalib.Lexer = (*Lexer)(nil)

// Lexer is a chroma lexer backed by the fountain line classifier.
// Each Tokenise call starts a fresh ClassifierState.
type Lexer struct {
	config     *chromalib.Config
	classifier *fountain.Classifier
	registry   *chromalib.LexerRegistry
	analyser   func(text string) float32
}

// NewLexer creates a Fountain lexer using the default rule table.
func NewLexer() *Lexer {
	return &Lexer{
		config: &chromalib.Config{
			Name:      LanguageName,
			Aliases:   []string{"fountain", "spmd"},
			Filenames: []string{"*.fountain", "*.spmd"},
			MimeTypes: []string{"text/x-fountain"},
		},
		classifier: fountain.NewClassifier(),
	}
}

// Fountain is the lexer registered with chroma's global registry.
var Fountain = lexers.Register(NewLexer())

// Config describes the lexer.
func (l *Lexer) Config() *chromalib.Config {
	return l.config
}

// Tokenise classifies text line by line and emits one token per line,
// followed by a newline token between lines.
func (l *Lexer) Tokenise(_ *chromalib.TokeniseOptions, text string) (chromalib.Iterator, error) {
	lines := l.classifier.ClassifyDocument(text)

	tokens := make([]chromalib.Token, 0, len(lines)*2)
	for i, line := range lines {
		if line.Text != "" {
			tokens = append(tokens, chromalib.Token{
				Type:  TokenTypeFor(line.Category),
				Value: line.Text,
			})
		}
		if i < len(lines)-1 {
			tokens = append(tokens, chromalib.Token{Type: chromalib.Text, Value: "\n"})
		}
	}
	return chromalib.Literator(tokens...), nil
}

// SetRegistry sets the registry this lexer belongs to.
func (l *Lexer) SetRegistry(registry *chromalib.LexerRegistry) chromalib.Lexer {
	l.registry = registry
	return l
}

// SetAnalyser overrides the content analyser.
func (l *Lexer) SetAnalyser(analyser func(text string) float32) chromalib.Lexer {
	l.analyser = analyser
	return l
}

// AnalyseText scores how likely text is a screenplay: the share of
// non-blank lines that are scene headings, cues or transitions.
func (l *Lexer) AnalyseText(text string) float32 {
	if l.analyser != nil {
		return l.analyser(text)
	}
	var structural, total int
	for _, line := range l.classifier.ClassifyDocument(text) {
		if line.Blank || strings.TrimSpace(line.Text) == "" {
			continue
		}
		total++
		switch line.Category {
		case fountain.SceneHeading, fountain.Character, fountain.Transition:
			structural++
		}
	}
	if total == 0 {
		return 0
	}
	return float32(structural) / float32(total)
}

// TokenTypeFor maps a line category to a chroma token type.
func TokenTypeFor(c fountain.Category) chromalib.TokenType {
	switch c {
	case fountain.SceneHeading:
		return chromalib.NameClass
	case fountain.Character:
		return chromalib.NameProperty
	case fountain.Dialogue:
		return chromalib.LiteralString
	case fountain.Parenthetical:
		return chromalib.Comment
	case fountain.Transition:
		return chromalib.Keyword
	case fountain.Synopsis:
		return chromalib.CommentSpecial
	case fountain.Centered, fountain.PageBreak:
		return chromalib.GenericSubheading
	default:
		return chromalib.CommentSingle
	}
}

// CategoryFor maps a chroma token type back to a line category.
// Types the lexer never emits map to Action. GenericSubheading is shared by
// Centered and PageBreak and maps to Centered.
func CategoryFor(tt chromalib.TokenType) fountain.Category {
	switch tt {
	case chromalib.NameClass:
		return fountain.SceneHeading
	case chromalib.NameProperty:
		return fountain.Character
	case chromalib.LiteralString:
		return fountain.Dialogue
	case chromalib.Comment:
		return fountain.Parenthetical
	case chromalib.Keyword:
		return fountain.Transition
	case chromalib.CommentSpecial:
		return fountain.Synopsis
	case chromalib.GenericSubheading:
		return fountain.Centered
	default:
		return fountain.Action
	}
}
