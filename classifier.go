package fountain

import (
	"regexp"
	"strings"
)

// ClassifierState is the memory carried from one line to the next.
// One state belongs to one document; callers own it and pass it to every call.
type ClassifierState struct {
	// InDialogue is true after a character cue until the next blank line.
	InDialogue bool
}

// NewClassifierState returns the state for the start of a document.
func NewClassifierState() *ClassifierState {
	return &ClassifierState{}
}

// Reset returns the state to the start of a document.
func (s *ClassifierState) Reset() {
	s.InDialogue = false
}

// Rule is one entry of the ordered classification table.
type Rule struct {
	Category Category
	Match    func(line string) bool
	// Effect, when set, runs after Match succeeds.
	Effect func(state *ClassifierState)
}

var (
	reSceneHeading  = regexp.MustCompile(`(?i)^(?:\*{0,3}_?)?(?:int|ext|est|i/e)[. ].+|^\.[^.].*`)
	// A cue starts with an uppercase letter and has at least two characters,
	// so "A" and "2ND MAN" are action.
	reCharacter     = regexp.MustCompile(`^\s*[A-Z][A-Z0-9 \t]+$`)
	reDialogue      = regexp.MustCompile(`^\s*\^?\n[^\n][\s\S]*`)
	reParenthetical = regexp.MustCompile(`^\(.+\)$`)
	reTransition    = regexp.MustCompile(`^(?:>[^<\n\r]*|[A-Z ]+ TO:)$`)
	reSynopsis      = regexp.MustCompile(`^=(?:[^=]|$)`)
)

func enterDialogue(state *ClassifierState) {
	state.InDialogue = true
}

// Rules returns the classification table in priority order.
// The first matching rule wins.
func Rules() []Rule {
	return []Rule{
		{Category: SceneHeading, Match: reSceneHeading.MatchString},
		{Category: Character, Match: reCharacter.MatchString, Effect: enterDialogue},
		{Category: Dialogue, Match: reDialogue.MatchString},
		{Category: Parenthetical, Match: reParenthetical.MatchString},
		{Category: Transition, Match: reTransition.MatchString},
		{Category: Synopsis, Match: reSynopsis.MatchString},
	}
}

// Classifier assigns a Category to each line of a screenplay.
// It holds no per-document state and is safe to share.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier using the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: Rules()}
}

// NewClassifierWithRules creates a classifier with a custom rule table.
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Classify returns the category of line and updates state.
// Every input, including the empty string, yields exactly one category.
func (c *Classifier) Classify(line string, state *ClassifierState) Category {
	for _, rule := range c.rules {
		if !rule.Match(line) {
			continue
		}
		if rule.Effect != nil {
			rule.Effect(state)
		}
		return rule.Category
	}

	if state.InDialogue {
		return Dialogue
	}
	return Action
}

// BlankLine records a blank line: dialogue ends unconditionally.
func (c *Classifier) BlankLine(state *ClassifierState) {
	state.InDialogue = false
}

// Line is a classified line of a document.
type Line struct {
	Number   int      // 1-based line number
	Text     string   // Line text without terminator
	Category Category // Action for blank lines
	Blank    bool     // Zero-length line routed through BlankLine
}

// ClassifyLines classifies lines top to bottom starting from a fresh state.
func (c *Classifier) ClassifyLines(lines []string) []Line {
	state := NewClassifierState()
	out := make([]Line, len(lines))
	for i, text := range lines {
		out[i] = Line{Number: i + 1, Text: text}
		if IsBlank(text) {
			c.BlankLine(state)
			out[i].Category = Action
			out[i].Blank = true
			continue
		}
		out[i].Category = c.Classify(text, state)
	}
	return out
}

// ClassifyDocument splits text into lines and classifies them.
func (c *Classifier) ClassifyDocument(text string) []Line {
	return c.ClassifyLines(SplitLines(text))
}

// IsBlank reports whether line is blank. Only zero-length lines are blank;
// whitespace-only lines are classified like any other line.
func IsBlank(line string) bool {
	return line == ""
}

// SplitLines splits text on line breaks. CRLF is treated as LF and a
// trailing newline yields a final empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
