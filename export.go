package fountain

// ClassifiedLine is the exported form of a classified line.
type ClassifiedLine struct {
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line"`
	Category Category `json:"category"`
	Text     string   `json:"text"`
	Blank    bool     `json:"blank,omitempty"`
}

// NewClassifiedLines converts the lines of one file to their exported form.
func NewClassifiedLines(file string, lines []Line) []ClassifiedLine {
	out := make([]ClassifiedLine, len(lines))
	for i, l := range lines {
		out[i] = ClassifiedLine{
			File:     file,
			Line:     l.Number,
			Category: l.Category,
			Text:     l.Text,
			Blank:    l.Blank,
		}
	}
	return out
}

// ClassificationWriter writes classified lines to an output stream.
type ClassificationWriter interface {
	Write(lines []ClassifiedLine) error
}
