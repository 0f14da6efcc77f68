// Package export writes the task list in formats meant for other tools.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/todo-go/internal/todo"
)

// Format names an export format.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	PDF      Format = "pdf"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

var aliases = map[string]Format{
	"json":     JSON,
	"yaml":     YAML,
	"yml":      YAML,
	"markdown": Markdown,
	"md":       Markdown,
	"csv":      CSV,
	"pdf":      PDF,
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{JSON, YAML, Markdown, CSV, PDF}
}

// FormatList returns the supported format names, comma separated.
func FormatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// ParseFormat resolves a format name or alias, case-insensitively.
func ParseFormat(s string) (Format, error) {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnknownFormat, s, FormatList())
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool {
	return f == PDF
}

type exportTask struct {
	Position int    `json:"position" yaml:"position"`
	Text     string `json:"text" yaml:"text"`
	Done     bool   `json:"done" yaml:"done"`
}

type exportDoc struct {
	Open  int          `json:"open" yaml:"open"`
	Done  int          `json:"done" yaml:"done"`
	Tasks []exportTask `json:"tasks" yaml:"tasks"`
}

func document(f *todo.File) exportDoc {
	open, done := f.Counts()
	doc := exportDoc{Open: open, Done: done, Tasks: make([]exportTask, 0, f.Len())}
	for pos, t := range f.All() {
		doc.Tasks = append(doc.Tasks, exportTask{Position: pos, Text: t.Text, Done: t.Done})
	}
	return doc
}

// Write encodes f to w in the given format.
func Write(w io.Writer, f *todo.File, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(f))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(f)); err != nil {
			return err
		}
		return enc.Close()
	case Markdown:
		return writeMarkdown(w, f)
	case CSV:
		return writeCSV(w, f)
	case PDF:
		return writePDF(w, f)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func writeMarkdown(w io.Writer, f *todo.File) error {
	var b bytes.Buffer
	b.WriteString("# Todo\n\n")
	for _, t := range f.All() {
		box := " "
		if t.Done {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, lineBreaks.Replace(t.Text))
	}
	_, err := w.Write(b.Bytes())
	return err
}

func writeCSV(w io.Writer, f *todo.File) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"position", "text", "done"})
	for pos, t := range f.All() {
		_ = cw.Write([]string{strconv.Itoa(pos), t.Text, strconv.FormatBool(t.Done)})
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, f *todo.File) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todo")
	pdf.Ln(12)

	open, done := f.Counts()
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(40, 6, fmt.Sprintf("%d open, %d done", open, done))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for pos, t := range f.All() {
		box := "[ ]"
		if t.Done {
			box = "[x]"
			pdf.SetTextColor(0, 128, 0)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		line := fmt.Sprintf("%s %d: %s", box, pos, lineBreaks.Replace(t.Text))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}
	return pdf.Output(w)
}
