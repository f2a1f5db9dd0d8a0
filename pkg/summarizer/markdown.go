package summarizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/breakstudio/pkg/widget"
)

// Translator translates display strings. The default is the identity
// function; callers can plug in l10n.T for localized output.
type Translator func(string) string

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the string translator used for headings and labels.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion includes a generator version in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ Formatter = (*MarkdownFormatter)(nil)

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Design Summary"))

	// Document
	fmt.Fprintf(&b, "## %s\n\n", t("Document"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Name"), summary.Document.Name)
	fmt.Fprintf(&b, "- %s: %s\n", t("ID"), summary.Document.ID)
	if !summary.Document.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "- %s: %s\n", t("Updated"), summary.Document.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "- %s: %dx%d\n", t("Canvas"), summary.Canvas.Width, summary.Canvas.Height)
	if summary.Canvas.Background != "" {
		fmt.Fprintf(&b, "- %s: %s\n", t("Background"), summary.Canvas.Background)
	}
	b.WriteString("\n")

	// Widget counts
	fmt.Fprintf(&b, "## %s\n\n", t("Widgets"))
	fmt.Fprintf(&b, "- %s: %d\n", t("Total"), summary.Total())
	for _, typ := range sortedTypes(summary) {
		fmt.Fprintf(&b, "- %s: %d\n", typ, summary.Counts[typ])
	}
	b.WriteString("\n")

	// Widget table in paint order
	if len(summary.Widgets) > 0 {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			t("Z"), t("Type"), t("Position"), t("Size"), t("Label"))
		b.WriteString("|---|---|---|---|---|\n")
		for _, w := range summary.Widgets {
			fmt.Fprintf(&b, "| %d | %s | %d,%d | %dx%d | %s |\n",
				w.ZIndex, w.Type, w.X, w.Y, w.Width, w.Height, w.Label)
		}
		b.WriteString("\n")
	}

	// Footer
	fmt.Fprintf(&b, "---\n%s: %s", t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	if f.version != "" {
		fmt.Fprintf(&b, " (breakstudio %s)", f.version)
	}
	b.WriteString("\n")

	return b.String()
}

func sortedTypes(summary *Summary) []widget.Type {
	types := make([]widget.Type, 0, len(summary.Counts))
	for typ := range summary.Counts {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
