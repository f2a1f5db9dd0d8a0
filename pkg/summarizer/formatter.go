// Package summarizer builds human-readable reports from design
// documents. The inspect command renders them as Markdown.
package summarizer

// Formatter turns a Summary into its textual representation.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a plain function to the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format calls f.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}
