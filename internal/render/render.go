// Package render turns captured terminal text into a self-contained
// HTML document: an ANSI-to-HTML conversion step behind the Renderer
// interface, and a fixed shell parameterised by theme and command.
package render

import (
	"fmt"
	"html"

	"github.com/robert-nix/ansihtml"
)

// Renderer converts raw terminal text, ANSI escape sequences included,
// into HTML markup. Implementations must be pure: the same input
// always yields the same markup.
type Renderer interface {
	Render(text string) (string, error)
}

// ANSI returns the default Renderer, backed by the ansihtml library.
func ANSI() Renderer {
	return ansiRenderer{}
}

type ansiRenderer struct{}

func (ansiRenderer) Render(text string) (string, error) {
	return string(ansihtml.ConvertToHTML([]byte(text))), nil
}

// documentTemplate is the complete page shell. Styling is inline so
// the saved file renders offline with no external references.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            background-color: %s;
            color: %s;
            font-family: 'Consolas', 'Courier New', monospace;
            padding: 20px;
            margin: 0;
        }
        pre {
            white-space: pre-wrap;
            word-wrap: break-word;
        }
    </style>
</head>
<body>
    <pre>%s</pre>
</body>
</html>`

// Document wraps converted markup in the page shell. The command
// becomes the title; the markup is placed in the preformatted block
// verbatim.
func Document(markup, command string, theme Theme) string {
	return fmt.Sprintf(documentTemplate,
		html.EscapeString(command), theme.Background(), theme.Foreground(), markup)
}
