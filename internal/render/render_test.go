package render

import (
	"strings"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{"LIGHT", Light, false},
		{"", Dark, false},
		{"solarized", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestANSI_PlainTextPassthrough(t *testing.T) {
	got, err := ANSI().Render("hello\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("markup = %q, want to contain 'hello'", got)
	}
}

func TestANSI_ColorBecomesMarkup(t *testing.T) {
	got, err := ANSI().Render("\x1b[31mred\x1b[0m\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.ContainsRune(got, '\x1b') {
		t.Errorf("markup = %q, want no raw escape bytes", got)
	}
	if !strings.Contains(got, "<span") {
		t.Errorf("markup = %q, want a styled span for the colored run", got)
	}
	if !strings.Contains(got, "red") {
		t.Errorf("markup = %q, want to contain 'red'", got)
	}
}

func TestANSI_Idempotent(t *testing.T) {
	in := "\x1b[1;32mok\x1b[0m line\n"
	a, err := ANSI().Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := ANSI().Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if a != b {
		t.Errorf("Render not deterministic: %q vs %q", a, b)
	}
}

func TestDocument_LightTheme(t *testing.T) {
	doc := Document("hello\n", "echo hello", Light)
	if !strings.Contains(doc, "<title>echo hello</title>") {
		t.Errorf("document missing title, got:\n%s", doc)
	}
	if !strings.Contains(doc, "#ffffff") {
		t.Error("document missing light background color")
	}
	if !strings.Contains(doc, "<pre>hello\n</pre>") {
		t.Error("document missing preformatted body")
	}
}

func TestDocument_DarkTheme(t *testing.T) {
	doc := Document("", "true", Dark)
	if !strings.Contains(doc, "#1e1e1e") {
		t.Error("document missing dark background color")
	}
	if !strings.Contains(doc, "<pre></pre>") {
		t.Error("empty capture should yield an empty preformatted body")
	}
}

func TestDocument_SelfContained(t *testing.T) {
	doc := Document("x", "ls", Dark)
	for _, forbidden := range []string{"<script", "<link", "http://", "https://"} {
		if strings.Contains(doc, forbidden) {
			t.Errorf("document contains external reference %q", forbidden)
		}
	}
}

func TestDocument_TitleEscaped(t *testing.T) {
	doc := Document("", "sh -c 'echo <x>'", Dark)
	if strings.Contains(doc, "<title>sh -c 'echo <x>'</title>") {
		t.Error("command was not escaped in the title")
	}
	if !strings.Contains(doc, "&lt;x&gt;") {
		t.Errorf("title missing escaped command, got:\n%s", doc)
	}
}
