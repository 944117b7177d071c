package textenc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestResolveUTF8Passthrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "plain ascii", input: "Vamos marcar uma call para revisar o projeto"},
		{name: "accented utf-8", input: "Reunião de orçamento amanhã às 15h, favor confirmar presença"},
		{name: "multiline", input: "Olá equipe,\n\nSegue o relatório do projeto.\n\nAbraços"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve([]byte(tt.input))
			if got != tt.input {
				t.Errorf("Resolve() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestResolveStripsBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Olá, tudo bem?")...)

	got := Resolve(raw)
	if got != "Olá, tudo bem?" {
		t.Errorf("Resolve() = %q, want BOM stripped", got)
	}
}

func TestResolveWindows1252(t *testing.T) {
	// "relatório do projeto" with é/ó as single 0xE9/0xF3 bytes: valid
	// Windows-1252, invalid UTF-8.
	raw := []byte("O relat\xF3rio do projeto est\xE1 em anexo, por favor revise a se\xE7\xE3o de or\xE7amento at\xE9 sexta")

	if utf8.Valid(raw) {
		t.Fatal("test input must not be valid UTF-8")
	}

	got := Resolve(raw)
	if got == "" {
		t.Fatal("Resolve() returned empty text for decodable input")
	}
	if !utf8.ValidString(got) {
		t.Errorf("Resolve() returned invalid UTF-8: %q", got)
	}
	if !strings.Contains(got, "projeto") {
		t.Errorf("Resolve() = %q, want ASCII content preserved", got)
	}
}

func TestResolveNeverFails(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty", raw: nil},
		{name: "single high byte", raw: []byte{0xE9}},
		{name: "truncated utf-8 sequence", raw: []byte{0x63, 0x61, 0x66, 0xC3}},
		{name: "utf-16le bom", raw: []byte{0xFF, 0xFE, 0x6F, 0x00, 0x69, 0x00}},
		{name: "binary garbage", raw: []byte{0x00, 0x9F, 0x92, 0x96, 0xFF, 0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw)
			if !utf8.ValidString(got) {
				t.Errorf("Resolve(%v) returned invalid UTF-8", tt.raw)
			}
		})
	}
}

func TestDecodeCandidates(t *testing.T) {
	// café with é as 0xE9, the Latin-1/Windows-1252 byte
	got, ok := decodeCandidates([]byte{0x63, 0x61, 0x66, 0xE9})
	if !ok {
		t.Fatal("decodeCandidates() failed for Latin-1 input")
	}
	if got != "café" {
		t.Errorf("decodeCandidates() = %q, want %q", got, "café")
	}
}

func TestDecodeAsUnknownCharset(t *testing.T) {
	if _, ok := decodeAs("no-such-charset", []byte("abc")); ok {
		t.Error("decodeAs() succeeded for unknown charset name")
	}
}
