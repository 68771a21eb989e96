package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"", language.English, true},
		{"en", language.English, true},
		{"pt-BR", language.MustParse("pt-BR"), true},
		{"ja", language.English, true},
		{"not a tag!", language.English, false},
	}
	for _, tc := range cases {
		got, ok := ResolveTag(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ResolveTag(%q) = %s, %v; want %s, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPrinterTranslates(t *testing.T) {
	pt := Printer(language.MustParse("pt-BR"))
	if got := pt.Sprintf(MenuQuitKey); got != "\tDigite 0 para sair" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := pt.Sprintf(MenuOptionKey, 2, "Planadores"); got != "\tDigite 2 para Planadores" {
		t.Fatalf("unexpected translation %q", got)
	}

	en := Printer(Default())
	if got := en.Sprintf(MenuOptionKey, 1, "Pulsar"); got != "\tEnter 1 for Pulsar" {
		t.Fatalf("unexpected english text %q", got)
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	tags := Supported()
	tags[0] = language.French
	if Supported()[0] != language.English {
		t.Fatal("Supported exposed the internal slice")
	}
}
