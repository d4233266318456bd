package engine

import (
	"strings"
	"testing"
)

func TestSnippet(t *testing.T) {
	got := Snippet(SnippetInputs{
		Temp: "240", Time: "30", VOacac: "1.25", DDT: "2.00", OAm: "4.00",
	})

	for _, want := range []string{
		"optimizer.register_experiment(",
		"Temp=240,",
		"Time=30,",
		"VOacac=1.25,",
		"DDT=2.00,",
		"OAm=4.00,",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("snippet missing %q:\n%s", want, got)
		}
	}
}

func TestSnippetBlankFieldsDefaultToZero(t *testing.T) {
	got := Snippet(SnippetInputs{})
	if !strings.Contains(got, "Temp=0,") {
		t.Errorf("blank Temp should interpolate as 0:\n%s", got)
	}
}

func TestSnippetMirrorsRawInput(t *testing.T) {
	// The snippet reflects exactly what was typed, including partial input.
	got := Snippet(SnippetInputs{Temp: "2.", Time: "30", VOacac: "1", DDT: "1", OAm: "1"})
	if !strings.Contains(got, "Temp=2.,") {
		t.Errorf("raw input not preserved:\n%s", got)
	}
}
