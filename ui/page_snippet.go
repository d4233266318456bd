package ui

import (
	"strings"

	"nanodash/engine"
	"nanodash/util"
)

var snippetFields = []string{"Temp", "Time", "VOacac", "DDT", "OAm"}

// snippetForm holds the five numeric inputs for the notebook snippet.
// Values stay raw strings so the generated code mirrors what was typed.
type snippetForm struct {
	values  [5]string
	focused int
}

func newSnippetForm() snippetForm {
	return snippetForm{values: [5]string{"200", "30", "1.00", "2.00", "4.00"}}
}

func (f *snippetForm) next() { f.focused = (f.focused + 1) % len(f.values) }
func (f *snippetForm) prev() { f.focused = (f.focused - 1 + len(f.values)) % len(f.values) }

func (f *snippetForm) backspace() {
	v := f.values[f.focused]
	if v != "" {
		f.values[f.focused] = v[:len(v)-1]
	}
}

// typeRune appends a numeric character to the focused field. Anything
// that is not part of a number is ignored.
func (f *snippetForm) typeRune(key string) {
	if len(key) != 1 {
		return
	}
	c := key[0]
	if (c < '0' || c > '9') && c != '.' && c != '-' {
		return
	}
	if len(f.values[f.focused]) >= 10 {
		return
	}
	f.values[f.focused] += key
}

// invalid reports whether the field holds text that is not a number.
// Empty fields are fine, the snippet substitutes 0 for them.
func (f snippetForm) invalid(i int) bool {
	if f.values[i] == "" {
		return false
	}
	_, ok := util.ParseFloat64(f.values[i])
	return !ok
}

func (f snippetForm) inputs() engine.SnippetInputs {
	return engine.SnippetInputs{
		Temp:   f.values[0],
		Time:   f.values[1],
		VOacac: f.values[2],
		DDT:    f.values[3],
		OAm:    f.values[4],
	}
}

// renderSnippetPage renders the form and the live snippet preview.
func renderSnippetPage(form snippetForm, iw int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("REGISTER RESULT SNIPPET"))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("  tab/shift+tab move, type to edit, enter copies to clipboard"))
	sb.WriteString("\n")

	var fieldLines []string
	anyInvalid := false
	for i, name := range snippetFields {
		label := dimStyle.Render(padRight(name, 8))
		val := form.values[i]
		mark := ""
		if form.invalid(i) {
			anyInvalid = true
			mark = " " + warnStyle.Render("not a number")
		}
		if i == form.focused {
			fieldLines = append(fieldLines, "  "+label+" "+headerStyle.Render("> "+val+"_")+mark)
		} else {
			fieldLines = append(fieldLines, "  "+label+"   "+valueStyle.Render(val)+mark)
		}
	}
	if anyInvalid {
		fieldLines = append(fieldLines, "  "+dimStyle.Render("fix the marked fields before copying"))
	}
	sb.WriteString(boxSection("CONDITIONS", fieldLines, iw))

	snippet := engine.Snippet(form.inputs())
	var previewLines []string
	for _, line := range strings.Split(snippet, "\n") {
		previewLines = append(previewLines, "  "+okStyle.Render(line))
	}
	sb.WriteString(boxSection("NOTEBOOK SNIPPET", previewLines, iw))

	return sb.String()
}
