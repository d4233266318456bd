package engine

import "fmt"

// SnippetInputs holds the five synthesis parameters entered in the
// snippet form. Values are kept as raw strings so the generated code
// reflects exactly what the user typed.
type SnippetInputs struct {
	Temp   string
	Time   string
	VOacac string
	DDT    string
	OAm    string
}

// Snippet interpolates the inputs into the notebook registration call.
// Blank fields interpolate as-is; validation is the notebook's job.
func Snippet(in SnippetInputs) string {
	return fmt.Sprintf(
		"result = optimizer.register_experiment(\n"+
			"    Temp=%s,\n"+
			"    Time=%s,\n"+
			"    VOacac=%s,\n"+
			"    DDT=%s,\n"+
			"    OAm=%s,\n"+
			")",
		orDefault(in.Temp), orDefault(in.Time), orDefault(in.VOacac),
		orDefault(in.DDT), orDefault(in.OAm))
}

func orDefault(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
