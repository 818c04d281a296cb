package probe

import (
	"fmt"
	"io"
	"strings"
)

// Fixture is a canned configuration dump used by the parsing self-test.
type Fixture struct {
	Name    string
	Payload string
}

// Fixtures mirrors the shapes PlatformIO has been seen to print: a normal
// dump, an empty project and a list, which must not be mistaken for sections.
var Fixtures = []Fixture{
	{
		Name: "normal configuration",
		Payload: `{
	"env:airm2m_core_esp32c3": {"platform": "espressif32", "board": "airm2m_core_esp32c3"},
	"env:esp32dev": {"platform": "espressif32", "board": "esp32dev"}
}`,
	},
	{Name: "empty configuration", Payload: `{}`},
	{Name: "list output", Payload: `[]`},
}

// FixtureResult is what the self-test observed for one fixture.
type FixtureResult struct {
	Fixture Fixture
	Shape   Shape
	// Environments is nil when the fixture is not a mapping.
	Environments []string
}

// RunFixtures prints the extraction result for every fixture to w. It is a
// demonstration of the parsing logic and has no failure outcome.
func RunFixtures(w io.Writer) []FixtureResult {
	fmt.Fprintln(w, "\nTesting JSON parsing logic")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	results := make([]FixtureResult, 0, len(Fixtures))
	for i, fx := range Fixtures {
		fmt.Fprintf(w, "\nTest case %d:\n", i+1)

		doc, err := ParseDocument([]byte(fx.Payload))
		if err != nil {
			fmt.Fprintf(w, "Config: %s\n", fx.Payload)
			fmt.Fprintf(w, "Error: %v\n", err)
			results = append(results, FixtureResult{Fixture: fx})
			continue
		}

		fmt.Fprintf(w, "Config: %s\n", doc)
		fmt.Fprintf(w, "Type: %s\n", doc.Shape)

		res := FixtureResult{Fixture: fx, Shape: doc.Shape}
		if envs, ok := doc.Environments(); ok {
			res.Environments = envs
			fmt.Fprintf(w, "Environments: %s\n", formatList(envs))
		} else {
			fmt.Fprintln(w, "Not a mapping - no environments found")
		}
		results = append(results, res)
	}
	return results
}
