package markdown

import (
	"strings"
	"testing"
)

func TestStripComponents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "pair keeps inner text",
			in:   "Hello <Card>World</Card>",
			want: "Hello World",
		},
		{
			name: "opening tag with attributes",
			in:   `<Card title="Install" icon="download" href="/install">Run the installer.</Card>`,
			want: "Run the installer.",
		},
		{
			name: "self closing with attributes",
			in:   `Before <Snippet file="auth.mdx" /> after`,
			want: "Before  after",
		},
		{
			name: "self closing without attributes",
			in:   "Line<Divider/>Line<Divider />",
			want: "LineLine",
		},
		{
			name: "nested components",
			in:   "<CardGroup cols={2}>\n<Card title=\"A\">\nAlpha\n</Card>\n<Card title=\"B\">Beta</Card>\n</CardGroup>",
			want: "\n\nAlpha\n\nBeta\n",
		},
		{
			name: "multi-line opening tag",
			in:   "<Tab\n  title=\"Python\"\n>\nprint()\n</Tab>",
			want: "\nprint()\n",
		},
		{
			name: "lower-case tags untouched",
			in:   "Use <br/> and <a href=\"/x\">link</a> and <div>box</div>",
			want: "Use <br/> and <a href=\"/x\">link</a> and <div>box</div>",
		},
		{
			name: "unbalanced tags still stripped",
			in:   "<Warning>Careful</Note>",
			want: "Careful",
		},
		{
			name: "tag literal in fenced code survives",
			in:   "<Tip>Example:</Tip>\n```jsx\n<Card title=\"x\">inside</Card>\n```",
			want: "Example:\n```jsx\n<Card title=\"x\">inside</Card>\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComponents(tt.in); got != tt.want {
				t.Fatalf("StripComponents() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripComponents_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello <Card>World</Card>",
		"<<Note>Tip>text</Tip>",
		"<Steps><Step title=\"One\">First</Step><Step title=\"Two\" /></Steps>",
		"```\n<Card>\n```\n<Accordion>body</Accordion>",
	}
	for _, in := range inputs {
		once := StripComponents(in)
		twice := StripComponents(once)
		if once != twice {
			t.Errorf("StripComponents not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStripComponents_NoComponentMarkupRemains(t *testing.T) {
	in := "<Info>Read <Tooltip tip=\"Application key\">API keys</Tooltip> first.</Info>"
	got := StripComponents(in)
	if strings.ContainsAny(got, "<>") {
		t.Fatalf("expected all component markup removed, got %q", got)
	}
	if got != "Read API keys first." {
		t.Fatalf("unexpected text %q", got)
	}
}
