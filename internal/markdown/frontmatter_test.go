package markdown

import "testing"

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		want    string
	}{
		{
			name:    "double quoted title",
			content: "---\ntitle: \"Quick Start\"\ndescription: \"Setup\"\n---\nBody",
			path:    "quickstart.mdx",
			want:    "Quick Start",
		},
		{
			name:    "single quoted title with padding",
			content: "---\ntitle:   'API Keys'   \n---\nBody",
			path:    "keys.mdx",
			want:    "API Keys",
		},
		{
			name:    "bare title",
			content: "---\nsidebarTitle: Nav\ntitle: Webhooks\n---\n",
			path:    "webhooks.mdx",
			want:    "Webhooks",
		},
		{
			name:    "header without title falls back",
			content: "---\ndescription: \"none\"\n---\nBody",
			path:    "guides/getting-started.mdx",
			want:    "Getting Started",
		},
		{
			name:    "no header falls back",
			content: "Hi",
			path:    "b.mdx",
			want:    "B",
		},
		{
			name:    "header not at start is ignored",
			content: "\n---\ntitle: \"Nope\"\n---\n",
			path:    "api_reference.mdx",
			want:    "Api Reference",
		},
		{
			name:    "title outside header is ignored",
			content: "---\ndescription: x\n---\ntitle: \"Body Title\"\n",
			path:    "faq.mdx",
			want:    "Faq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.content, tt.path); got != tt.want {
				t.Fatalf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := map[string]string{
		"getting-started.mdx":         "Getting Started",
		"docs/guides/rate_limits.mdx": "Rate Limits",
		"v2-api.mdx":                  "V2 Api",
		"API_keys.mdx":                "Api Keys",
		"2fa-setup.mdx":               "2Fa Setup",
		"release.notes.mdx":           "Release.Notes",
		"index":                       "Index",
	}
	for path, want := range tests {
		if got := TitleFromFilename(path); got != want {
			t.Errorf("TitleFromFilename(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestStripFrontMatter(t *testing.T) {
	in := "---\ntitle: \"A\"\n---\nHello\n---\nnot a header\n---\n"
	want := "Hello\n---\nnot a header\n---\n"
	if got := StripFrontMatter(in); got != want {
		t.Fatalf("StripFrontMatter() = %q, want %q", got, want)
	}

	plain := "No header here.\n"
	if got := StripFrontMatter(plain); got != plain {
		t.Fatalf("expected text without header to be unchanged, got %q", got)
	}

	untitled := "---\ndescription: only\n---\nBody"
	if got := StripFrontMatter(untitled); got != "Body" {
		t.Fatalf("expected header without title to be stripped, got %q", got)
	}
}

func TestParseFrontMatter(t *testing.T) {
	content := "---\ntitle: \"Quick Start\"\ndescription: \"Install the SDK\"\nicon: rocket\n---\nBody"

	fm, err := ParseFrontMatter(content, "quickstart.mdx")
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if !fm.Present {
		t.Fatal("expected header to be reported as present")
	}
	if fm.Title != "Quick Start" {
		t.Fatalf("unexpected title %q", fm.Title)
	}
	if fm.Description != "Install the SDK" {
		t.Fatalf("unexpected description %q", fm.Description)
	}
	if fm.Raw["icon"] != "rocket" {
		t.Fatalf("expected custom keys in Raw, got %#v", fm.Raw)
	}
}

func TestParseFrontMatter_MalformedYAMLKeepsTitle(t *testing.T) {
	content := "---\ntitle: \"Broken\"\ntags: [unterminated\n---\nBody"

	fm, err := ParseFrontMatter(content, "broken.mdx")
	if err == nil {
		t.Fatal("expected decode error for malformed YAML")
	}
	if fm.Title != "Broken" {
		t.Fatalf("expected title from header line, got %q", fm.Title)
	}
	if len(fm.Raw) != 0 {
		t.Fatalf("expected empty Raw on decode failure, got %#v", fm.Raw)
	}
}

func TestParseFrontMatter_NoHeader(t *testing.T) {
	fm, err := ParseFrontMatter("Just text", "support/contact-us.mdx")
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Present {
		t.Fatal("expected Present=false without header")
	}
	if fm.Title != "Contact Us" {
		t.Fatalf("unexpected fallback title %q", fm.Title)
	}
}
