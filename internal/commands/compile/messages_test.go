package compilecmd

import "testing"

func TestCompileDocsCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     CompileDocsCommand
		wantErr bool
	}{
		{name: "minimal", cmd: CompileDocsCommand{ContentDir: "docs", OutputPath: "marketing/support-docs.txt"}},
		{name: "custom extension", cmd: CompileDocsCommand{ContentDir: "docs", OutputPath: "out.txt", Extension: ".md"}},
		{name: "missing content dir", cmd: CompileDocsCommand{OutputPath: "out.txt"}, wantErr: true},
		{name: "blank content dir", cmd: CompileDocsCommand{ContentDir: "  ", OutputPath: "out.txt"}, wantErr: true},
		{name: "missing output", cmd: CompileDocsCommand{ContentDir: "docs"}, wantErr: true},
		{name: "extension without dot", cmd: CompileDocsCommand{ContentDir: "docs", OutputPath: "out.txt", Extension: "mdx"}, wantErr: true},
		{name: "nested fragments dir", cmd: CompileDocsCommand{ContentDir: "docs", OutputPath: "out.txt", FragmentsDir: "a/b"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCompileDocsCommandType(t *testing.T) {
	if got := (CompileDocsCommand{}).Type(); got != "supportdocs.compile.docs" {
		t.Fatalf("unexpected type %q", got)
	}
}
