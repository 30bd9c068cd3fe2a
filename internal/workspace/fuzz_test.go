package workspace

import (
	"testing"
)

func FuzzIsInside(f *testing.F) {
	f.Add("/workspace/docs/prd.md", "/workspace")
	f.Add("/workspace/../etc/passwd", "/workspace")
	f.Add(`C:\Projects\app\file.txt`, `C:\Projects\app`)
	f.Add(`C:\Projects\..\..\Windows`, `C:\Projects`)
	f.Add("relative/path", "relative")
	f.Add("", "")
	f.Add("/a\x00b", "/a")
	f.Add("mixed\\and/separators", "mixed")

	f.Fuzz(func(t *testing.T, path, root string) {
		inside := IsInside(path, root)

		// Same inputs must give the same verdict every time
		if again := IsInside(path, root); again != inside {
			t.Fatalf("verdict flapped for (%q, %q): %t then %t", path, root, inside, again)
		}

		// ValidatedPath agrees with IsInside and never rewrites the path
		validated, ok := ValidatedPath(path, root)
		if ok != inside {
			t.Fatalf("ValidatedPath disagrees with IsInside for (%q, %q)", path, root)
		}
		if ok && validated != path {
			t.Fatalf("validated path was rewritten: %q became %q", path, validated)
		}
		if !ok && validated != "" {
			t.Fatalf("rejected path still returned %q", validated)
		}
	})
}
