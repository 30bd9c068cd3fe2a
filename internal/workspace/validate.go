package workspace

import "strings"

// isWindowsPath reports whether a path looks Windows-style: a drive letter
// prefix or any backslash separator.
func isWindowsPath(path string) bool {
	if len(path) >= 2 && path[1] == ':' && isASCIIAlpha(path[0]) {
		return true
	}
	return strings.Contains(path, `\`)
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// normalizePath prepares a resolved path for comparison. Windows-style
// paths compare lowercased with backslash separators; POSIX paths compare
// verbatim.
func normalizePath(path string, windows bool) string {
	if windows {
		return strings.ReplaceAll(strings.ToLower(path), "/", `\`)
	}
	return path
}

// resolveComponents resolves '.' and '..' segments lexically, never touching
// the file system. '..' pops the previous kept segment except a drive token
// like 'C:', and the leading empty segment of a POSIX absolute path is kept
// so '/a' and 'a' stay distinct.
func resolveComponents(path string, windows bool) string {
	sep := "/"
	if windows {
		sep = `\`
		path = strings.ReplaceAll(path, "/", `\`)
	}

	parts := strings.Split(path, sep)
	resolved := make([]string, 0, len(parts))

	for _, part := range parts {
		switch part {
		case "..":
			if len(resolved) > 0 {
				last := resolved[len(resolved)-1]
				if !(len(last) == 2 && strings.HasSuffix(last, ":")) {
					resolved = resolved[:len(resolved)-1]
				}
			}
		case ".", "":
			if len(resolved) == 0 && part == "" && !windows {
				resolved = append(resolved, part)
			}
		default:
			resolved = append(resolved, part)
		}
	}

	return strings.Join(resolved, sep)
}

// IsInside reports whether filePath stays within workspaceRoot. The check is
// purely lexical: no symlink resolution, no filesystem access. Either input
// looking Windows-style puts the whole comparison in Windows mode, which is
// case-insensitive. Containment means the resolved path equals the resolved
// root or extends it past a separator boundary, so '/workspace-extra' is not
// inside '/workspace'.
func IsInside(filePath, workspaceRoot string) bool {
	if filePath == "" || workspaceRoot == "" {
		return false
	}

	windows := isWindowsPath(filePath) || isWindowsPath(workspaceRoot)

	resolvedFile := resolveComponents(filePath, windows)
	resolvedRoot := resolveComponents(workspaceRoot, windows)

	normalizedFile := normalizePath(resolvedFile, windows)
	normalizedRoot := normalizePath(resolvedRoot, windows)

	if normalizedFile == normalizedRoot {
		return true
	}

	sep := "/"
	if windows {
		sep = `\`
	}
	return strings.HasPrefix(normalizedFile, normalizedRoot+sep)
}

// ValidatedPath returns the path exactly as supplied when it is inside the
// workspace root. The second return reports containment; the path is never
// rewritten.
func ValidatedPath(filePath, workspaceRoot string) (string, bool) {
	if !IsInside(filePath, workspaceRoot) {
		return "", false
	}
	return filePath, true
}
