// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"regexp"
	"strings"
)

var (
	fenceLine       = regexp.MustCompile("^```[a-zA-Z]*\\s*$")
	reactImportLine = regexp.MustCompile(`^import\s+(React(\s*,\s*\{[^}]*\})?|\{[^}]*\})\s+from\s+['"]react['"];?\s*$`)

	functionDecl = regexp.MustCompile(`function\s+(\w+)`)
	constDecl    = regexp.MustCompile(`const\s+(\w+)\s*=`)
)

// declarationPrefixes mark the first line that looks like code rather than
// model preamble ("Sure, here is your component:" and the like).
var declarationPrefixes = []string{"import", "export", "function", "const", "//", "interface", "type"}

// CleanCode normalises raw LLM output into a usable source file. It strips
// markdown fences and React runtime imports, drops any prose before the first
// declaration, synthesises a default export when none exists, and trims outer
// whitespace. The transformation is deterministic and idempotent; empty input
// yields empty output.
func CleanCode(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if fenceLine.MatchString(strings.TrimSpace(line)) {
			continue
		}
		if reactImportLine.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}

	// drop the preamble up to the first declaration-looking line; when no
	// line qualifies the text is kept as-is
	if start, found := firstDeclarationLine(kept); found {
		kept = kept[start:]
	}

	code := strings.TrimSpace(strings.Join(kept, "\n"))
	if code == "" {
		return ""
	}

	if !strings.Contains(code, "export default") {
		if name, found := componentName(code); found {
			code += "\n\nexport default " + name + ";"
		}
	}

	return code
}

func firstDeclarationLine(lines []string) (int, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range declarationPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				return i, true
			}
		}
	}
	return 0, false
}

func componentName(code string) (string, bool) {
	if m := functionDecl.FindStringSubmatch(code); m != nil {
		return m[1], true
	}
	if m := constDecl.FindStringSubmatch(code); m != nil {
		return m[1], true
	}
	return "", false
}
