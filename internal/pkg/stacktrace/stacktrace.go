package stacktrace

import "strings"

// InternalPaths extracts the frames under an /internal/ directory from a
// raw goroutine stack trace, trimmed to path.go:line form. Frames from
// the runtime and third-party modules are skipped.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines))

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.Contains(line, "/internal/") {
			continue
		}

		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		end := strings.Index(line[idx:], " ")
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}

		frame := line[:end]
		if internalIdx := strings.Index(frame, "/internal/"); internalIdx != -1 {
			paths = append(paths, frame[internalIdx+1:])
		}
	}

	return paths
}
