package mirror

import "strings"

// SanitizeBlobName maps a blob name to a filesystem-safe relative path.
// The name is split on "/", each segment is trimmed, has characters that
// are illegal in a local filename replaced with "_", and is trimmed again;
// empty segments are dropped. If no segment survives, ok is false and the
// blob should be skipped.
func SanitizeBlobName(name string) (string, bool) {
	segments := make([]string, 0, strings.Count(name, "/")+1)
	for _, raw := range strings.Split(name, "/") {
		segment := sanitizeSegment(raw)
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}

	if len(segments) == 0 {
		return "", false
	}
	return strings.Join(segments, "/"), true
}

func sanitizeSegment(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if isIllegalFilenameRune(r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// isIllegalFilenameRune reports whether r cannot appear in a filename.
// The Windows-reserved set is used on every platform so a mirrored tree
// stays portable across machines.
func isIllegalFilenameRune(r rune) bool {
	if r < 0x20 {
		return true
	}
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return true
	}
	return false
}
