package naming

import "strings"

// Longest file name accepted by common filesystems.
const maxFileNameLen = 255

// Reserved characters become hyphens; tabs and newlines would survive
// the space collapse below as-is, so they become hyphens too.
var sanitizeUnsafe = strings.NewReplacer(
	"/", "-", `\`, "-", ":", "-",
	"*", "-", "?", "-", `"`, "-",
	"<", "-", ">", "-", "|", "-",
	"\t", "-", "\n", "-", "\r", "-",
)

// SanitizeFileName makes a candidate file name safe on common platforms,
// independent of which Strategy produced it. It never fails: input with
// nothing salvageable degrades to "untitled".
func SanitizeFileName(name string) string {
	s := sanitizeUnsafe.Replace(name)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".")

	if r := []rune(s); len(r) > maxFileNameLen {
		s = string(r[:maxFileNameLen])
		// truncation can expose a new trailing period
		s = strings.TrimRight(s, ".")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "untitled"
	}
	if isReservedDeviceName(s) {
		s = "_" + s
	}
	return s
}

// isReservedDeviceName reports whether the base name (text before the
// first period) is a Windows device name such as CON or COM1.
func isReservedDeviceName(name string) bool {
	base := strings.ToUpper(name)
	if idx := strings.Index(base, "."); idx >= 0 {
		base = base[:idx]
	}
	switch base {
	case "CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9":
		return true
	default:
		return false
	}
}

// IsAbsolutePath reports whether path is absolute on any supported
// platform: rooted POSIX, drive-letter, or UNC.
func IsAbsolutePath(path string) bool {
	if strings.HasPrefix(path, "/") {
		return true
	}
	if len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' &&
		(path[2] == '/' || path[2] == '\\') {
		return true
	}
	if strings.HasPrefix(path, `\\`) {
		// \\host\share: host must be non-empty and followed by a separator
		rest := path[2:]
		if i := strings.IndexByte(rest, '\\'); i > 0 {
			return true
		}
	}
	return false
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
