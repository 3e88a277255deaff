package abi

import "strings"

// UpperCamelCase converts a snake_case module or identifier name into
// UpperCamelCase, e.g. "calculator" -> "Calculator", "audio_mixer" ->
// "AudioMixer". Used to derive the Swift enum and Kotlin class names for
// a module.
func UpperCamelCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
