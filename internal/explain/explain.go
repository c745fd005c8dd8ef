// Package explain holds one-sentence descriptions of common commands.
package explain

import "sort"

// NoExplanation is returned for any command without an entry.
const NoExplanation = "No explanation available for this command."

var explanations = map[string]string{
	"ls": "The 'ls' command lists directory contents.",
	"cd": "The 'cd' command changes the current directory.",
	"rm": "The 'rm' command removes files or directories.",
}

// Explain returns the description for command, or NoExplanation.
func Explain(command string) string {
	if text, ok := explanations[command]; ok {
		return text
	}
	return NoExplanation
}

// Topics returns the commands that have an explanation, sorted.
func Topics() []string {
	topics := make([]string, 0, len(explanations))
	for k := range explanations {
		topics = append(topics, k)
	}
	sort.Strings(topics)
	return topics
}
