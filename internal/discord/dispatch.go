package discord

import "strings"

// ParseCommand splits a prefixed message into a command name and arguments.
// The prefix match is case-sensitive; non-command text reports ok=false.
func ParseCommand(content, prefix string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}
