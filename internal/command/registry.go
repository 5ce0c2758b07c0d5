package command

var registry = map[string]Command{}

// Register registers a command under its name and aliases, wrapped in the
// given middlewares.
func Register(cmd Command, mws ...Middleware) {
	wrapped := Apply(cmd, mws...)
	registry[cmd.Name()] = wrapped
	for _, a := range cmd.Aliases() {
		registry[a] = wrapped
	}
}

// Get returns the command registered under name.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns all registered commands, deduplicated across aliases.
func All() []Command {
	seen := map[string]bool{}
	list := make([]Command, 0)
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	return list
}
