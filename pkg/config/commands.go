package config

// Command is a named tool invocation such as format, lint or test
type Command struct {
	Name string
	Line string
}

// Commands is an ordered set of commands. Order follows the source document.
type Commands struct {
	list []Command
}

// NewCommands builds a command set. A repeated name replaces the earlier
// entry in place.
func NewCommands(cmds ...Command) Commands {
	var c Commands
	for _, cmd := range cmds {
		c.set(cmd)
	}
	return c
}

func (c *Commands) set(cmd Command) {
	for i, existing := range c.list {
		if existing.Name == cmd.Name {
			c.list[i] = cmd
			return
		}
	}
	c.list = append(c.list, cmd)
}

// Get returns the command line for name
func (c Commands) Get(name string) (string, bool) {
	for _, cmd := range c.list {
		if cmd.Name == name {
			return cmd.Line, true
		}
	}
	return "", false
}

// GetOr returns the command line for name, or fallback when it is absent
func (c Commands) GetOr(name, fallback string) string {
	if line, ok := c.Get(name); ok {
		return line
	}
	return fallback
}

// All returns a copy of the commands in order
func (c Commands) All() []Command {
	return append([]Command(nil), c.list...)
}

// Len returns the number of commands
func (c Commands) Len() int {
	return len(c.list)
}
