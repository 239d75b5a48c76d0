package commands

// Flags holds the global flag values shared by every command. They are
// bound in main and populated before any command action runs.
type Flags struct {
	LogLevel string
	LogFile  string
	Theme    string
}
