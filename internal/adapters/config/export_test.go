package config

// SetEnvironment replaces the environment and home directory lookups.
func (l *Loader) SetEnvironment(getenv func(string) string, homeDir func() (string, error)) {
	l.getenv = getenv
	l.homeDir = homeDir
}
