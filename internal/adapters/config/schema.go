package config

// File represents the structure of config.yaml. Pointer and empty fields
// keep their defaults.
type File struct {
	Protocol ProtocolDTO `yaml:"protocol"`
	Probe    ProbeDTO    `yaml:"probe"`
	Output   OutputDTO   `yaml:"output"`
	Shell    ShellDTO    `yaml:"shell"`
	SSH      SSHDTO      `yaml:"ssh"`
}

// ProtocolDTO configures the task-stream directives.
type ProtocolDTO struct {
	Prefix *string `yaml:"prefix"`
}

// ProbeDTO configures the connectivity wait.
type ProbeDTO struct {
	Attempts    *int   `yaml:"attempts"`
	Delay       string `yaml:"delay"`
	Port        *int   `yaml:"port"`
	DialTimeout string `yaml:"dialTimeout"`
}

// OutputDTO configures status rendering.
type OutputDTO struct {
	Mode string `yaml:"mode"`
}

// ShellDTO configures the process runner.
type ShellDTO struct {
	PTY bool `yaml:"pty"`
}

// SSHDTO configures the remote invocation used by provision.
type SSHDTO struct {
	User    string   `yaml:"user"`
	Options []string `yaml:"options"`
}
