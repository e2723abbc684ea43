package config

type Bot struct {
	// Roles allowed to create, assign, update, complete and delete tasks
	AdminRoles []string `env:"ADMIN_ROLES" envSeparator:","`

	// Roles allowed to review submissions and receipt lists, and to
	// receive any task regardless of its assigned role
	PrivilegedRoles []string `env:"PRIVILEGED_ROLES" envSeparator:","`

	// Static role reference to display name mapping, e.g.
	// "role-1:Core Team,role-2:Moderators"
	RoleNames map[string]string `env:"ROLE_NAMES" envSeparator:"," envKeyValSeparator:":"`

	// Liveness message answered on the root endpoint
	StatusMessage string `env:"STATUS_MESSAGE" envDefault:"taskbot"`
}
