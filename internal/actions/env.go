package actions

import "strings"

// DefaultServerURL is used when the platform does not provide a server URL.
const DefaultServerURL = "https://github.com"

// Input and environment names understood by the tool.
const (
	InputFromTag = "from-tag"
	InputToTag   = "to-tag"

	EnvActions    = "GITHUB_ACTIONS"
	EnvServerURL  = "GITHUB_SERVER_URL"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvOutput     = "GITHUB_OUTPUT"
	EnvRunnerDbg  = "RUNNER_DEBUG"
)

// InputEnv returns the variable GitHub Actions uses to pass an action input:
// INPUT_ followed by the upper-cased name with spaces replaced by underscores.
func InputEnv(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Environment holds the CI variables the tool reads.
type Environment struct {
	Actions     bool
	RunnerDebug bool
	ServerURL   string
	Repository  string
	OutputPath  string
}

// LoadEnvironment reads the CI environment through getenv, usually os.Getenv.
func LoadEnvironment(getenv func(string) string) Environment {
	return Environment{
		Actions:     getenv(EnvActions) == "true",
		RunnerDebug: getenv(EnvRunnerDbg) == "1",
		ServerURL:   strings.TrimSpace(getenv(EnvServerURL)),
		Repository:  strings.TrimSpace(getenv(EnvRepository)),
		OutputPath:  strings.TrimSpace(getenv(EnvOutput)),
	}
}
