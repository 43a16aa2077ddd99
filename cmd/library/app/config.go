package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/game-club/library/pkg/constants"
)

// Config holds the application configuration loaded from environment
// variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Discussion source configuration. When any of these is missing the
	// build degrades to the persisted catalog only.
	Owner string
	Repo  string
	Token string

	// NewestLimit caps the "newest games" output slice.
	NewestLimit int

	// RootDir is the repository root holding the api directory. Empty means
	// resolve automatically.
	RootDir string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags (bound by cobra later), environment variables, .env
// files, then defaults.
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.SetDefault("new_games_limit", constants.DefaultNewestLimit)

	config := &Config{
		Owner:       viper.GetString("repo_owner"),
		Repo:        viper.GetString("repo_name"),
		Token:       viper.GetString("github_token"),
		NewestLimit: viper.GetInt("new_games_limit"),
		RootDir:     viper.GetString("library_root"),
		LogLevel:    viper.GetString("log_level"),
		LogFormat:   viper.GetString("log_format"),
		NoColor:     os.Getenv("NO_COLOR") != "",
	}

	return config, nil
}

// loadEnvFiles loads .env files if present. Missing files are fine.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		_ = godotenv.Load(file)
	}
}

// ResolveRoot locates the repository root: the first candidate directory
// containing api/game wins. Candidates are GITHUB_WORKSPACE, the working
// directory, and the executable's directory; failing those, the working
// directory's ancestors are searched. The working directory is the final
// fallback.
func (c *Config) ResolveRoot() string {
	if c.RootDir != "" {
		return c.RootDir
	}

	var candidates []string
	if workspace := os.Getenv("GITHUB_WORKSPACE"); workspace != "" {
		candidates = append(candidates, workspace)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	candidates = append(candidates, cwd)

	if executable, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(executable))
	}

	for _, candidate := range candidates {
		if hasGameDir(candidate) {
			return candidate
		}
	}

	for parent := filepath.Dir(cwd); ; parent = filepath.Dir(parent) {
		if hasGameDir(parent) {
			return parent
		}
		if parent == filepath.Dir(parent) {
			break
		}
	}

	return cwd
}

// APIDir returns the output directory under the resolved root.
func (c *Config) APIDir() string {
	return filepath.Join(c.ResolveRoot(), "api")
}

// hasGameDir checks whether a directory contains the api/game tree.
func hasGameDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "api", "game"))
	return err == nil && info.IsDir()
}
