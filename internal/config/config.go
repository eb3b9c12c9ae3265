package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Project    ProjectConfig    `yaml:"project"`
	Scan       ScanConfig       `yaml:"scan"`
	Dependency DependencyConfig `yaml:"dependency"`
	Output     OutputConfig     `yaml:"output"`
}

// ProjectConfig describes the CMake project declaration
type ProjectConfig struct {
	Name         string `yaml:"name"`
	CxxStandard  string `yaml:"cxx_standard,omitempty"`
	CMakeMinimum string `yaml:"cmake_minimum,omitempty"`
}

// ScanConfig controls source file collection
type ScanConfig struct {
	Root        string   `yaml:"root,omitempty"`
	Extensions  []string `yaml:"extensions,omitempty"`   // Recognized source suffixes, defaults to [".cpp"]
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"` // Directory names excluded from scanning, defaults to ["build"]
}

// DependencyConfig names the external library resolved via find_package
type DependencyConfig struct {
	Name string `yaml:"name"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	File string `yaml:"file"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if one exists; absence is fine.
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// LoadOrDefault loads the configuration file if it exists and falls back to
// the compiled-in defaults otherwise, so the tool runs without any config.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		loadEnvFile()
		return Default(), nil
	}
	return Load(configPath)
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const exampleConfig = `# cmakegen configuration
# Every setting is optional; the values below are the compiled-in defaults.

project:
  name: VulkanSandbox
  cxx_standard: "20"
  cmake_minimum: "3.20"

scan:
  root: .
  extensions:
    - .cpp
  exclude_dirs:
    - build

dependency:
  name: Vulkan

output:
  file: CMakeLists.txt
`
