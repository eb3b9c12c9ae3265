package config

// Compiled-in defaults. Running with no configuration file present uses
// exactly these values.
const (
	DefaultProjectName  = "VulkanSandbox"
	DefaultCxxStandard  = "20"
	DefaultCMakeMinimum = "3.20"
	DefaultDependency   = "Vulkan"
	DefaultOutputFile   = "CMakeLists.txt"
	DefaultScanRoot     = "."

	// HiddenMarker is the leading character marking a file as hidden.
	HiddenMarker = "."
)

// DefaultExtensions returns the recognized source suffixes.
func DefaultExtensions() []string { return []string{".cpp"} }

// DefaultExcludeDirs returns the directory names excluded from scanning.
// The build output directory must never feed back into the source list.
func DefaultExcludeDirs() []string { return []string{"build"} }

// Default returns a configuration populated with the compiled-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills every unset field with its compiled-in default.
func (c *Config) applyDefaults() {
	if c.Project.Name == "" {
		c.Project.Name = DefaultProjectName
	}
	if c.Project.CxxStandard == "" {
		c.Project.CxxStandard = DefaultCxxStandard
	}
	if c.Project.CMakeMinimum == "" {
		c.Project.CMakeMinimum = DefaultCMakeMinimum
	}
	if c.Scan.Root == "" {
		c.Scan.Root = DefaultScanRoot
	}
	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = DefaultExtensions()
	}
	if len(c.Scan.ExcludeDirs) == 0 {
		c.Scan.ExcludeDirs = DefaultExcludeDirs()
	}
	if c.Dependency.Name == "" {
		c.Dependency.Name = DefaultDependency
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
}
