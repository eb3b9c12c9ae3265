package cmake

// cmakeTemplate is the fixed structure of the generated build descriptor.
// Dependency variable references (${<Dep>_INCLUDE_DIRS} and friends) are
// precomputed into the template data to keep the body free of brace escaping.
const cmakeTemplate = `cmake_minimum_required(VERSION {{.CMakeMinimum}})
project({{.Project}} LANGUAGES CXX)

set(CMAKE_CXX_STANDARD {{.CxxStandard}})
set(CMAKE_CXX_STANDARD_REQUIRED ON)
set(CMAKE_EXPORT_COMPILE_COMMANDS ON)

# Source files
set(SRC
{{- range .Sources}}
    {{.}}
{{- end}}
)

add_executable({{.Project}} ${SRC})

# {{.Dependency}} SDK (system installation)
find_package({{.Dependency}} REQUIRED)
target_include_directories({{.Project}} PRIVATE {{.DepIncludeDirs}})
target_link_libraries({{.Project}} PRIVATE {{.DepLibraries}})

# Root include path
target_include_directories({{.Project}} PRIVATE
    ${CMAKE_SOURCE_DIR}
)
`

// templateData carries the substitutions for one render.
type templateData struct {
	CMakeMinimum   string
	Project        string
	CxxStandard    string
	Dependency     string
	DepIncludeDirs string
	DepLibraries   string
	Sources        []string
}
