package cmake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/cmakegen/internal/config"
	"git.home.luguber.info/inful/cmakegen/internal/scan"
)

func testSources(rels ...string) []scan.SourceFile {
	sources := make([]scan.SourceFile, 0, len(rels))
	for _, rel := range rels {
		sources = append(sources, scan.SourceFile{
			RelPath: rel,
			Name:    filepath.Base(rel),
		})
	}
	return sources
}

const expectedDefaultDescriptor = `cmake_minimum_required(VERSION 3.20)
project(VulkanSandbox LANGUAGES CXX)

set(CMAKE_CXX_STANDARD 20)
set(CMAKE_CXX_STANDARD_REQUIRED ON)
set(CMAKE_EXPORT_COMPILE_COMMANDS ON)

# Source files
set(SRC
    lib/util.cpp
    main.cpp
)

add_executable(VulkanSandbox ${SRC})

# Vulkan SDK (system installation)
find_package(Vulkan REQUIRED)
target_include_directories(VulkanSandbox PRIVATE ${Vulkan_INCLUDE_DIRS})
target_link_libraries(VulkanSandbox PRIVATE ${Vulkan_LIBRARIES})

# Root include path
target_include_directories(VulkanSandbox PRIVATE
    ${CMAKE_SOURCE_DIR}
)
`

func TestRenderDefaultDescriptor(t *testing.T) {
	generator := NewGenerator(config.Default(), ".")

	content, err := generator.Render(testSources("lib/util.cpp", "main.cpp"))
	require.NoError(t, err)
	assert.Equal(t, expectedDefaultDescriptor, content)
}

func TestRenderListsSourcesInCollectionOrder(t *testing.T) {
	generator := NewGenerator(config.Default(), ".")

	content, err := generator.Render(testSources("z.cpp", "a.cpp", "m/middle.cpp"))
	require.NoError(t, err)

	zIdx := strings.Index(content, "    z.cpp\n")
	aIdx := strings.Index(content, "    a.cpp\n")
	mIdx := strings.Index(content, "    m/middle.cpp\n")
	require.NotEqual(t, -1, zIdx)
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, mIdx)
	assert.Less(t, zIdx, aIdx)
	assert.Less(t, aIdx, mIdx)
}

func TestRenderEmptySourceList(t *testing.T) {
	generator := NewGenerator(config.Default(), ".")

	content, err := generator.Render(nil)
	require.NoError(t, err)
	assert.Contains(t, content, "set(SRC\n)")
}

func TestRenderCustomSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Project.Name = "Renderer"
	cfg.Project.CxxStandard = "17"
	cfg.Project.CMakeMinimum = "3.16"
	cfg.Dependency.Name = "OpenGL"

	generator := NewGenerator(cfg, ".")
	content, err := generator.Render(testSources("main.cpp"))
	require.NoError(t, err)

	assert.Contains(t, content, "cmake_minimum_required(VERSION 3.16)")
	assert.Contains(t, content, "project(Renderer LANGUAGES CXX)")
	assert.Contains(t, content, "set(CMAKE_CXX_STANDARD 17)")
	assert.Contains(t, content, "find_package(OpenGL REQUIRED)")
	assert.Contains(t, content, "target_include_directories(Renderer PRIVATE ${OpenGL_INCLUDE_DIRS})")
	assert.Contains(t, content, "target_link_libraries(Renderer PRIVATE ${OpenGL_LIBRARIES})")
}

func TestGenerateWritesDescriptor(t *testing.T) {
	root := t.TempDir()
	generator := NewGenerator(config.Default(), root)

	require.NoError(t, generator.Generate(testSources("main.cpp")))

	data, err := os.ReadFile(filepath.Join(root, "CMakeLists.txt"))
	require.NoError(t, err)

	rendered, err := generator.Render(testSources("main.cpp"))
	require.NoError(t, err)
	assert.Equal(t, rendered, string(data))
}

func TestGenerateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	generator := NewGenerator(config.Default(), root)
	sources := testSources("a.cpp", "b/c.cpp")

	require.NoError(t, generator.Generate(sources))
	first, err := os.ReadFile(generator.OutputPath())
	require.NoError(t, err)

	require.NoError(t, generator.Generate(sources))
	second, err := os.ReadFile(generator.OutputPath())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateReplacesPreviousDescriptor(t *testing.T) {
	root := t.TempDir()
	generator := NewGenerator(config.Default(), root)

	// Hand-edited prior content is discarded wholesale.
	require.NoError(t, os.WriteFile(generator.OutputPath(), []byte("# stale hand-edited file\n"), 0o644))

	require.NoError(t, generator.Generate(testSources("main.cpp")))

	data, err := os.ReadFile(generator.OutputPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale hand-edited")
	assert.Contains(t, string(data), "    main.cpp\n")
}
