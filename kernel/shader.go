package kernel

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

// Embedded WGSL kernel source. Compiled at build time via go:embed.

//go:embed cvd.wgsl
var shaderWGSL string

// ShaderSource returns the WGSL source of the compute kernel.
func ShaderSource() string {
	return shaderWGSL
}

// CompileShader compiles the embedded kernel to SPIR-V for hosts that
// consume a ready shader module.
func CompileShader() ([]byte, error) {
	spirv, err := naga.Compile(shaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("kernel: compile shader: %w", err)
	}
	return spirv, nil
}

// ParamsBufferUsage returns the buffer usage flags for the packed parameter
// block: a uniform buffer updated from the CPU each frame.
func ParamsBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
}
