package wgpu

import (
	"strings"
	"testing"

	"github.com/gogpu/naga"
)

func TestLineShaderCompilation(t *testing.T) {
	if lineShaderWGSL == "" {
		t.Fatal("line shader source is empty")
	}
	if !strings.Contains(lineShaderWGSL, "vs_main") || !strings.Contains(lineShaderWGSL, "fs_main") {
		t.Error("shader entry points missing")
	}

	spirvBytes, err := naga.Compile(lineShaderWGSL)
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") ||
			strings.Contains(err.Error(), "not supported") {
			t.Skipf("naga feature not yet implemented: %v", err)
		}
		t.Fatalf("failed to compile line shader: %v", err)
	}
	if len(spirvBytes) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
}

func TestCompileShaderToSPIRVWordOrder(t *testing.T) {
	code, err := CompileShaderToSPIRV(lineShaderWGSL)
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") ||
			strings.Contains(err.Error(), "not supported") {
			t.Skipf("naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileShaderToSPIRV: %v", err)
	}
	if len(code) == 0 {
		t.Fatal("no SPIR-V words produced")
	}
	// SPIR-V magic number, assembled little-endian.
	if code[0] != 0x07230203 {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", code[0])
	}
}
