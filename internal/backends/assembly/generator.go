package assembly

import (
	"fmt"

	"github.com/khevencolino/Vega/internal/backends"
	"github.com/khevencolino/Vega/internal/backends/assembly/arm64"
	"github.com/khevencolino/Vega/internal/backends/assembly/x86_64"
)

// NovoBackendAssembly escolhe o backend de assembly pela arquitetura
func NovoBackendAssembly(arch string) (backends.Backend, error) {
	switch arch {
	case "x86_64", "amd64":
		return x86_64.NovoBackend(), nil
	case "arm64", "aarch64":
		return arm64.NovoBackend(), nil
	default:
		return nil, fmt.Errorf("arquitetura de assembly não suportada: %s", arch)
	}
}
