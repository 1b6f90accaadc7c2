package llvm

import (
	"strings"
	"testing"

	"github.com/khevencolino/Vega/internal/lexer"
	"github.com/khevencolino/Vega/internal/parser"
)

func compilar(t *testing.T, entrada string) string {
	t.Helper()
	tokens, err := lexer.NovoLexer(entrada).Tokenizar()
	if err != nil {
		t.Fatalf("Tokenizar(%q): %v", entrada, err)
	}
	arvore, err := parser.NovoParser(tokens).AnalisarExpressao()
	if err != nil {
		t.Fatalf("AnalisarExpressao(%q): %v", entrada, err)
	}
	modulo, err := NovoBackend().Compilar(arvore)
	if err != nil {
		t.Fatalf("Compilar(%q): %v", entrada, err)
	}
	return modulo
}

func TestCompilarModulo(t *testing.T) {
	modulo := compilar(t, "1+2*3")

	for _, trecho := range []string{"define i64 @main()", "mul", "add", "ret i64"} {
		if !strings.Contains(modulo, trecho) {
			t.Errorf("IR sem %q:\n%s", trecho, modulo)
		}
	}
}

func TestCompilarLiteral(t *testing.T) {
	modulo := compilar(t, "42")

	if !strings.Contains(modulo, "ret i64 42") {
		t.Errorf("IR de \"42\" deveria devolver a constante direto:\n%s", modulo)
	}
}

func TestCompilarDivisao(t *testing.T) {
	modulo := compilar(t, "7/2")

	if !strings.Contains(modulo, "sdiv") {
		t.Errorf("IR de \"7/2\" sem sdiv:\n%s", modulo)
	}
}
