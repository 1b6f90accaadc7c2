package arm64

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
	listagem, err := NovoBackend().Compilar(arvore)
	if err != nil {
		t.Fatalf("Compilar(%q): %v", entrada, err)
	}
	return listagem
}

func TestCompilarSubtracaoOrdemDosOperandos(t *testing.T) {
	// O direito sai primeiro da pilha (x1), o esquerdo depois (x0)
	listagem := compilar(t, "8-3")

	corpo := "    ldr x1, [sp], #16\n" +
		"    ldr x0, [sp], #16\n" +
		"    sub x0, x0, x1\n"
	if !strings.Contains(listagem, corpo) {
		t.Errorf("listagem de \"8-3\" sem a sequência esperada:\n%s", listagem)
	}
}

func TestCompilarDivisao(t *testing.T) {
	listagem := compilar(t, "7/2")

	if !strings.Contains(listagem, "    sdiv x0, x0, x1\n") {
		t.Errorf("listagem de \"7/2\" sem sdiv:\n%s", listagem)
	}
}

func TestCompilarEpilogo(t *testing.T) {
	listagem := compilar(t, "1+2")

	sufixo := "    ldr x0, [sp], #16\n" +
		"    ldp x29, x30, [sp], #16\n" +
		"    ret\n"
	if !strings.HasSuffix(listagem, sufixo) {
		t.Errorf("listagem não termina desempilhando o resultado em x0:\n%s", listagem)
	}
}

func TestCompilarIdempotente(t *testing.T) {
	primeira := compilar(t, "(1+2)*3")
	segunda := compilar(t, "(1+2)*3")

	if primeira != segunda {
		t.Errorf("listagens divergem entre execuções:\n%s\nvs\n%s", primeira, segunda)
	}
}
