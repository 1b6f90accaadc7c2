package interpreter

import (
	"errors"
	"testing"

	"github.com/khevencolino/Vega/internal/lexer"
	"github.com/khevencolino/Vega/internal/parser"
	"github.com/khevencolino/Vega/internal/utils"
)

func analisar(t *testing.T, entrada string) parser.Expressao {
	t.Helper()
	tokens, err := lexer.NovoLexer(entrada).Tokenizar()
	if err != nil {
		t.Fatalf("Tokenizar(%q): %v", entrada, err)
	}
	arvore, err := parser.NovoParser(tokens).AnalisarExpressao()
	if err != nil {
		t.Fatalf("AnalisarExpressao(%q): %v", entrada, err)
	}
	return arvore
}

func TestInterpretar(t *testing.T) {
	tests := []struct {
		entrada   string
		resultado int64
	}{
		{"42", 42},
		{"1+2", 3},
		{"1+2*3", 7},
		{"8-3-2", 3},
		{"8/4/2", 1},
		{"(1+2)*3", 9},
		{" 1 + 2 ", 3},
		{"7/2", 3},
		// Divisão de negativo trunca em direção a zero
		{"(1-8)/2", -3},
		{"10+20*3-6/2", 67},
	}

	backend := NovoBackend()
	for _, tc := range tests {
		t.Run(tc.entrada, func(t *testing.T) {
			resultado, err := backend.Interpretar(analisar(t, tc.entrada))
			if err != nil {
				t.Fatalf("Interpretar(%q) erro inesperado: %v", tc.entrada, err)
			}
			if resultado != tc.resultado {
				t.Errorf("Interpretar(%q) = %d, esperava %d", tc.entrada, resultado, tc.resultado)
			}
		})
	}
}

func TestInterpretarDivisaoPorZero(t *testing.T) {
	_, err := NovoBackend().Interpretar(analisar(t, "1+2/0"))
	if err == nil {
		t.Fatal("esperava erro de divisão por zero")
	}

	var erroCompilador *utils.CompilerError
	if !errors.As(err, &erroCompilador) {
		t.Fatalf("esperava *utils.CompilerError, veio %T", err)
	}
	if erroCompilador.Mensagem != "divisão por zero" {
		t.Errorf("mensagem: %q, esperava \"divisão por zero\"", erroCompilador.Mensagem)
	}
}

func TestCompilarDevolveResultadoFormatado(t *testing.T) {
	saida, err := NovoBackend().Compilar(analisar(t, "1+2*3"))
	if err != nil {
		t.Fatalf("Compilar erro inesperado: %v", err)
	}
	if saida != "7\n" {
		t.Errorf("saída %q, esperava \"7\\n\"", saida)
	}
}
