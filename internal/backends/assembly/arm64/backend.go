package arm64

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/parser"
)

// Backend gera assembly ARM64 com a mesma disciplina de pilha do backend
// x86-64: resultados intermediários vivem na pilha de hardware
type Backend struct {
	output strings.Builder
}

// NovoBackend cria um novo backend ARM64
func NovoBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Nome() string     { return "Assembly ARM64" }
func (b *Backend) Extensao() string { return ".s" }

// Compilar gera a listagem completa para a expressão
func (b *Backend) Compilar(expressao parser.Expressao) (string, error) {
	debug.Printf("Compilando para Assembly ARM64...\n")

	b.output.Reset()
	b.gerarPrologo()
	expressao.Aceitar(b)
	b.gerarEpilogo()

	return b.output.String(), nil
}

// VisitarConstante materializa o literal e o empilha
func (b *Backend) VisitarConstante(constante *parser.Constante) interface{} {
	// ldr com literal pool aceita qualquer imediato de 64 bits
	b.output.WriteString(fmt.Sprintf("    ldr x0, =%d\n", constante.Valor))
	b.output.WriteString("    str x0, [sp, #-16]!\n")
	return nil
}

// VisitarOperacaoBinaria desempilha direito em x1 e esquerdo em x0,
// opera e empilha o resultado
func (b *Backend) VisitarOperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	operacao.OperandoEsquerdo.Aceitar(b)
	operacao.OperandoDireito.Aceitar(b)

	b.output.WriteString("    ldr x1, [sp], #16\n")
	b.output.WriteString("    ldr x0, [sp], #16\n")

	switch operacao.Operador {
	case parser.ADICAO:
		b.output.WriteString("    add x0, x0, x1\n")
	case parser.SUBTRACAO:
		b.output.WriteString("    sub x0, x0, x1\n")
	case parser.MULTIPLICACAO:
		b.output.WriteString("    mul x0, x0, x1\n")
	case parser.DIVISAO:
		// sdiv trunca em direção a zero
		b.output.WriteString("    sdiv x0, x0, x1\n")
	}

	b.output.WriteString("    str x0, [sp, #-16]!\n")
	return nil
}

func (b *Backend) gerarPrologo() {
	b.output.WriteString(".section .text\n")
	b.output.WriteString(".global main\n")
	b.output.WriteString(".align 2\n\n")
	b.output.WriteString("main:\n")
	b.output.WriteString("    stp x29, x30, [sp, #-16]!\n")
	b.output.WriteString("    mov x29, sp\n")
}

// gerarEpilogo desempilha o resultado para x0, o registrador de retorno
func (b *Backend) gerarEpilogo() {
	b.output.WriteString("    ldr x0, [sp], #16\n")
	b.output.WriteString("    ldp x29, x30, [sp], #16\n")
	b.output.WriteString("    ret\n")
}
