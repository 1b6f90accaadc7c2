package x86_64

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/parser"
)

// Backend gera assembly x86-64 (sintaxe AT&T) com disciplina de pilha:
// cada subexpressão deixa seu resultado no topo da pilha de hardware
type Backend struct {
	output strings.Builder
}

// NovoBackend cria um novo backend x86-64
func NovoBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Nome() string     { return "Assembly x86-64" }
func (b *Backend) Extensao() string { return ".s" }

// Compilar gera a listagem completa para a expressão
func (b *Backend) Compilar(expressao parser.Expressao) (string, error) {
	debug.Printf("Compilando para Assembly x86-64...\n")

	b.output.Reset()
	b.gerarPrologo()
	expressao.Aceitar(b)
	b.gerarEpilogo()

	return b.output.String(), nil
}

// VisitarConstante empilha o valor do literal
func (b *Backend) VisitarConstante(constante *parser.Constante) interface{} {
	b.output.WriteString(fmt.Sprintf("    push $%d\n", constante.Valor))
	return nil
}

// VisitarOperacaoBinaria gera os dois operandos e combina os dois valores
// do topo da pilha; %rdi recebe o direito e %rax o esquerdo, ordem que
// importa para subtração e divisão
func (b *Backend) VisitarOperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	operacao.OperandoEsquerdo.Aceitar(b)
	operacao.OperandoDireito.Aceitar(b)

	b.output.WriteString("    pop %rdi\n")
	b.output.WriteString("    pop %rax\n")

	switch operacao.Operador {
	case parser.ADICAO:
		b.output.WriteString("    add %rdi, %rax\n")
	case parser.SUBTRACAO:
		b.output.WriteString("    sub %rdi, %rax\n")
	case parser.MULTIPLICACAO:
		b.output.WriteString("    imul %rdi, %rax\n")
	case parser.DIVISAO:
		// idiv trunca em direção a zero; divisão por zero fica com a
		// semântica nativa da máquina
		b.output.WriteString("    cqo\n")
		b.output.WriteString("    idiv %rdi\n")
	}

	b.output.WriteString("    push %rax\n")
	return nil
}

func (b *Backend) gerarPrologo() {
	b.output.WriteString(".section .text\n")
	b.output.WriteString(".global main\n\n")
	b.output.WriteString("main:\n")
}

// gerarEpilogo move o resultado do topo da pilha para o registrador de
// retorno da convenção de chamada
func (b *Backend) gerarEpilogo() {
	b.output.WriteString("    pop %rax\n")
	b.output.WriteString("    ret\n")
}
