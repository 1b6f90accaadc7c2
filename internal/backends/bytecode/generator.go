package bytecode

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/parser"
)

// Backend compila a expressão para bytecode, executa na VM e devolve o
// disassembly como listagem
type Backend struct {
	instructions []Instruction
}

// NovoBackend cria um novo backend de bytecode
func NovoBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Nome() string     { return "Bytecode + VM" }
func (b *Backend) Extensao() string { return ".bc" }

// Compilar gera o bytecode da expressão e o executa na VM
func (b *Backend) Compilar(expressao parser.Expressao) (string, error) {
	debug.Printf("Compilando para Bytecode...\n")

	b.instructions = b.instructions[:0]
	expressao.Aceitar(b)
	b.emit(OP_HALT, 0, 0)

	debug.Printf("Bytecode gerado (%d instruções)\n", len(b.instructions))

	vm := NovaVM()
	resultado, err := vm.Executar(b.instructions)
	if err != nil {
		return "", err
	}
	debug.Printf("Resultado da VM: %d\n", resultado)

	return b.disassembly(), nil
}

// Instrucoes devolve o bytecode gerado na última compilação
func (b *Backend) Instrucoes() []Instruction {
	return b.instructions
}

// VisitarConstante emite CONST com o valor do literal
func (b *Backend) VisitarConstante(constante *parser.Constante) interface{} {
	b.emit(OP_CONST, constante.Valor, constante.Token.Position.Column)
	return nil
}

// VisitarOperacaoBinaria emite os operandos em pós-ordem e depois o opcode
func (b *Backend) VisitarOperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	operacao.OperandoEsquerdo.Aceitar(b)
	operacao.OperandoDireito.Aceitar(b)

	coluna := operacao.Token.Position.Column
	switch operacao.Operador {
	case parser.ADICAO:
		b.emit(OP_ADD, 0, coluna)
	case parser.SUBTRACAO:
		b.emit(OP_SUB, 0, coluna)
	case parser.MULTIPLICACAO:
		b.emit(OP_MUL, 0, coluna)
	case parser.DIVISAO:
		b.emit(OP_DIV, 0, coluna)
	}
	return nil
}

func (b *Backend) emit(op OpCode, operand int64, coluna int) {
	b.instructions = append(b.instructions, Instruction{
		OpCode:  op,
		Operand: operand,
		Coluna:  coluna,
	})
}

// disassembly formata o bytecode como listagem textual
func (b *Backend) disassembly() string {
	var builder strings.Builder
	for i, instr := range b.instructions {
		builder.WriteString(fmt.Sprintf("%03d: %s\n", i, instr))
	}
	return builder.String()
}
