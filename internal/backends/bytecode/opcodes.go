package bytecode

import "fmt"

type OpCode byte

const (
	OP_CONST OpCode = iota // CONST valor
	OP_ADD                 // ADD
	OP_SUB                 // SUB
	OP_MUL                 // MUL
	OP_DIV                 // DIV
	OP_HALT                // HALT
)

// Instruction é uma operação da máquina de pilha
type Instruction struct {
	OpCode  OpCode
	Operand int64
	Coluna  int // coluna da entrada que originou a instrução, para erros
}

func (op OpCode) String() string {
	switch op {
	case OP_CONST:
		return "CONST"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_MUL:
		return "MUL"
	case OP_DIV:
		return "DIV"
	case OP_HALT:
		return "HALT"
	default:
		return "UNKNOWN"
	}
}

// String formata a instrução como uma linha de disassembly
func (i Instruction) String() string {
	if i.OpCode == OP_CONST {
		return fmt.Sprintf("%s %d", i.OpCode, i.Operand)
	}
	return i.OpCode.String()
}
