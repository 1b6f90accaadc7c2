package bytecode

import (
	"fmt"

	"github.com/khevencolino/Vega/internal/utils"
)

// VM executa bytecode sobre uma pilha de avaliação que cresce sob
// demanda: a profundidade necessária é a do aninhamento da expressão
type VM struct {
	stack []int64
	pc    int // program counter
}

// NovaVM cria uma nova máquina virtual
func NovaVM() *VM {
	return &VM{
		stack: make([]int64, 0, 256),
	}
}

// Executar roda as instruções e devolve o valor no topo da pilha ao
// encontrar HALT
func (vm *VM) Executar(instructions []Instruction) (int64, error) {
	vm.stack = vm.stack[:0]
	vm.pc = 0

	for vm.pc < len(instructions) {
		instr := instructions[vm.pc]

		switch instr.OpCode {
		case OP_CONST:
			vm.push(instr.Operand)

		case OP_ADD:
			b := vm.pop()
			a := vm.pop()
			vm.push(a + b)

		case OP_SUB:
			b := vm.pop()
			a := vm.pop()
			vm.push(a - b)

		case OP_MUL:
			b := vm.pop()
			a := vm.pop()
			vm.push(a * b)

		case OP_DIV:
			b := vm.pop()
			a := vm.pop()
			if b == 0 {
				return 0, utils.NovoErro("divisão por zero", 1, instr.Coluna, "")
			}
			// Divisão inteira do Go trunca em direção a zero
			vm.push(a / b)

		case OP_HALT:
			return vm.peek(), nil

		default:
			return 0, fmt.Errorf("opcode desconhecido: %d", instr.OpCode)
		}

		vm.pc++
	}

	return 0, fmt.Errorf("bytecode sem HALT")
}

func (vm *VM) push(value int64) {
	vm.stack = append(vm.stack, value)
}

// pop e peek só veem pilha vazia com bytecode malformado, que o gerador
// nunca produz
func (vm *VM) pop() int64 {
	if len(vm.stack) == 0 {
		panic("stack underflow")
	}
	value := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return value
}

func (vm *VM) peek() int64 {
	if len(vm.stack) == 0 {
		panic("stack empty")
	}
	return vm.stack[len(vm.stack)-1]
}
