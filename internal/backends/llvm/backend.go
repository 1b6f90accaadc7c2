package llvm

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/parser"
)

// Backend gera LLVM IR: um módulo com @main devolvendo o resultado da
// expressão em i64
type Backend struct {
	module *ir.Module
	block  *ir.Block
}

// NovoBackend cria um novo backend LLVM
func NovoBackend() *Backend {
	return &Backend{}
}

func (l *Backend) Nome() string     { return "LLVM IR" }
func (l *Backend) Extensao() string { return ".ll" }

// Compilar gera o módulo IR para a expressão
func (l *Backend) Compilar(expressao parser.Expressao) (string, error) {
	debug.Printf("Compilando para LLVM IR...\n")

	l.module = ir.NewModule()
	principal := l.module.NewFunc("main", types.I64)
	l.block = principal.NewBlock("entry")

	resultado := l.gerarExpressao(expressao)
	l.block.NewRet(resultado)

	return l.module.String(), nil
}

func (l *Backend) gerarExpressao(expressao parser.Expressao) value.Value {
	return expressao.Aceitar(l).(value.Value)
}

// VisitarConstante devolve o literal como constante i64
func (l *Backend) VisitarConstante(constante *parser.Constante) interface{} {
	return constant.NewInt(types.I64, constante.Valor)
}

// VisitarOperacaoBinaria emite a instrução correspondente ao operador
func (l *Backend) VisitarOperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	esquerdo := l.gerarExpressao(operacao.OperandoEsquerdo)
	direito := l.gerarExpressao(operacao.OperandoDireito)

	switch operacao.Operador {
	case parser.ADICAO:
		return l.block.NewAdd(esquerdo, direito)
	case parser.SUBTRACAO:
		return l.block.NewSub(esquerdo, direito)
	case parser.MULTIPLICACAO:
		return l.block.NewMul(esquerdo, direito)
	case parser.DIVISAO:
		// sdiv trunca em direção a zero; divisão por zero é o
		// comportamento do alvo, como nos backends de assembly
		return l.block.NewSDiv(esquerdo, direito)
	default:
		return constant.NewInt(types.I64, 0)
	}
}
