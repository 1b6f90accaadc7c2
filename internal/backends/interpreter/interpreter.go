package interpreter

import (
	"fmt"

	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/parser"
	"github.com/khevencolino/Vega/internal/utils"
)

// Backend avalia a AST diretamente; a "listagem" é o resultado numérico
type Backend struct{}

// NovoBackend cria um novo backend interpretador
func NovoBackend() *Backend {
	return &Backend{}
}

func (i *Backend) Nome() string     { return "Interpretador AST" }
func (i *Backend) Extensao() string { return "" }

// Compilar interpreta a expressão e devolve o resultado formatado
func (i *Backend) Compilar(expressao parser.Expressao) (string, error) {
	debug.Printf("Interpretando diretamente da AST...\n")

	resultado, err := i.Interpretar(expressao)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d\n", resultado), nil
}

// Interpretar executa uma expressão e retorna o resultado
func (i *Backend) Interpretar(expressao parser.Expressao) (int64, error) {
	resultado := expressao.Aceitar(i)
	if erro, ok := resultado.(error); ok {
		return 0, erro
	}
	return resultado.(int64), nil
}

// VisitarConstante implementa visitor para constantes
func (i *Backend) VisitarConstante(constante *parser.Constante) interface{} {
	return constante.Valor
}

// VisitarOperacaoBinaria implementa visitor para operações binárias
func (i *Backend) VisitarOperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	esquerdoInterface := operacao.OperandoEsquerdo.Aceitar(i)
	if erro, ok := esquerdoInterface.(error); ok {
		return erro
	}
	esquerdo := esquerdoInterface.(int64)

	direitoInterface := operacao.OperandoDireito.Aceitar(i)
	if erro, ok := direitoInterface.(error); ok {
		return erro
	}
	direito := direitoInterface.(int64)

	switch operacao.Operador {
	case parser.ADICAO:
		return esquerdo + direito
	case parser.SUBTRACAO:
		return esquerdo - direito
	case parser.MULTIPLICACAO:
		return esquerdo * direito
	case parser.DIVISAO:
		if direito == 0 {
			return utils.NovoErroComOffset(
				"divisão por zero",
				operacao.Token.Position.Line,
				operacao.Token.Position.Column,
				operacao.Token.Position.Offset,
				"",
			)
		}
		// Divisão inteira do Go trunca em direção a zero, como idiv/sdiv
		return esquerdo / direito
	default:
		return utils.NovoErro(
			"operador desconhecido",
			operacao.Token.Position.Line,
			operacao.Token.Position.Column,
			"",
		)
	}
}
