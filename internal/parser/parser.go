package parser

import (
	"fmt"

	"github.com/khevencolino/Vega/internal/lexer"
	"github.com/khevencolino/Vega/internal/utils"
)

// Precedencia define a precedência dos operadores
type Precedencia int

const (
	PRECEDENCIA_NENHUMA       Precedencia = iota
	PRECEDENCIA_SOMA                      // + -
	PRECEDENCIA_MULTIPLICACAO             // * /
)

// Parser representa o analisador sintático
type Parser struct {
	tokens       []lexer.Token
	posicaoAtual int
}

// NovoParser cria um novo analisador sintático
func NovoParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:       tokens,
		posicaoAtual: 0,
	}
}

// obterPrecedencia retorna a precedência de um operador
func (p *Parser) obterPrecedencia(tokenType lexer.TokenType) Precedencia {
	switch tokenType {
	case lexer.PLUS, lexer.MINUS:
		return PRECEDENCIA_SOMA
	case lexer.MULTIPLY, lexer.DIVIDE:
		return PRECEDENCIA_MULTIPLICACAO
	default:
		return PRECEDENCIA_NENHUMA
	}
}

// AnalisarExpressao analisa uma expressão completa e exige que toda a
// entrada tenha sido consumida até o EOF
func (p *Parser) AnalisarExpressao() (Expressao, error) {
	expressao, err := p.analisarExpressao(PRECEDENCIA_NENHUMA)
	if err != nil {
		return nil, err
	}

	// Sobra de tokens depois de uma expressão completa é erro
	if restante := p.tokenAtual(); restante.Type != lexer.EOF {
		return nil, utils.NovoErroComOffset(
			"entrada inesperada após a expressão",
			restante.Position.Line,
			restante.Position.Column,
			restante.Position.Offset,
			fmt.Sprintf("token '%s' sobrando", restante.Value),
		)
	}

	return expressao, nil
}

// analisarExpressao implementa precedência de operadores usando o algoritmo Pratt
func (p *Parser) analisarExpressao(precedenciaMinima Precedencia) (Expressao, error) {
	// Analisa o lado esquerdo (prefixo)
	esquerda, err := p.analisarPrefixo()
	if err != nil {
		return nil, err
	}

	// Processa operadores binários com precedência adequada
	for {
		tokenAtual := p.tokenAtual()

		if tokenAtual.Type == lexer.EOF || tokenAtual.Type == lexer.RPAREN {
			break
		}

		precedenciaAtual := p.obterPrecedencia(tokenAtual.Type)

		// Se não é um operador binário ou a precedência é menor que a mínima, para
		if precedenciaAtual == PRECEDENCIA_NENHUMA || precedenciaAtual < precedenciaMinima {
			break
		}

		// Consome o operador
		operadorToken := p.proximoToken()
		operador, err := p.tokenParaOperador(operadorToken)
		if err != nil {
			return nil, err
		}

		// Lado direito com precedência maior: operadores de mesma
		// precedência acumulam no operando esquerdo (associativos à esquerda)
		direita, err := p.analisarExpressao(precedenciaAtual + 1)
		if err != nil {
			return nil, err
		}

		esquerda = &OperacaoBinaria{
			OperandoEsquerdo: esquerda,
			Operador:         operador,
			OperandoDireito:  direita,
			Token:            operadorToken,
		}
	}

	return esquerda, nil
}

// analisarPrefixo analisa expressões prefixas (números e expressões parentizadas)
func (p *Parser) analisarPrefixo() (Expressao, error) {
	token := p.proximoToken()

	switch token.Type {
	case lexer.NUMBER:
		return &Constante{Valor: token.Valor, Token: token}, nil

	case lexer.LPAREN:
		// Expressão parentizada
		expressao, err := p.analisarExpressao(PRECEDENCIA_NENHUMA)
		if err != nil {
			return nil, err
		}

		// Verifica parêntese fechando
		if err := p.verificarProximoToken(lexer.RPAREN); err != nil {
			return nil, err
		}

		return expressao, nil

	default:
		return nil, utils.NovoErroComOffset(
			"esperado um número",
			token.Position.Line,
			token.Position.Column,
			token.Position.Offset,
			fmt.Sprintf("esperado número ou '(', encontrado '%s'", token.Value),
		)
	}
}

// tokenParaOperador converte um token em um TipoOperador
func (p *Parser) tokenParaOperador(token lexer.Token) (TipoOperador, error) {
	switch token.Type {
	case lexer.PLUS:
		return ADICAO, nil
	case lexer.MINUS:
		return SUBTRACAO, nil
	case lexer.MULTIPLY:
		return MULTIPLICACAO, nil
	case lexer.DIVIDE:
		return DIVISAO, nil
	default:
		return 0, utils.NovoErroComOffset(
			"operador inválido",
			token.Position.Line,
			token.Position.Column,
			token.Position.Offset,
			fmt.Sprintf("esperado operador (+, -, *, /), encontrado '%s'", token.Value),
		)
	}
}

// verificarProximoToken verifica se o próximo token é do tipo esperado
func (p *Parser) verificarProximoToken(tipoEsperado lexer.TokenType) error {
	token := p.proximoToken()
	if token.Type != tipoEsperado {
		encontrado := fmt.Sprintf("encontrado '%s'", token.Value)
		if token.Type == lexer.EOF {
			encontrado = "encontrado fim da entrada"
		}
		if tipoEsperado == lexer.RPAREN {
			return utils.NovoErroComOffset(
				"esperado ')'",
				token.Position.Line,
				token.Position.Column,
				token.Position.Offset,
				encontrado,
			)
		}
		return utils.NovoErroComOffset(
			"token inesperado",
			token.Position.Line,
			token.Position.Column,
			token.Position.Offset,
			fmt.Sprintf("esperado %s, encontrado %s", tipoEsperado, token.Type),
		)
	}
	return nil
}

// proximoToken retorna o próximo token e avança a posição
func (p *Parser) proximoToken() lexer.Token {
	token := p.tokenAtual()
	if token.Type != lexer.EOF {
		p.posicaoAtual++
	}
	return token
}

// tokenAtual retorna o token atual sem avançar
func (p *Parser) tokenAtual() lexer.Token {
	if p.posicaoAtual >= len(p.tokens) {
		// O lexer sempre termina a sequência com EOF; isto cobre apenas
		// listas de tokens construídas à mão
		return lexer.NovoToken(lexer.EOF, "", lexer.NovaPosicao(0, 0, 0))
	}
	return p.tokens[p.posicaoAtual]
}
