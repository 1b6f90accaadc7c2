package lexer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/khevencolino/Vega/internal/utils"
)

// Lexer representa o analisador léxico
type Lexer struct {
	entrada string                       // Expressão de entrada
	posicao int                          // Posição atual na entrada
	linha   int                          // Linha atual
	coluna  int                          // Coluna atual
	padroes map[TokenType]*regexp.Regexp // Padrões regex para cada tipo de token
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string) *Lexer {
	lexer := &Lexer{
		entrada: entrada,
		linha:   1,
		coluna:  1,
	}
	lexer.inicializarPadroes()
	return lexer
}

// inicializarPadroes inicializa os padrões regex para cada tipo de token
func (l *Lexer) inicializarPadroes() {
	l.padroes = map[TokenType]*regexp.Regexp{
		NUMBER:     regexp.MustCompile(`^\d+`), // Números: 123, 456
		PLUS:       regexp.MustCompile(`^\+`),  // Adição: +
		MINUS:      regexp.MustCompile(`^-`),   // Subtração: -
		MULTIPLY:   regexp.MustCompile(`^\*`),  // Multiplicação: *
		DIVIDE:     regexp.MustCompile(`^/`),   // Divisão: /
		LPAREN:     regexp.MustCompile(`^\(`),  // Parêntese esquerdo: (
		RPAREN:     regexp.MustCompile(`^\)`),  // Parêntese direito: )
		WHITESPACE: regexp.MustCompile(`^\s+`), // Espaços em branco
	}
}

// Tokenizar converte a entrada em uma lista de tokens terminada por EOF
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for {
		token, err := l.proximoToken()
		if err != nil {
			return nil, err
		}

		// Pula espaços em branco mas adiciona outros tokens
		if token.Type != WHITESPACE {
			tokens = append(tokens, token)
		}

		if token.Type == EOF {
			break
		}
	}

	return tokens, nil
}

// proximoToken encontra o próximo token
func (l *Lexer) proximoToken() (Token, error) {
	if !l.temMais() {
		return NovoToken(EOF, "", l.obterPosicaoAtual()), nil
	}

	posicaoAtual := l.obterPosicaoAtual()
	restante := l.entrada[l.posicao:]

	tiposToken := []TokenType{NUMBER, PLUS, MINUS, MULTIPLY, DIVIDE, LPAREN, RPAREN, WHITESPACE}

	for _, tipoToken := range tiposToken {
		match := l.padroes[tipoToken].FindString(restante)
		if match == "" {
			continue
		}

		token := NovoToken(tipoToken, match, posicaoAtual)
		if tipoToken == NUMBER {
			valor, err := strconv.ParseInt(match, 10, 64)
			if err != nil {
				// Literal além de 64 bits: erro léxico, nunca truncamento
				return Token{}, utils.NovoErroComOffset(
					"número muito grande",
					posicaoAtual.Line,
					posicaoAtual.Column,
					posicaoAtual.Offset,
					fmt.Sprintf("'%s' não cabe em um inteiro de 64 bits", match),
				)
			}
			token.Valor = valor
		}

		l.avancar(len(match))
		return token, nil
	}

	// Caractere inválido
	caractereInvalido := string(l.espiar())
	return Token{}, utils.NovoErroComOffset(
		"token inválido",
		posicaoAtual.Line,
		posicaoAtual.Column,
		posicaoAtual.Offset,
		fmt.Sprintf("caractere '%s' não reconhecido", caractereInvalido),
	)
}

// obterPosicaoAtual retorna a posição atual na entrada
func (l *Lexer) obterPosicaoAtual() Position {
	return NovaPosicao(l.linha, l.coluna, l.posicao)
}

// avancar move a posição do lexer para frente
func (l *Lexer) avancar(comprimento int) {
	for i := 0; i < comprimento; i++ {
		if l.posicao < len(l.entrada) {
			if l.entrada[l.posicao] == '\n' {
				l.linha++
				l.coluna = 1
			} else {
				l.coluna++
			}
			l.posicao++
		}
	}
}

// espiar retorna o caractere atual sem avançar
func (l *Lexer) espiar() byte {
	if l.posicao >= len(l.entrada) {
		return 0
	}
	return l.entrada[l.posicao]
}

// temMais verifica se há mais caracteres para processar
func (l *Lexer) temMais() bool {
	return l.posicao < len(l.entrada)
}

// ImprimirTokens imprime todos os tokens de forma formatada
func ImprimirTokens(tokens []Token) {
	fmt.Printf("%-10s %-15s %-20s\n", "TIPO", "VALOR", "POSIÇÃO")
	fmt.Println(strings.Repeat("-", 50))

	for _, token := range tokens {
		if token.Type != EOF {
			fmt.Printf("%-10s %-15s %-20s\n", token.Type, token.Value, token.Position)
		}
	}
}
