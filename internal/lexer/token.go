package lexer

import "fmt"

// TokenType representa o tipo de token
type TokenType int

const (
	NUMBER     TokenType = iota // Literais inteiros
	PLUS                        // Operador de adição (+)
	MINUS                       // Operador de subtração (-)
	MULTIPLY                    // Operador de multiplicação (*)
	DIVIDE                      // Operador de divisão (/)
	LPAREN                      // Parêntese esquerdo (
	RPAREN                      // Parêntese direito )
	WHITESPACE                  // Espaços em branco (nunca sai da tokenização)
	EOF                         // Fim da entrada
)

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case WHITESPACE:
		return "WHITESPACE"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token representa um token encontrado na expressão de entrada
type Token struct {
	Type     TokenType // Tipo do token
	Value    string    // Texto casado na entrada
	Valor    int64     // Valor numérico, quando Type == NUMBER
	Position Position  // Posição na entrada
}

// String retorna uma representação em string do token
func (t Token) String() string {
	return fmt.Sprintf("%s('%s') em %s", t.Type, t.Value, t.Position)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Position) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}
