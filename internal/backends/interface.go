package backends

import "github.com/khevencolino/Vega/internal/parser"

// Backend transforma uma expressão já analisada em uma listagem textual.
// A geração é pura: a mesma árvore sempre produz a mesma listagem.
type Backend interface {
	Compilar(expressao parser.Expressao) (string, error)
	Nome() string
	Extensao() string
}
