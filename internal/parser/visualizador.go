package parser

import (
	"fmt"
	"strconv"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// ImprimirArvore imprime a árvore no console
func (v *VisualizadorArvore) ImprimirArvore(expressao Expressao) {
	fmt.Println("=== Árvore Sintática ===")
	fmt.Println(v.CriarArvore(expressao))
	fmt.Println()
}

// CriarArvore converte a AST para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(expressao Expressao) *tree.Tree {
	switch expr := expressao.(type) {
	case *Constante:
		// Folha da árvore: apenas o número
		return tree.NewTree(tree.NodeString(strconv.FormatInt(expr.Valor, 10)))

	case *OperacaoBinaria:
		// Nó interno: operador com dois filhos
		arvore := tree.NewTree(tree.NodeString(expr.Operador.String()))

		v.adicionarSubarvore(arvore, v.CriarArvore(expr.OperandoEsquerdo))
		v.adicionarSubarvore(arvore, v.CriarArvore(expr.OperandoDireito))

		return arvore

	default:
		return tree.NewTree(tree.NodeString("?"))
	}
}

// adicionarSubarvore adiciona uma subárvore como filho
func (v *VisualizadorArvore) adicionarSubarvore(pai *tree.Tree, filho *tree.Tree) {
	novoFilho := pai.AddChild(filho.Val())
	v.copiarFilhos(filho, novoFilho)
}

// copiarFilhos copia todos os filhos de uma árvore para outra
func (v *VisualizadorArvore) copiarFilhos(origem *tree.Tree, destino *tree.Tree) {
	for i := 0; ; i++ {
		filho, err := origem.Child(i)
		if err != nil {
			break // Não há mais filhos
		}

		novoFilho := destino.AddChild(filho.Val())
		v.copiarFilhos(filho, novoFilho)
	}
}
