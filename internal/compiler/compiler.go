package compiler

import (
	"fmt"
	"path/filepath"

	"github.com/khevencolino/Vega/internal/backends"
	"github.com/khevencolino/Vega/internal/backends/assembly"
	"github.com/khevencolino/Vega/internal/backends/bytecode"
	"github.com/khevencolino/Vega/internal/backends/interpreter"
	"github.com/khevencolino/Vega/internal/backends/llvm"
	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/lexer"
	"github.com/khevencolino/Vega/internal/parser"
	"github.com/khevencolino/Vega/internal/utils"
)

// Compiler amarra o pipeline: análise léxica, análise sintática e geração
type Compiler struct{}

// NovoCompilador cria um novo compilador
func NovoCompilador() *Compiler {
	return &Compiler{}
}

// CompilarExpressao compila uma expressão e devolve a listagem gerada
func (c *Compiler) CompilarExpressao(entrada string, nomeBackend string, arch string) (string, error) {
	backend, err := criarBackend(nomeBackend, arch)
	if err != nil {
		return "", err
	}
	return c.compilarCom(entrada, backend)
}

// CompilarParaArquivo compila e grava a listagem; um nome de arquivo sem
// extensão recebe a extensão do backend. Devolve o nome efetivo
func (c *Compiler) CompilarParaArquivo(entrada string, nomeBackend string, arch string, nomeArquivo string) (string, error) {
	backend, err := criarBackend(nomeBackend, arch)
	if err != nil {
		return "", err
	}

	listagem, err := c.compilarCom(entrada, backend)
	if err != nil {
		return "", err
	}

	if filepath.Ext(nomeArquivo) == "" && backend.Extensao() != "" {
		nomeArquivo += backend.Extensao()
	}
	return nomeArquivo, utils.EscreverListagem(nomeArquivo, listagem)
}

// compilarCom roda o pipeline sobre a entrada com um backend já escolhido
func (c *Compiler) compilarCom(entrada string, backend backends.Backend) (string, error) {
	tokens, err := c.tokenizar(entrada)
	if err != nil {
		return "", err
	}

	if debug.Enabled {
		fmt.Println("Tokens encontrados:")
		lexer.ImprimirTokens(tokens)
	}

	arvore, err := c.analisarSintaxe(tokens)
	if err != nil {
		return "", err
	}

	if debug.Enabled {
		parser.NovoVisualizador().ImprimirArvore(arvore)
	}

	debug.Printf("Backend: %s\n", backend.Nome())

	return backend.Compilar(arvore)
}

// tokenizar realiza análise léxica
func (c *Compiler) tokenizar(entrada string) ([]lexer.Token, error) {
	return lexer.NovoLexer(entrada).Tokenizar()
}

// analisarSintaxe realiza análise sintática sobre os tokens
func (c *Compiler) analisarSintaxe(tokens []lexer.Token) (parser.Expressao, error) {
	return parser.NovoParser(tokens).AnalisarExpressao()
}

// criarBackend escolhe o backend pelo nome
func criarBackend(nome string, arch string) (backends.Backend, error) {
	switch nome {
	case "assembly", "asm", "native":
		return assembly.NovoBackendAssembly(arch)
	case "bytecode", "bc", "vm":
		return bytecode.NovoBackend(), nil
	case "interpreter", "interp", "ast":
		return interpreter.NovoBackend(), nil
	case "llvm", "llvmir", "ir":
		return llvm.NovoBackend(), nil
	default:
		return nil, fmt.Errorf("backend desconhecido: %s", nome)
	}
}
