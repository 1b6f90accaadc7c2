package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/khevencolino/Vega/internal/compiler"
	"github.com/khevencolino/Vega/internal/debug"
	"github.com/khevencolino/Vega/internal/utils"
)

func main() {
	opcoes, err := processarArgumentos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help para ver as opções\n")
		os.Exit(1)
	}

	if opcoes.help {
		mostrarAjuda()
		return
	}

	debug.Ativar(opcoes.debug)

	entrada := opcoes.expressao
	if opcoes.arquivo != "" {
		entrada, err = utils.LerExpressao(opcoes.arquivo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
			os.Exit(1)
		}
	}

	compilador := compiler.NovoCompilador()

	if opcoes.saida != "" {
		arquivoGerado, err := compilador.CompilarParaArquivo(entrada, opcoes.backend, opcoes.arch, opcoes.saida)
		if err != nil {
			reportarErro(err, entrada)
		}
		debug.Printf("Listagem escrita em %s\n", arquivoGerado)
		return
	}

	listagem, err := compilador.CompilarExpressao(entrada, opcoes.backend, opcoes.arch)
	if err != nil {
		reportarErro(err, entrada)
	}
	fmt.Print(listagem)
}

// reportarErro imprime o diagnóstico no stderr e encerra com status 1
func reportarErro(err error, entrada string) {
	// Erros léxicos e sintáticos apontam o offset na entrada original
	var erroCompilador *utils.CompilerError
	if errors.As(err, &erroCompilador) {
		fmt.Fprintln(os.Stderr, erroCompilador.Diagnostico(entrada))
	} else {
		fmt.Fprintf(os.Stderr, "Erro de compilação: %v\n", err)
	}
	os.Exit(1)
}

type opcoesCLI struct {
	expressao string
	backend   string
	arch      string
	saida     string
	arquivo   string
	debug     bool
	help      bool
}

func processarArgumentos() (opcoesCLI, error) {
	backend := flag.String("backend", "assembly", "Backend a ser usado (assembly, bytecode, interpreter, llvm)")
	arch := flag.String("arch", "x86_64", "Arquitetura para assembly (x86_64, arm64)")
	saida := flag.String("saida", "", "Escreve a listagem em arquivo em vez do stdout")
	arquivo := flag.String("arquivo", "", "Lê a expressão de um arquivo em vez do argumento")
	debugFlag := flag.Bool("debug", false, "Ativar mensagens de debug")
	help := flag.Bool("help", false, "Mostra ajuda")

	flag.Parse()

	o := opcoesCLI{
		backend: *backend,
		arch:    *arch,
		saida:   *saida,
		arquivo: *arquivo,
		debug:   *debugFlag,
		help:    *help,
	}

	if o.help {
		return o, nil
	}

	args := flag.Args()
	if o.arquivo != "" {
		if len(args) != 0 {
			return o, fmt.Errorf("com -arquivo não passe a expressão como argumento")
		}
		return o, nil
	}

	// Exatamente um argumento: a expressão
	if len(args) != 1 {
		return o, fmt.Errorf("esperado exatamente um argumento com a expressão, recebido %d", len(args))
	}
	o.expressao = args[0]

	return o, nil
}

func mostrarAjuda() {
	fmt.Printf(`Compilador Vega - Expressões Aritméticas

USO:
    vega-compiler [flags] "<expressão>"

FLAGS:
    -backend=<tipo>     Backend a ser usado (padrão: assembly)
    -arch=<arquitetura> Arquitetura para assembly (padrão: x86_64)
    -saida=<arquivo>    Escreve a listagem em arquivo em vez do stdout
                        (nome sem extensão recebe a extensão do backend)
    -arquivo=<arquivo>  Lê a expressão de um arquivo em vez do argumento
    -debug              Ativar mensagens de debug (tokens e árvore)
    -help               Mostra esta ajuda

BACKENDS DISPONÍVEIS:

assembly, asm, native
    - Listagem assembly com disciplina de pilha
    - Arquiteturas: x86_64 (AT&T), arm64

bytecode, bc, vm
    - Bytecode de máquina de pilha executado na VM
    - Listagem é o disassembly

interpreter, interp, ast
    - Interpretação direta da AST
    - Saída é o resultado da expressão

llvm, llvmir, ir
    - Módulo LLVM IR com @main devolvendo o resultado

EXEMPLOS:
    vega-compiler "1+2*3"                       # Assembly x86-64 no stdout
    vega-compiler -arch=arm64 "(1+2)*3"         # Assembly ARM64
    vega-compiler -backend=interpreter "8-3-2"  # Imprime 3
    vega-compiler -saida=programa.s "42"        # Escreve em programa.s
    vega-compiler -debug "1+2"                  # Tokens e árvore sintática
`)
}
