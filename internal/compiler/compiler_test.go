package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khevencolino/Vega/internal/utils"
)

func TestCompilarExpressaoAssembly(t *testing.T) {
	listagem, err := NovoCompilador().CompilarExpressao("1+2*3", "assembly", "x86_64")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !strings.HasPrefix(listagem, ".section .text\n.global main\n") {
		t.Errorf("listagem sem o preâmbulo esperado:\n%s", listagem)
	}
	if !strings.HasSuffix(listagem, "    pop %rax\n    ret\n") {
		t.Errorf("listagem sem o epílogo esperado:\n%s", listagem)
	}
}

func TestCompilarExpressaoTodosOsBackends(t *testing.T) {
	tests := []struct {
		backend string
		arch    string
		trecho  string
	}{
		{"assembly", "x86_64", "idiv"},
		{"assembly", "arm64", "sdiv"},
		{"bytecode", "", "DIV"},
		{"interpreter", "", "3\n"},
		{"llvm", "", "sdiv"},
	}

	for _, tc := range tests {
		t.Run(tc.backend+tc.arch, func(t *testing.T) {
			listagem, err := NovoCompilador().CompilarExpressao("7/2", tc.backend, tc.arch)
			if err != nil {
				t.Fatalf("backend %s: erro inesperado: %v", tc.backend, err)
			}
			if !strings.Contains(listagem, tc.trecho) {
				t.Errorf("backend %s: saída sem %q:\n%s", tc.backend, tc.trecho, listagem)
			}
		})
	}
}

func TestCompilarExpressaoApelidosDeBackend(t *testing.T) {
	for _, apelido := range []string{"asm", "native", "bc", "vm", "interp", "ast", "llvmir", "ir"} {
		if _, err := NovoCompilador().CompilarExpressao("1+1", apelido, "x86_64"); err != nil {
			t.Errorf("apelido %q deveria resolver um backend: %v", apelido, err)
		}
	}
}

func TestCompilarExpressaoIdempotente(t *testing.T) {
	compilador := NovoCompilador()

	primeira, err := compilador.CompilarExpressao("(1+2)*3-4/2", "assembly", "x86_64")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	segunda, err := compilador.CompilarExpressao("(1+2)*3-4/2", "assembly", "x86_64")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if primeira != segunda {
		t.Errorf("listagens divergem byte a byte:\n%q\nvs\n%q", primeira, segunda)
	}
}

func TestCompilarParaArquivo(t *testing.T) {
	// Nome sem extensão recebe a extensão do backend
	saida := filepath.Join(t.TempDir(), "programa")

	arquivoGerado, err := NovoCompilador().CompilarParaArquivo("1+2", "assembly", "x86_64", saida)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if arquivoGerado != saida+".s" {
		t.Errorf("arquivo gerado %q, esperava %q", arquivoGerado, saida+".s")
	}

	conteudo, err := os.ReadFile(arquivoGerado)
	if err != nil {
		t.Fatalf("erro ao ler a listagem gravada: %v", err)
	}
	if !strings.HasSuffix(string(conteudo), "    pop %rax\n    ret\n") {
		t.Errorf("listagem gravada sem o epílogo esperado:\n%s", conteudo)
	}
}

func TestCompilarParaArquivoRespeitaExtensaoExplicita(t *testing.T) {
	saida := filepath.Join(t.TempDir(), "modulo.ll")

	arquivoGerado, err := NovoCompilador().CompilarParaArquivo("1+2", "llvm", "", saida)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if arquivoGerado != saida {
		t.Errorf("arquivo gerado %q, esperava %q", arquivoGerado, saida)
	}
}

func TestCompilarExpressaoAninhamentoProfundo(t *testing.T) {
	// 1+(1+(1+(...))) com 300 níveis: todo o pipeline precisa terminar
	// sem pânico, inclusive a VM de bytecode
	entrada := strings.Repeat("1+(", 300) + "1" + strings.Repeat(")", 300)

	listagem, err := NovoCompilador().CompilarExpressao(entrada, "bytecode", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(listagem, "HALT") {
		t.Errorf("disassembly sem HALT:\n%s", listagem)
	}
}

func TestCompilarExpressaoErros(t *testing.T) {
	tests := []struct {
		nome    string
		entrada string
	}{
		{"erro léxico", "1+@"},
		{"operador pendurado", "1+"},
		{"parêntese não fechado", "1+(2"},
		{"tokens sobrando", "1 2"},
	}

	for _, tc := range tests {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := NovoCompilador().CompilarExpressao(tc.entrada, "assembly", "x86_64")
			if err == nil {
				t.Fatalf("CompilarExpressao(%q) deveria falhar", tc.entrada)
			}

			var erroCompilador *utils.CompilerError
			if !errors.As(err, &erroCompilador) {
				t.Fatalf("esperava *utils.CompilerError, veio %T", err)
			}
		})
	}
}

func TestCompilarExpressaoBackendDesconhecido(t *testing.T) {
	_, err := NovoCompilador().CompilarExpressao("1", "cobol", "")
	if err == nil {
		t.Fatal("esperava erro para backend desconhecido")
	}
}

func TestCompilarExpressaoArquiteturaDesconhecida(t *testing.T) {
	_, err := NovoCompilador().CompilarExpressao("1", "assembly", "riscv")
	if err == nil {
		t.Fatal("esperava erro para arquitetura desconhecida")
	}
}
