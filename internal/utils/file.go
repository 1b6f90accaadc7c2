package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// LerExpressao lê uma expressão de um arquivo, descartando a quebra de
// linha final que editores costumam acrescentar
func LerExpressao(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErro("erro ao ler arquivo", 0, 0, err.Error())
	}
	return strings.TrimRight(string(bytesConteudo), "\r\n"), nil
}

// EscreverListagem escreve a listagem gerada em um arquivo
func EscreverListagem(nomeArquivo string, listagem string) error {
	// Cria o diretório se não existir
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErro("erro ao criar diretório", 0, 0, err.Error())
	}

	if err := os.WriteFile(nomeArquivo, []byte(listagem), 0644); err != nil {
		return NovoErro("erro ao escrever arquivo", 0, 0, err.Error())
	}

	return nil
}
