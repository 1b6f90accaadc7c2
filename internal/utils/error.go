package utils

import (
	"fmt"
	"strings"
)

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Mensagem string // Mensagem de erro
	Linha    int    // Linha onde ocorreu o erro
	Coluna   int    // Coluna onde ocorreu o erro
	Offset   int    // Posição absoluta na entrada (-1 se desconhecida)
	Detalhes string // Detalhes adicionais do erro
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	if e.Linha > 0 && e.Coluna > 0 {
		var builder strings.Builder
		builder.WriteString(e.Mensagem)
		builder.WriteString(" em linha ")
		builder.WriteString(fmt.Sprintf("%d", e.Linha))
		builder.WriteString(", coluna ")
		builder.WriteString(fmt.Sprintf("%d", e.Coluna))
		if e.Detalhes != "" {
			builder.WriteString(" (")
			builder.WriteString(e.Detalhes)
			builder.WriteString(")")
		}
		return builder.String()
	}
	return e.Mensagem
}

// Diagnostico renderiza o erro apontando o offset na linha da entrada:
//
//	1+@
//	  ^ token inválido
func (e *CompilerError) Diagnostico(entrada string) string {
	if e.Offset < 0 || e.Offset > len(entrada) {
		return e.Error()
	}

	// Isola a linha da entrada que contém o offset
	inicioLinha := strings.LastIndexByte(entrada[:e.Offset], '\n') + 1
	fimLinha := strings.IndexByte(entrada[e.Offset:], '\n')
	if fimLinha < 0 {
		fimLinha = len(entrada)
	} else {
		fimLinha += e.Offset
	}

	var builder strings.Builder
	builder.WriteString(entrada[inicioLinha:fimLinha])
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", e.Offset-inicioLinha))
	builder.WriteString("^ ")
	builder.WriteString(e.Mensagem)
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	return builder.String()
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Offset:   -1,
		Detalhes: detalhes,
	}
}

// NovoErroComOffset cria um erro do compilador apontando um offset da entrada
func NovoErroComOffset(mensagem string, linha, coluna, offset int, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Offset:   offset,
		Detalhes: detalhes,
	}
}
