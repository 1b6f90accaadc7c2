package debug

import "fmt"

// Enabled controla se as mensagens de debug são impressas
var Enabled bool = false

// Ativar liga ou desliga as mensagens de debug
func Ativar(ativo bool) {
	Enabled = ativo
}

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		fmt.Println(args...)
	}
}
