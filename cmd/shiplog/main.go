package main

import "github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/cli"

func main() {
	cli.Execute()
}
