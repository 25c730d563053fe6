package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 10
)

// GenerateID gera o identificador de uma execução do modelo
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
