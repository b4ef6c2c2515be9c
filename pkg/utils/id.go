package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador curto usado como chave primária das entidades
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 6)
}
