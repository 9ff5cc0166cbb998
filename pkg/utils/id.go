package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateAuditID gera um identificador curto para correlacionar as ações
// administrativas nos logs.
func GenerateAuditID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
