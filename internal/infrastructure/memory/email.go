// Package memory implementa los directorios de clientes y staff en memoria, indexados por email normalizado.
package memory

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// foldEmail normaliza un email a minúsculas, igual que lower() en PostgreSQL. No recorta espacios
// ni aplica plegado completo (ß no equivale a SS).
// cases.Caser no es seguro para uso concurrente: se crea uno por llamada.
func foldEmail(email string) string {
	return cases.Lower(language.Und).String(email)
}
