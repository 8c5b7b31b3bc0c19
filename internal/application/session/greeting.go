package session

import "strings"

// GreetingPrefix saludo de la cabecera.
const GreetingPrefix = "Olá, "

// FirstName primer token del nombre separado por un espacio simple.
// Un nombre que empieza con espacio produce un token vacío.
func FirstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}

// Greeting texto mostrado en la cabecera para la sesión activa.
func Greeting(name string) string {
	return GreetingPrefix + FirstName(name)
}
