package view

type SessionPage struct {
	Flash  *Flash
	Errors map[string]string
}
