package domain

import "time"

// Session é a sessão ativa junto à plataforma de delivery. O token é opaco e
// viaja explicitamente em cada chamada do cliente da plataforma, nunca como
// estado global. A presença de um token não vazio é o único critério de
// "autenticado"; a ausência força novo login.
type Session struct {
	Token       string    `json:"token"`
	ActivatedAt time.Time `json:"activated_at"`
}

// Authenticated informa se a sessão está apta a chamar a plataforma.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
