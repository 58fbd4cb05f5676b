package services

import (
	"strings"

	"plantonize-web/models"
)

// FilterEvolucoes keeps the notes whose titulo or categoria contains the
// query as a case-insensitive substring. An empty query keeps everything.
func FilterEvolucoes(evolucoes []models.Evolucao, busca string) []models.Evolucao {
	if busca == "" {
		return evolucoes
	}
	q := strings.ToLower(busca)
	filtered := []models.Evolucao{}
	for _, ev := range evolucoes {
		if strings.Contains(strings.ToLower(ev.Titulo), q) ||
			strings.Contains(strings.ToLower(ev.Categoria), q) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// RemoveEvolucao drops the note with the given id from the list. Used to
// apply a server-confirmed delete to the already-fetched list instead of
// refetching.
func RemoveEvolucao(evolucoes []models.Evolucao, id int) []models.Evolucao {
	result := []models.Evolucao{}
	for _, ev := range evolucoes {
		if ev.ID != id {
			result = append(result, ev)
		}
	}
	return result
}

// CanEdit is a UI affordance only; the backend re-checks authorization on
// every mutating call.
func CanEdit(user *models.Usuario, ev *models.Evolucao) bool {
	if user == nil || ev == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	if ev.CriadoPor != nil && user.ID == *ev.CriadoPor {
		return true
	}
	if ev.AtribuidoA != nil && user.ID == *ev.AtribuidoA {
		return true
	}
	return false
}

// SomenteColaboradores filters the user list down to the colaborador role
// for the assignee and filter dropdowns.
func SomenteColaboradores(users []models.Usuario) []models.Usuario {
	colaboradores := []models.Usuario{}
	for _, u := range users {
		if u.TipoUsuario == models.TipoColaborador {
			colaboradores = append(colaboradores, u)
		}
	}
	return colaboradores
}
