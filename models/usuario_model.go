package models

const (
	TipoAdmin       = "admin"
	TipoColaborador = "colaborador"
)

type Usuario struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	TipoUsuario string `json:"tipo_usuario"`
}

func (u *Usuario) IsAdmin() bool {
	return u != nil && u.TipoUsuario == TipoAdmin
}

func (u *Usuario) IsColaborador() bool {
	return u != nil && u.TipoUsuario == TipoColaborador
}
