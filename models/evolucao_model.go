package models

import "time"

// Evolucao is the client-side copy of a progress note as the backend
// serializes it. Instances live only between a fetch and the next
// navigation; nothing here is persisted locally.
type Evolucao struct {
	ID            int         `json:"id"`
	Titulo        string      `json:"titulo"`
	Categoria     string      `json:"categoria"`
	Conteudo      string      `json:"conteudo"`
	Visualizado   bool        `json:"visualizado"`
	CriadoPor     *int        `json:"criado_por"`
	CriadoPorNome string      `json:"criado_por_nome,omitempty"`
	AtribuidoA    *int        `json:"atribuido_a"`
	DataCriacao   time.Time   `json:"data_criacao"`
	DataEdicao    time.Time   `json:"data_edicao"`
	Logs          []LogEdicao `json:"logs"`
}

type LogEdicao struct {
	ID      int       `json:"id"`
	Tipo    string    `json:"tipo"`
	Usuario string    `json:"usuario"`
	Data    time.Time `json:"data"`
}
