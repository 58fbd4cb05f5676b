package controllers_test

import (
	"context"
	"sync"

	"plantonize-web/apiclient"
	"plantonize-web/models"
)

// mockBackend is an in-memory stand-in for the REST API. Canned values go
// in, calls get recorded.
type mockBackend struct {
	mu sync.Mutex

	loginToken  string
	loginErr    error
	registerErr error

	currentUser    *models.Usuario
	currentUserErr error

	usuarios    []models.Usuario
	usuariosErr error

	evolucoes     []models.Evolucao
	evolucoesErr  error
	lastColabFilt string

	evolucao    *models.Evolucao
	evolucaoErr error

	createErr   error
	createCalls int
	lastCreate  apiclient.CreateEvolucaoInput

	updateErr    error
	updateResult *models.Evolucao
	lastUpdate   apiclient.UpdateEvolucaoInput

	deleteErr  error
	deletedIDs []int

	registerCalls int
}

func (m *mockBackend) Login(ctx context.Context, username, password string) (string, error) {
	return m.loginToken, m.loginErr
}

func (m *mockBackend) Register(ctx context.Context, username, password string) error {
	m.mu.Lock()
	m.registerCalls++
	m.mu.Unlock()
	return m.registerErr
}

func (m *mockBackend) CurrentUser(ctx context.Context, token string) (*models.Usuario, error) {
	return m.currentUser, m.currentUserErr
}

func (m *mockBackend) ListUsuarios(ctx context.Context, token string) ([]models.Usuario, error) {
	return m.usuarios, m.usuariosErr
}

func (m *mockBackend) ListEvolucoes(ctx context.Context, token, colaboradorID string) ([]models.Evolucao, error) {
	m.mu.Lock()
	m.lastColabFilt = colaboradorID
	m.mu.Unlock()
	return m.evolucoes, m.evolucoesErr
}

func (m *mockBackend) GetEvolucao(ctx context.Context, token string, id int) (*models.Evolucao, error) {
	return m.evolucao, m.evolucaoErr
}

func (m *mockBackend) CreateEvolucao(ctx context.Context, token string, in apiclient.CreateEvolucaoInput) (*models.Evolucao, error) {
	m.mu.Lock()
	m.createCalls++
	m.lastCreate = in
	m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Evolucao{ID: 99, Titulo: in.Titulo, Categoria: in.Categoria, Conteudo: in.Conteudo}, nil
}

func (m *mockBackend) UpdateEvolucao(ctx context.Context, token string, id int, in apiclient.UpdateEvolucaoInput) (*models.Evolucao, error) {
	m.mu.Lock()
	m.lastUpdate = in
	m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updateResult != nil {
		return m.updateResult, nil
	}
	return &models.Evolucao{ID: id, Titulo: in.Titulo, Categoria: in.Categoria, Conteudo: in.Conteudo}, nil
}

func (m *mockBackend) DeleteEvolucao(ctx context.Context, token string, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

// memorySessions implements repository.SessionRepository without Redis.
type memorySessions struct {
	mu   sync.Mutex
	data map[string]models.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{data: map[string]models.Session{}}
}

func (m *memorySessions) Save(ctx context.Context, sid string, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sid] = session
	return nil
}

func (m *memorySessions) Find(ctx context.Context, sid string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.data[sid]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (m *memorySessions) Delete(ctx context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sid)
	return nil
}
