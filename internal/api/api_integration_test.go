// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/Bomfimdev/controle-financeiro/internal"
	"github.com/Bomfimdev/controle-financeiro/internal/domain"
)

// testApp is the global application instance for testing.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain initializes the application against a real PostgreSQL test
// database. Set RUN_INTEGRATION_TESTS=1 (plus the DB_* variables) to run
// this suite; without it every test here is skipped.
func TestMain(m *testing.M) {
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		os.Exit(m.Run())
	}

	setupEnvVars()

	testApp = app.NewApplication()
	if err := testApp.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		os.Exit(1)
	}

	testServer = httptest.NewServer(testApp.HTTPHandler)
	defer testServer.Close()

	code := m.Run()

	if err := testApp.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		os.Exit(1)
	}

	os.Exit(code)
}

// requireIntegration skips the test when the suite is not running against
// a database.
func requireIntegration(t *testing.T) {
	t.Helper()
	if testApp == nil {
		t.Skip("integration tests disabled; set RUN_INTEGRATION_TESTS=1")
	}
}

// setupEnvVars points the configuration at the test database unless the
// environment already provides values.
func setupEnvVars() {
	defaults := map[string]string{
		"SERVER_PORT": "8080",
		"DB_HOST":     "localhost",
		"DB_PORT":     "5432",
		"DB_USER":     "postgres",
		"DB_PASSWORD": "postgres",
		"DB_NAME":     "financeirodb_test",
		"DB_SSLMODE":  "disable",
	}
	for key, value := range defaults {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// clearDatabase truncates all tables so each test starts from a clean slate.
func clearDatabase(t *testing.T) {
	// Order matters because of foreign key dependencies.
	tables := []string{"transacoes", "contas", "usuarios"}
	for _, table := range tables {
		_, err := testApp.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table))
		require.NoError(t, err, "Failed to truncate table %s", table)
	}
}

// createTestUsuario inserts a user directly through the repository and
// returns its generated ID.
func createTestUsuario(t *testing.T, email string) string {
	usuario := &domain.Usuario{
		Nome:      "Gabriel",
		Sobrenome: "Bomfim",
		Email:     email,
		Senha:     "s3cret",
	}
	err := testApp.UsuarioRepository.Create(context.Background(), testApp.DB, usuario)
	require.NoError(t, err)
	return usuario.ID
}

// createTestConta inserts an account owned by usuarioID and returns its ID.
func createTestConta(t *testing.T, usuarioID string, saldo decimal.Decimal) string {
	conta := &domain.Conta{
		Nome:      "Conta Casal",
		Saldo:     saldo,
		Tipo:      "CORRENTE",
		UsuarioID: usuarioID,
	}
	err := testApp.ContaRepository.Create(context.Background(), testApp.DB, conta)
	require.NoError(t, err)
	return conta.ID
}

// makeRequest sends an HTTP request to the test server. The caller is
// responsible for closing the response body.
func makeRequest(t *testing.T, method, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(method, testServer.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(respBody)
}

func TestContaLifecycleIntegration(t *testing.T) {
	requireIntegration(t)
	clearDatabase(t)
	usuarioID := createTestUsuario(t, "casal@example.com")

	var (
		contaID       string
		contaCriadaEm time.Time
	)

	t.Run("Create", func(t *testing.T) {
		requestBody := fmt.Sprintf(`{"nome": "Conta Casal", "saldo": 1000.00, "tipo": "CORRENTE", "usuario": {"id": "%s"}}`, usuarioID)
		resp, body := makeRequest(t, "POST", "/contas", strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var responseMap map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &responseMap))

		contaID = responseMap["id"].(string)
		assert.NotEmpty(t, contaID)
		assert.NotEmpty(t, responseMap["dataCriacao"])
		assert.Nil(t, responseMap["dataAtualizacao"])

		var err error
		contaCriadaEm, err = time.Parse(time.RFC3339Nano, responseMap["dataCriacao"].(string))
		require.NoError(t, err)
	})

	t.Run("Get", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/contas/"+contaID, nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var responseMap map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &responseMap))
		assert.Equal(t, "Conta Casal", responseMap["nome"])
		assert.Equal(t, map[string]interface{}{"id": usuarioID}, responseMap["usuario"])
	})

	t.Run("Update", func(t *testing.T) {
		requestBody := fmt.Sprintf(`{"nome": "Conta Renomeada", "saldo": 750.00, "tipo": "CORRENTE", "usuario": {"id": "%s"}}`, usuarioID)
		resp, body := makeRequest(t, "PUT", "/contas/"+contaID, strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var responseMap map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &responseMap))
		assert.Equal(t, "Conta Renomeada", responseMap["nome"])
		assert.NotNil(t, responseMap["dataAtualizacao"])

		// The creation timestamp survives the overwrite. The database
		// round-trip may drop sub-microsecond precision.
		dataCriacao, err := time.Parse(time.RFC3339Nano, responseMap["dataCriacao"].(string))
		require.NoError(t, err)
		assert.WithinDuration(t, contaCriadaEm, dataCriacao, time.Second)
	})

	t.Run("GetUnknownReturns404", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/contas/no-such-id", nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "conta não encontrada")
	})

	t.Run("Delete", func(t *testing.T) {
		resp, _ := makeRequest(t, "DELETE", "/contas/"+contaID, nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		respGet, _ := makeRequest(t, "GET", "/contas/"+contaID, nil)
		defer respGet.Body.Close()
		assert.Equal(t, http.StatusNotFound, respGet.StatusCode)
	})
}

func TestTransacaoIntegration(t *testing.T) {
	requireIntegration(t)
	clearDatabase(t)
	usuarioID := createTestUsuario(t, "transacoes@example.com")
	contaID := createTestConta(t, usuarioID, decimal.NewFromFloat(1000.00))

	t.Run("Create", func(t *testing.T) {
		requestBody := fmt.Sprintf(`{"descricao": "Mercado", "valor": 250.50, "data": "2025-03-09", "tipo": "SAIDA", "categoria": "Alimentação", "conta": {"id": "%s"}, "usuario": {"id": "%s"}}`, contaID, usuarioID)
		resp, body := makeRequest(t, "POST", "/transacoes", strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var responseMap map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &responseMap))
		assert.NotEmpty(t, responseMap["id"])
		assert.Equal(t, "2025-03-09", responseMap["data"])
	})

	t.Run("ValorNaoPositivoRejected", func(t *testing.T) {
		requestBody := fmt.Sprintf(`{"descricao": "Inválida", "valor": 0, "data": "2025-03-09", "tipo": "SAIDA", "categoria": "Outros", "conta": {"id": "%s"}, "usuario": {"id": "%s"}}`, contaID, usuarioID)
		resp, _ := makeRequest(t, "POST", "/transacoes", strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ContaInexistenteRejected", func(t *testing.T) {
		requestBody := fmt.Sprintf(`{"descricao": "Órfã", "valor": 10.00, "data": "2025-03-09", "tipo": "SAIDA", "categoria": "Outros", "conta": {"id": "no-such-conta"}, "usuario": {"id": "%s"}}`, usuarioID)
		resp, _ := makeRequest(t, "POST", "/transacoes", strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("DeleteContaComTransacoesConflicts", func(t *testing.T) {
		resp, body := makeRequest(t, "DELETE", "/contas/"+contaID, nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body, "transações")
	})
}

func TestUsuarioIntegration(t *testing.T) {
	requireIntegration(t)
	clearDatabase(t)

	t.Run("CreateOmitsSenha", func(t *testing.T) {
		requestBody := `{"nome": "Gabriel", "sobrenome": "Bomfim", "email": "gabriel@example.com", "senha": "s3cret"}`
		resp, body := makeRequest(t, "POST", "/usuarios", strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, body, "senha")
		assert.NotContains(t, body, "s3cret")
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		requestBody := `{"nome": "Outro", "sobrenome": "Usuário", "email": "gabriel@example.com", "senha": "outra"}`
		resp, body := makeRequest(t, "POST", "/usuarios", strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body, "email já cadastrado")
	})
}

func TestHealthAndAuthEndpoints(t *testing.T) {
	requireIntegration(t)

	resp, body := makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)

	respAuth, bodyAuth := makeRequest(t, "GET", "/api/auth/test", nil)
	defer respAuth.Body.Close()
	assert.Equal(t, http.StatusOK, respAuth.StatusCode)
	assert.Equal(t, "API de autenticação funcionando!", bodyAuth)
}
