package authgate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ repository.IdentityStore = (*Client)(nil)

// Client adaptador del puerto IdentityStore contra el API admin REST del
// proveedor de identidad. Usa net/http de la librería estándar; autentica
// con un API key tipo Bearer.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout acota cada round trip; el motor
// de sincronización no impone timeouts propios.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estructuras del protocolo del API admin ───────────────────────────────────

type principalPayload struct {
	ID          string `json:"id,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	RoleClaim   string `json:"role_claim,omitempty"`
	Disabled    *bool  `json:"disabled,omitempty"`
}

type listResponse struct {
	Principals []principalPayload `json:"principals"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatePrincipal POST /v1/principals; el proveedor asigna el ID.
func (c *Client) CreatePrincipal(ctx context.Context, in entity.NewPrincipal) (*entity.Principal, error) {
	body := principalPayload{
		Email:       in.Email,
		Password:    in.Password,
		DisplayName: in.DisplayName,
		Disabled:    &in.Disabled,
	}
	var out principalPayload
	if err := c.do(ctx, http.MethodPost, "/v1/principals", body, &out); err != nil {
		return nil, err
	}
	return toPrincipal(out), nil
}

// GetPrincipal GET /v1/principals/{id}; (nil, nil) en 404.
func (c *Client) GetPrincipal(ctx context.Context, id string) (*entity.Principal, error) {
	var out principalPayload
	err := c.do(ctx, http.MethodGet, "/v1/principals/"+id, nil, &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toPrincipal(out), nil
}

// UpdatePrincipal PATCH /v1/principals/{id} con solo los campos presentes.
func (c *Client) UpdatePrincipal(ctx context.Context, id string, patch entity.PrincipalPatch) error {
	body := map[string]any{}
	if patch.DisplayName != nil {
		body["display_name"] = *patch.DisplayName
	}
	if patch.Disabled != nil {
		body["disabled"] = *patch.Disabled
	}
	return c.do(ctx, http.MethodPatch, "/v1/principals/"+id, body, nil)
}

// SetRoleClaim PUT /v1/principals/{id}/claims/role.
func (c *Client) SetRoleClaim(ctx context.Context, id, claim string) error {
	return c.do(ctx, http.MethodPut, "/v1/principals/"+id+"/claims/role", map[string]string{"role": claim}, nil)
}

// DeletePrincipal DELETE /v1/principals/{id}.
func (c *Client) DeletePrincipal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/principals/"+id, nil, nil)
}

// ListPrincipals GET /v1/principals?page_size=N; una sola página.
func (c *Client) ListPrincipals(ctx context.Context, pageSize int) ([]entity.Principal, error) {
	var out listResponse
	path := "/v1/principals?page_size=" + strconv.Itoa(pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Principal, 0, len(out.Principals))
	for _, p := range out.Principals {
		list = append(list, *toPrincipal(p))
	}
	return list, nil
}

// do ejecuta una llamada JSON contra el API admin y decodifica la respuesta
// en out (si no es nil). Los estados no-2xx se devuelven como *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("authgate: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("authgate: crear petición: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("authgate: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}
		var payload errorResponse
		if decodeErr := json.NewDecoder(res.Body).Decode(&payload); decodeErr == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("authgate: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// APIError error devuelto por el API admin del proveedor.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authgate: estado %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("authgate: estado %d", e.Status)
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

func toPrincipal(p principalPayload) *entity.Principal {
	out := entity.Principal{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		RoleClaim:   p.RoleClaim,
	}
	if p.Disabled != nil {
		out.Disabled = *p.Disabled
	}
	return &out
}
