// Package collaborator - HTTP-клиент сервиса диспетчеризации: снапшоты
// коллекций и командные эндпоинты.
package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/dispatch_console/internal/models"
)

// ErrTransport - запрос не дошел до сервиса или ответ не был получен
var ErrTransport = errors.New("collaborator transport failure")

// ErrDecode - ответ сервиса не удалось разобрать
var ErrDecode = errors.New("collaborator response decode failure")

// APIError - сервис ответил статусом вне 2xx
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиент сервиса с таймаутом на запрос
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) FetchHexGrid(ctx context.Context) ([]models.HexCell, error) {
	var out struct {
		Cells []models.HexCell `json:"cells"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/hex-grid", nil, &out); err != nil {
		return nil, err
	}
	return out.Cells, nil
}

// FetchHexSummary возвращает ячейки с разбивкой инцидентов по типам
func (c *Client) FetchHexSummary(ctx context.Context) ([]models.HexCell, error) {
	var out struct {
		Cells []models.HexCell `json:"cells"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/hex-grid/incidents-summary", nil, &out); err != nil {
		return nil, err
	}
	return out.Cells, nil
}

func (c *Client) FetchIncidents(ctx context.Context) ([]models.Incident, error) {
	var out struct {
		Incidents []models.Incident `json:"incidents"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/incidents", nil, &out); err != nil {
		return nil, err
	}
	return out.Incidents, nil
}

func (c *Client) FetchVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out struct {
		Vehicles []models.Vehicle `json:"vehicles"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out.Vehicles, nil
}

func (c *Client) FetchPatrolAlerts(ctx context.Context) ([]models.PatrolAlert, error) {
	var out struct {
		Alerts []models.PatrolAlert `json:"alerts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/patrol-alerts", nil, &out); err != nil {
		return nil, err
	}
	return out.Alerts, nil
}

func (c *Client) FetchTrafficSignals(ctx context.Context) ([]models.TrafficSignal, error) {
	var out struct {
		Signals []models.TrafficSignal `json:"signals"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/traffic-signals", nil, &out); err != nil {
		return nil, err
	}
	return out.Signals, nil
}

func (c *Client) FetchActiveDispatches(ctx context.Context) ([]models.DispatchRecord, error) {
	var out struct {
		Dispatches []models.DispatchRecord `json:"dispatches"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dispatches/active", nil, &out); err != nil {
		return nil, err
	}
	return out.Dispatches, nil
}

// CreateIncidentRequest - тело команды создания инцидента
type CreateIncidentRequest struct {
	Type      models.IncidentType `json:"type"`
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
}

func (c *Client) CreateIncident(ctx context.Context, req CreateIncidentRequest) (*models.CreateIncidentResult, error) {
	var out models.CreateIncidentResult
	if err := c.do(ctx, http.MethodPost, "/api/incidents", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeployVehicles(ctx context.Context, req models.DeployRequest) (*models.DeployResult, error) {
	var out models.DeployResult
	if err := c.do(ctx, http.MethodPost, "/api/vehicles/deploy", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id models.ID) error {
	var out struct {
		OK bool `json:"ok"`
	}
	return c.do(ctx, http.MethodDelete, "/api/vehicles/"+url.PathEscape(id.String()), nil, &out)
}

func (c *Client) MarkIncidentAttended(ctx context.Context, id models.ID) error {
	var out struct {
		OK bool `json:"ok"`
	}
	return c.do(ctx, http.MethodPatch, "/api/incidents/"+url.PathEscape(id.String())+"/attended", nil, &out)
}

func (c *Client) SaveSimulationConfig(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationConfig, error) {
	var out struct {
		Config models.SimulationConfig `json:"config"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/simulation/config", cfg, &out); err != nil {
		return nil, err
	}
	return &out.Config, nil
}

func (c *Client) RunSimulation(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationResult, error) {
	var out models.SimulationResult
	if err := c.do(ctx, http.MethodPost, "/api/simulation/run", cfg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResetSimulation(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/simulation/reset", struct{}{}, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// PostJSON отправляет произвольное тело на путь сервиса. Используется
// пересыльщиком обращений из intake.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %v", ErrTransport, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(raw), 512),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
