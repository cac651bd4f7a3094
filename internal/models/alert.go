package models

// PatrolAlert - оповещение для патрулей по ячейке сетки
type PatrolAlert struct {
	ID        ID     `json:"id"`
	HexID     string `json:"hex_id"`
	AlertType string `json:"alert_type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
