package intake

import (
	"fmt"
	"strings"
	"time"
)

// SourceTelegram - метка источника для обращений из бота
const SourceTelegram = "telegram"

// categoryTypes сопоставляет категории бота типам инцидентов
var categoryTypes = map[string]string{
	"Fire Incident":       "fire",
	"Medical Emergency":   "medical",
	"Road Accident":       "road_accident",
	"Road Damage":         "road_damage",
	"Garbage Issue":       "garbage",
	"Public Safety Issue": "public_safety",
	"Theft":               "theft",
	"Suspicious Activity": "suspicious",
	"Public Disturbance":  "public_disturbance",
}

// IncidentType возвращает тип для категории. Неизвестная категория
// приводится к нижнему регистру, пробелы заменяются на "_".
func IncidentType(category string) string {
	if t, ok := categoryTypes[category]; ok {
		return t
	}
	return strings.Join(strings.Fields(strings.ToLower(category)), "_")
}

// ReportID строит идентификатор обращения из времени сообщения
func ReportID(at time.Time) string {
	return fmt.Sprintf("CIV-%d", at.UnixMilli())
}

// Submission - обращение в том виде, в каком его собрал бот
type Submission struct {
	Category    string    `json:"category" validate:"required"`
	Latitude    *float64  `json:"latitude" validate:"required,latitude"`
	Longitude   *float64  `json:"longitude" validate:"required,longitude"`
	PhotoFileID string    `json:"photo_file_id,omitempty"`
	VideoFileID string    `json:"video_file_id,omitempty"`
	VoiceFileID string    `json:"voice_file_id,omitempty"`
	SentAt      time.Time `json:"sent_at"`
}

// Report - тело запроса к /api/incidents/telegram
type Report struct {
	ReportID    string  `json:"report_id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PhotoFileID *string `json:"photo_file_id"`
	VideoFileID *string `json:"video_file_id"`
	VoiceFileID *string `json:"voice_file_id"`
	Source      string  `json:"source"`
}

// NewReport собирает тело запроса. now используется, если у обращения нет
// времени отправки.
func NewReport(s Submission, now time.Time) Report {
	at := s.SentAt
	if at.IsZero() {
		at = now
	}
	r := Report{
		ReportID:    ReportID(at),
		Type:        IncidentType(s.Category),
		Category:    s.Category,
		PhotoFileID: optional(s.PhotoFileID),
		VideoFileID: optional(s.VideoFileID),
		VoiceFileID: optional(s.VoiceFileID),
		Source:      SourceTelegram,
	}
	if s.Latitude != nil {
		r.Latitude = *s.Latitude
	}
	if s.Longitude != nil {
		r.Longitude = *s.Longitude
	}
	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
