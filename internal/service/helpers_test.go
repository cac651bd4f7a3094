package service

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/service/mocks"
	"github.com/shenikar/dispatch_console/internal/store"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestEnv собирает мок коллаборатора поверх настоящего хранилища
func newTestEnv(t *testing.T) (*mocks.MockCollaborator, *store.Store, *Loader) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCollaborator(ctrl)
	logger := newTestLogger()
	st := store.New(logger)
	return api, st, NewLoader(api, st, logger, 4)
}

func testHexes(ids ...string) []models.HexCell {
	out := make([]models.HexCell, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.HexCell{HexID: id})
	}
	return out
}

func line(points ...float64) []models.Point {
	out := make([]models.Point, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		out = append(out, models.Point{points[i], points[i+1]})
	}
	return out
}
