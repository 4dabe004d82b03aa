package handler

import (
	"context"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DatasetStore é a visão do store em memória consumida pelos handlers.
type DatasetStore interface {
	Snapshot(ctx context.Context) *domain.Dataset
	AddColumn(ctx context.Context, name, defaultValue string) error
}
