package repository

import (
	"fmt"
	"time"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseStamps reads the pair of audit timestamps stored on every item. A
// malformed value is a corrupt item and surfaces as an unmarshal error.
func parseStamps(criacao, atualizacao string) (time.Time, time.Time, error) {
	dc, err := time.Parse(time.RFC3339Nano, criacao)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("dataCriacao: %w", err)
	}
	da, err := time.Parse(time.RFC3339Nano, atualizacao)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("dataAtualizacao: %w", err)
	}
	return dc, da, nil
}
