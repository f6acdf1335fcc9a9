package service

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
)

// Undo reverts the most recent logged mutation
func (s *InventoryService) Undo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.UndoLastOperation() {
		return ErrNothingToUndo
	}
	return nil
}

// RecentOperations returns up to n log entries, most recent first
func (s *InventoryService) RecentOperations(ctx context.Context, n int) []models.OperationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	operations := s.manager.RecentOperations(n)
	records := make([]models.OperationRecord, 0, len(operations))
	for _, op := range operations {
		records = append(records, models.NewOperationRecord(op))
	}
	return records
}
