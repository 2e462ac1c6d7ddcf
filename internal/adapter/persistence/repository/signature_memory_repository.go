package repository

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/usecase/interfaces"
	"sync"
)

// SignatureMemoryRepository keeps signatures in process memory. Used when no DynamoDB
// table is configured; captures are lost on restart.
type SignatureMemoryRepository struct {
	mu   sync.RWMutex
	sigs map[int64]entities.Signature
}

var _ interfaces.ISignatureRepository = (*SignatureMemoryRepository)(nil)

func NewSignatureMemoryRepository() *SignatureMemoryRepository {
	return &SignatureMemoryRepository{sigs: map[int64]entities.Signature{}}
}

func (r *SignatureMemoryRepository) Save(_ context.Context, s entities.Signature) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sigs[s.ProcessID] = s
	return nil
}

func (r *SignatureMemoryRepository) GetByProcessID(_ context.Context, processID int64) (entities.Signature, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sigs[processID]
	return s, ok, nil
}
