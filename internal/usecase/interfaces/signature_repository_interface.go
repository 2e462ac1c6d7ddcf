package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// ISignatureRepository stores the client sign-off captured at the Completion stage.
// GetByProcessID reports found=false when no signature exists.

type ISignatureRepository interface {
	Save(ctx context.Context, s entities.Signature) error
	GetByProcessID(ctx context.Context, processID int64) (sig entities.Signature, found bool, err error)
}
