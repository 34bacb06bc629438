package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput selects which keys to return.
type GetConfigSchemaInput struct {
	// Section keeps only the keys of one section when set.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute retrieves the configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, in GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("schema provider is nil")
	}

	keys := uc.provider.GetSchema()
	if in.Section == "" {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	filtered := make([]entity.ConfigKeyInfo, 0, len(keys))
	for _, key := range keys {
		if key.Section == in.Section {
			filtered = append(filtered, key)
		}
	}
	return &GetConfigSchemaOutput{Keys: filtered}, nil
}
