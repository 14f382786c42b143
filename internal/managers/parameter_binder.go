package managers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

// JSONParameterBinder merges the incoming item's fields with the node's
// configured settings (settings win) and decodes the result into the action's
// params struct. The hosted platform swaps in its expression-aware binder; the
// connector only depends on the domain.IntegrationParameterBinder contract.
type JSONParameterBinder struct{}

func NewJSONParameterBinder() domain.IntegrationParameterBinder {
	return &JSONParameterBinder{}
}

func (b *JSONParameterBinder) BindToStruct(ctx context.Context, item any, params any, expressions map[string]any) error {
	merged := map[string]any{}

	if itemMap, ok := item.(map[string]any); ok {
		for key, value := range itemMap {
			merged[key] = value
		}
	}

	for key, value := range expressions {
		merged[key] = value
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to marshal bound parameters: %w", err)
	}

	if err := json.Unmarshal(data, params); err != nil {
		return fmt.Errorf("failed to unmarshal bound parameters: %w", err)
	}

	return nil
}
