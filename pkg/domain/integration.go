package domain

import (
	"context"
	"errors"
)

var (
	ErrIntegrationNotFound = errors.New("integration not found")
)

type IntegrationType string
type IntegrationActionType string
type IntegrationTriggerEventType string
type IntegrationPeekableType string

const (
	IntegrationType_Ghost IntegrationType = "ghost"
)

// Integration is the declarative description of a connector: its credential
// fields, actions, triggers and whether connections can be tested up-front.
// The platform renders its UI from this structure; none of it is control flow.
type Integration struct {
	ID          IntegrationType `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`

	CredentialProperties []NodeProperty       `json:"credential_props"`
	Actions              []IntegrationAction  `json:"actions"`
	Triggers             []IntegrationTrigger `json:"triggers"`

	CanTestConnection    bool `json:"can_test_connection"`
	IsCredentialOptional bool `json:"is_credential_optional"`
}

type IntegrationAction struct {
	ID          string                `json:"id"`
	ActionType  IntegrationActionType `json:"action_type"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Properties  []NodeProperty        `json:"properties"`
}

type IntegrationTrigger struct {
	ID          string                      `json:"id"`
	EventType   IntegrationTriggerEventType `json:"event_type"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Properties  []NodeProperty              `json:"properties"`

	// Hidden triggers exist only to back dynamic dropdowns.
	Hidden bool `json:"hidden"`
}

type IntegrationInput struct {
	NodeID            string
	InputJSON         []byte
	PayloadByInputID  map[string]Payload
	IntegrationParams IntegrationParams
	ActionType        IntegrationActionType
}

func (i IntegrationInput) GetItemsByInputID() (map[string][]Item, error) {
	itemsByInputID := map[string][]Item{}

	for inputID, payload := range i.PayloadByInputID {
		items, err := payload.ToItems()
		if err != nil {
			return nil, err
		}

		itemsByInputID[inputID] = items
	}

	return itemsByInputID, nil
}

func (i IntegrationInput) GetAllItems() ([]Item, error) {
	itemsByInputID, err := i.GetItemsByInputID()
	if err != nil {
		return nil, err
	}

	items := []Item{}

	for _, inputItems := range itemsByInputID {
		items = append(items, inputItems...)
	}

	return items, nil
}

type IntegrationParams struct {
	Settings map[string]any
}

type IntegrationOutput struct {
	ResultJSONByOutputID []Payload
}

type IntegrationDeps struct {
	ParameterBinder   IntegrationParameterBinder
	CredentialManager CredentialManager
}

type IntegrationParameterBinder interface {
	BindToStruct(ctx context.Context, item any, params any, expressions map[string]any) error
}
