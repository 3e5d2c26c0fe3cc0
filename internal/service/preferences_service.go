package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
)

const (
	FeatureTimeline = "timeline"
	FeatureGoals    = "goals"
)

var Features = []string{FeatureScheduleTemplate, FeatureTimeline, FeatureGoals}

// PreferencesService keeps one free-form JSON blob per user and feature.
type PreferencesService struct {
	store repository.ScopedStore
}

func NewPreferencesService(store repository.ScopedStore) *PreferencesService {
	if store == nil {
		log.Fatal("on preferences service provided nil store")
	}
	return &PreferencesService{
		store: store,
	}
}

func (ps *PreferencesService) Get(ctx context.Context, uid uuid.UUID, feature string) (any, error) {
	scope, err := scopeOf(uid, feature)
	if err != nil {
		return nil, err
	}
	var payload any
	if err = ps.store.Get(ctx, scope, &payload); err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("preferences store error: %w", err)
	}
	return payload, nil
}

func (ps *PreferencesService) Put(ctx context.Context, uid uuid.UUID, feature string, payload any) error {
	scope, err := scopeOf(uid, feature)
	if err != nil {
		return err
	}
	if payload == nil {
		return fmt.Errorf("%w: empty payload", errorvalues.ErrValidation)
	}
	if feature == FeatureScheduleTemplate {
		if err = validateTemplate(payload); err != nil {
			return err
		}
	}
	if err = ps.store.Put(ctx, scope, payload); err != nil {
		return fmt.Errorf("preferences store error: %w", err)
	}
	return nil
}

func (ps *PreferencesService) Delete(ctx context.Context, uid uuid.UUID, feature string) error {
	scope, err := scopeOf(uid, feature)
	if err != nil {
		return err
	}
	if err = ps.store.Delete(ctx, scope); err != nil {
		if errors.Is(err, errorvalues.ErrPreferenceNotFound) {
			return err
		}
		return fmt.Errorf("preferences store error: %w", err)
	}
	return nil
}

func scopeOf(uid uuid.UUID, feature string) (repository.Scope, error) {
	if !slices.Contains(Features, feature) {
		return repository.Scope{}, fmt.Errorf("%w: %q", errorvalues.ErrUnknownPreference, feature)
	}
	return repository.Scope{User: uid, Feature: feature}, nil
}

// validateTemplate checks that payload decodes into blocks with valid slots.
func validateTemplate(payload any) error {
	data, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err)
	}
	var template []BlockTemplate
	if err = sonic.Unmarshal(data, &template); err != nil {
		return fmt.Errorf("%w: schedule template must be a list of blocks", errorvalues.ErrValidation)
	}
	for i := range template {
		if err = validateStruct(template[i]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}
