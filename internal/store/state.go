package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studydrill/drill/ent"
	"github.com/studydrill/drill/ent/staterecord"
	"github.com/studydrill/drill/internal/bank"
)

const (
	keyBank     = "bank"
	keyProgress = "progress"
)

// stateRepo implements StateRepo over the StateRecord entity.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) LoadBank(ctx context.Context) (BankState, error) {
	b := BankState{Subject: bank.DefaultSubject}
	ok, err := r.load(ctx, keyBank, &b)
	if err != nil {
		return BankState{}, err
	}
	if ok && b.Subject == "" {
		b.Subject = bank.DefaultSubject
	}
	return b, nil
}

func (r *stateRepo) SaveBank(ctx context.Context, b BankState) error {
	return r.save(ctx, keyBank, b)
}

func (r *stateRepo) LoadProgress(ctx context.Context) (ProgressState, error) {
	var p ProgressState
	if _, err := r.load(ctx, keyProgress, &p); err != nil {
		return ProgressState{}, err
	}
	return p, nil
}

func (r *stateRepo) SaveProgress(ctx context.Context, p ProgressState) error {
	return r.save(ctx, keyProgress, p)
}

// load unmarshals the record for key into out. It reports false and
// leaves out untouched when the key is absent.
func (r *stateRepo) load(ctx context.Context, key string, out any) (bool, error) {
	rec, err := r.client.StateRecord.Query().
		Where(staterecord.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query state %q: %w", key, err)
	}

	b, err := json.Marshal(rec.Data)
	if err != nil {
		return false, fmt.Errorf("marshal state %q: %w", key, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("unmarshal state %q: %w", key, err)
	}
	return true, nil
}

// save upserts the record for key with the JSON form of v.
func (r *stateRepo) save(ctx context.Context, key string, v any) error {
	m, err := toMap(v)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}

	err = r.client.StateRecord.Create().
		SetKey(key).
		SetData(m).
		OnConflictColumns(staterecord.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert state %q: %w", key, err)
	}
	return nil
}

// toMap converts a typed state value to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
