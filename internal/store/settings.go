package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mlutz/kartei/ent"
	"github.com/mlutz/kartei/ent/snapshot"
)

// keepSnapshots is how many settings rows survive a save.
const keepSnapshots = 5

// settingsRepo implements SettingsRepo on top of the snapshot table.
type settingsRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *settingsRepo) Save(ctx context.Context, s Settings) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	data, err := settingsToMap(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save settings snapshot: %w", err)
	}

	return r.prune(ctx)
}

func (r *settingsRepo) Load(ctx context.Context) (Settings, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("query settings snapshot: %w", err)
	}

	s, err := settingsFromMap(row.Data)
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *settingsRepo) prune(ctx context.Context) error {
	rows, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keepSnapshots).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(rows[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func settingsToMap(s Settings) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func settingsFromMap(m map[string]any) (Settings, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return Settings{}, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}
