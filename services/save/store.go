package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"Farolero/models/sqlite"
	"Farolero/services/game"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrSlotNotFound is returned when loading a slot that was never saved.
var ErrSlotNotFound = errors.New("save slot not found")

// Store persists engine snapshots to named save slots. The engine only
// produces/consumes snapshots; all file (database) I/O lives here.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Save upserts the snapshot into a slot.
func (s *Store) Save(slot string, snap *game.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	run := sqlite.SavedRun{
		Slot:    slot,
		Seed:    snap.Seed,
		Ante:    snap.Ante,
		Blind:   string(snap.Blind),
		Payload: datatypes.JSON(payload),
	}

	if err := s.DB.Save(&run).Error; err != nil {
		log.Printf("[SAVE-ERROR] Error saving slot %s: %v", slot, err)
		return err
	}

	log.Printf("[SAVE] Slot %s saved (seed %d, ante %d)", slot, snap.Seed, snap.Ante)
	return nil
}

// Load decodes a slot back into a snapshot. Decode failures surface as-is:
// a corrupted save is a hard failure for the caller to report.
func (s *Store) Load(slot string) (*game.Snapshot, error) {
	var run sqlite.SavedRun
	if err := s.DB.First(&run, "slot = ?", slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("slot %q: %w", slot, ErrSlotNotFound)
		}
		return nil, err
	}

	var snap game.Snapshot
	if err := json.Unmarshal(run.Payload, &snap); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", slot, err)
	}

	return &snap, nil
}

// List returns every saved slot, most recently updated first.
func (s *Store) List() ([]sqlite.SavedRun, error) {
	var runs []sqlite.SavedRun
	if err := s.DB.Order("updated_at desc").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// Delete removes a slot. Deleting a missing slot is not an error.
func (s *Store) Delete(slot string) error {
	return s.DB.Delete(&sqlite.SavedRun{}, "slot = ?", slot).Error
}
