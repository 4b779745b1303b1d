package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"playing-cards-go/pkg/cards"
)

var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads a deck saved by Save. A missing file is not an error:
// found is false and the caller builds a fresh deck.
func Load(path string) (deck *cards.Deck, found bool, err error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}

	deck = &cards.Deck{}
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(b, deck)
	default:
		err = json.Unmarshal(b, deck)
	}
	if err != nil {
		return nil, false, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return deck, true, nil
}

// Save writes the deck through a temp file so a failed write leaves the
// previous snapshot intact.
func Save(path string, deck *cards.Deck) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var b []byte
	switch f {
	case formatYAML:
		b, err = yaml.Marshal(deck)
	default:
		b, err = json.MarshalIndent(deck, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir snapshot dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
