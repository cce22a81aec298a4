package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dtroode/elementmeta/internal/logger"
	"github.com/dtroode/elementmeta/internal/model"
)

// controlPrefix is the marker Element's storage layer prepends to
// string values.
const controlPrefix = ""

// Extractor reads an Element Desktop local-storage database and
// assembles a Metadata record from it. It is safe for concurrent use;
// operations against the shared store are serialized.
type Extractor struct {
	store  model.Store
	guard  guard
	logger *logger.Logger
}

func NewExtractor(store model.Store, logger *logger.Logger) *Extractor {
	return &Extractor{
		store:  store,
		logger: logger,
	}
}

// ExtractAll iterates the whole store and returns a fresh, fully
// populated Metadata record.
//
// Entries with non-UTF-8 keys are dropped. Entries with non-UTF-8
// values land in the raw archive hex-encoded and are never classified.
// Text values are classified with a single leading control marker
// stripped, but archived unmodified.
func (e *Extractor) ExtractAll(ctx context.Context) (model.Metadata, error) {
	metadata := model.NewMetadata()

	err := e.guard.do(func() error {
		return e.store.Iterate(ctx, func(key, value []byte) error {
			if !utf8.Valid(key) {
				return nil
			}
			keyStr := string(key)

			if !utf8.Valid(value) {
				metadata.RawEntries[keyStr] = "0x" + hex.EncodeToString(value)
				return nil
			}
			valueStr := string(value)

			classify(&metadata, keyStr, strings.TrimPrefix(valueStr, controlPrefix))
			metadata.RawEntries[keyStr] = valueStr

			return nil
		})
	})
	if err != nil {
		return model.Metadata{}, fmt.Errorf("failed to extract metadata: %w", err)
	}

	e.logger.Debug("extraction complete",
		"entries", len(metadata.RawEntries),
		"rooms", len(metadata.RoomIDs),
	)

	return metadata, nil
}

// ExportJSON runs ExtractAll and encodes the record as indented JSON
// with fields in declaration order.
func (e *Extractor) ExportJSON(ctx context.Context) ([]byte, error) {
	metadata, err := e.ExtractAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	return data, nil
}

// GetValue looks up a single key. The value is decoded best-effort:
// malformed bytes are replaced rather than rejected. ok is false when
// the key is absent.
func (e *Extractor) GetValue(ctx context.Context, key string) (value string, ok bool, err error) {
	err = e.guard.do(func() error {
		raw, found, err := e.store.Get(ctx, []byte(key))
		if err != nil {
			return fmt.Errorf("failed to get value: %w", err)
		}
		if !found {
			return nil
		}

		value = strings.ToValidUTF8(string(raw), string(utf8.RuneError))
		ok = true

		return nil
	})
	if err != nil {
		return "", false, err
	}

	return value, ok, nil
}
