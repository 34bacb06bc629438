package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/bnema/keysetup/internal/domain/entity"
	"github.com/bnema/keysetup/internal/logging"
)

const bindingsHeader = "# keysetup bindings. Key codes are Doom key codes, 0 means unbound.\n\n"

// FileVariableStore persists variables as flat integer keys in a TOML file.
type FileVariableStore struct {
	path string
}

// NewFileVariableStore creates a store backed by the TOML file at path.
func NewFileVariableStore(path string) *FileVariableStore {
	return &FileVariableStore{path: path}
}

// Path returns the backing file path.
func (s *FileVariableStore) Path() string {
	return s.path
}

// Load applies every stored value to the matching variable. A missing file
// leaves all variables untouched. Values that are not integers are skipped.
func (s *FileVariableStore) Load(ctx context.Context, vars []entity.Variable) error {
	log := logging.FromContext(ctx)

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("bindings file not found, keeping defaults")
		return nil
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read bindings file at %s: %w", s.path, err)
	}

	for _, variable := range vars {
		if !v.IsSet(variable.Name) {
			continue
		}
		value, err := cast.ToIntE(v.Get(variable.Name))
		if err != nil {
			log.Warn().Err(err).Str("variable", variable.Name).Msg("ignoring invalid stored value")
			continue
		}
		variable.Set(value)
	}

	return nil
}

// Save writes every variable to the file in one atomic replace.
func (s *FileVariableStore) Save(ctx context.Context, vars []entity.Variable) error {
	data, err := EncodeVariables(vars)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to write bindings file: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", s.path).Int("variables", len(vars)).Msg("bindings file written")
	return nil
}

// EncodeVariables renders variables as a TOML document with sorted keys.
func EncodeVariables(vars []entity.Variable) ([]byte, error) {
	values := make(map[string]int, len(vars))
	for _, variable := range vars {
		values[variable.Name] = variable.Get()
	}

	var buf bytes.Buffer
	buf.WriteString(bindingsHeader)
	if err := toml.NewEncoder(&buf).Encode(values); err != nil {
		return nil, fmt.Errorf("failed to encode bindings: %w", err)
	}
	return buf.Bytes(), nil
}

// Watch calls onChange whenever the file is written or replaced, until ctx
// is cancelled.
func (s *FileVariableStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so atomic renames are seen.
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	log := logging.FromContext(ctx)
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("bindings file changed")
				onChange()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("bindings watcher error")
		}
	}
}
