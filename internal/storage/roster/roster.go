// Package roster loads the supervisor → crew reference data printed on cover pages.
package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"folha-tarefa/internal/storage"
)

//go:embed equipes.yaml
var defaultTeams []byte

var ErrInvalid = errors.New("invalid roster")

// Load reads the roster at path. An empty path loads the bundled teams.
func Load(path string) (*storage.Roster, error) {
	const op = "storage.roster.Load"

	data := defaultTeams
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		data = b
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

func Parse(data []byte) (*storage.Roster, error) {
	teams := map[string][]storage.RosterEntry{}
	if err := yaml.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	for supervisor, members := range teams {
		if strings.TrimSpace(supervisor) == "" {
			return nil, fmt.Errorf("%w: empty supervisor name", ErrInvalid)
		}
		for i, m := range members {
			if strings.TrimSpace(m.Name) == "" {
				return nil, fmt.Errorf("%w: %s: member %d has no name", ErrInvalid, supervisor, i+1)
			}
		}
	}

	return storage.NewRoster(teams), nil
}
