package classify

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rtanga/clearance-tracker/constants"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// KeywordTable is the static clearance keyword mapping. It is loaded once
// from the embedded YAML and never mutated afterwards.
type KeywordTable struct {
	Categories    map[constants.ClearanceType][]string `yaml:"categories"`
	Approval      []string                             `yaml:"approval"`
	Rejection     []string                             `yaml:"rejection"`
	Corroboration map[constants.ClearanceType][]string `yaml:"corroboration"`
	Flags         map[string][]string                  `yaml:"flags"`
}

var (
	tableOnce sync.Once
	table     *KeywordTable
	tableErr  error
)

// LoadTable parses the embedded keyword table. Subsequent calls return the
// same instance.
func LoadTable() (*KeywordTable, error) {
	tableOnce.Do(func() {
		var t KeywordTable
		if err := yaml.Unmarshal(keywordsYAML, &t); err != nil {
			tableErr = fmt.Errorf("parse keyword table: %w", err)
			return
		}
		if len(t.Categories) == 0 {
			tableErr = fmt.Errorf("keyword table has no categories")
			return
		}
		table = &t
	})
	return table, tableErr
}
