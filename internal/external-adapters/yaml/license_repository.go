package yaml

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

//go:embed data/licenses.yml
var defaultLicenseList []byte

// LicenseRepository implements repositories.LicenseRepository from a license list
// file, falling back to the bundled list when no path is configured
type LicenseRepository struct {
	path   string
	parser *LicenseListParser

	once sync.Once
	list *entities.LicenseList
	err  error
}

// NewLicenseRepository creates a repository reading path. An empty path selects the bundled list.
func NewLicenseRepository(path string) *LicenseRepository {
	return &LicenseRepository{
		path:   path,
		parser: NewLicenseListParser(),
	}
}

// LoadLicenseList parses the list once and returns the cached result afterwards
func (r *LicenseRepository) LoadLicenseList(ctx context.Context) (*entities.LicenseList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.once.Do(func() {
		if r.path == "" {
			r.list, r.err = r.parser.Parse(defaultLicenseList)
			return
		}
		if _, err := os.Stat(r.path); os.IsNotExist(err) {
			r.err = fmt.Errorf("license list not found: %s", r.path)
			return
		}
		r.list, r.err = r.parser.ParseFile(r.path)
	})
	return r.list, r.err
}
