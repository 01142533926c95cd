package course

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/progress/core"
)

var (
	// errors
	ErrEmptyCatalog    = errors.New("course catalog is empty")
	ErrDuplicateCourse = errors.New("duplicate course name")
)

type Course struct {
	Name                string `json:"name"`
	CompletionThreshold int    `json:"completion_threshold"`
}

// Completion returns the share of the course completed with `points`.
func (c Course) Completion(points int) float64 {
	if c.CompletionThreshold <= 0 {
		return 0
	}
	return float64(points) / float64(c.CompletionThreshold)
}

// Catalog is the ordered, immutable list of available courses.
// Iteration order is display order.
type Catalog []Course

// DefaultCatalog returns the stock courses.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "Python", CompletionThreshold: 600},
		{Name: "DSA", CompletionThreshold: 400},
		{Name: "Databases", CompletionThreshold: 480},
		{Name: "Flask", CompletionThreshold: 550},
	}
}

// NewCatalog builds a Catalog from its configuration entries, keeping their order.
func NewCatalog(confs []core.CourseConfig) (Catalog, error) {
	if len(confs) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(confs))
	catalog := make(Catalog, 0, len(confs))
	for _, c := range confs {
		name := core.CleanString(c.Name)
		if name == "" {
			return nil, errors.New("course name is required")
		}
		if c.CompletionThreshold <= 0 {
			return nil, errors.Errorf("course %q: completion threshold must be positive", name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, errors.Wrap(ErrDuplicateCourse, name)
		}
		seen[key] = true
		catalog = append(catalog, Course{Name: name, CompletionThreshold: c.CompletionThreshold})
	}
	return catalog, nil
}

// Lookup finds a course by name, ignoring case and surrounding whitespace.
func (cat Catalog) Lookup(name string) (Course, bool) {
	name = core.CleanString(name, true /* lower */)
	for _, c := range cat {
		if strings.ToLower(c.Name) == name {
			return c, true
		}
	}
	return Course{}, false
}

func (cat Catalog) Names() []string {
	names := make([]string, 0, len(cat))
	for _, c := range cat {
		names = append(names, c.Name)
	}
	return names
}
