package category

import "fmt"

// Category identifies one bucket of rule strings
type Category int

const (
	Core Category = iota
	Style
	Structure
	Libraries
	ErrorHandling
	Async
	Testing
	Workflow
	ModernFeatures
	Performance
	Documentation
	DataTypes
	Memory
	Concurrency
	// Quality is auxiliary: it is grouped with Style under "Code Style"
	// headings but is not part of the canonical order.
	Quality
)

var names = [...]string{
	Core:           "core",
	Style:          "style",
	Structure:      "structure",
	Libraries:      "libraries",
	ErrorHandling:  "error_handling",
	Async:          "async",
	Testing:        "testing",
	Workflow:       "workflow",
	ModernFeatures: "modern_features",
	Performance:    "performance",
	Documentation:  "documentation",
	DataTypes:      "data_types",
	Memory:         "memory",
	Concurrency:    "concurrency",
	Quality:        "quality",
}

var byName = func() map[string]Category {
	m := make(map[string]Category, len(names))
	for c, n := range names {
		m[n] = Category(c)
	}
	return m
}()

// String returns the key used for the category in configuration documents
func (c Category) String() string {
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return names[c]
}

// Valid reports whether c is a member of the closed set
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(names)
}

// Parse maps a document key to its Category
func Parse(name string) (Category, bool) {
	c, ok := byName[name]
	return c, ok
}

// Canonical returns the registry order used by providers that emit every
// category. Quality is not included.
func Canonical() []Category {
	return []Category{
		Core,
		Style,
		Structure,
		Libraries,
		ErrorHandling,
		Async,
		Testing,
		Workflow,
		ModernFeatures,
		Performance,
		Documentation,
		DataTypes,
		Memory,
		Concurrency,
	}
}

// All returns every recognized category, canonical ones first
func All() []Category {
	return append(Canonical(), Quality)
}
