package providers

import (
	"github.com/arthur-debert/promptgen/pkg/category"
	"github.com/arthur-debert/promptgen/pkg/config"
)

// codeStyle is the "Code Style" grouping used by several providers
var codeStyle = []category.Category{category.Style, category.Quality}

func bullets(title string, sources ...category.Category) Section {
	return Section{Title: title, Sources: sources, Mode: ModeBullets}
}

// copilotSections emits every canonical category as one flat list
func copilotSections(*config.Document) []Section {
	return []Section{{Sources: category.Canonical(), Mode: ModeFlat}}
}

var cursorLegacyPlan = []Section{
	bullets("Language and Version", category.Core),
	bullets("Code Style and Formatting", codeStyle...),
	bullets("Project Structure", category.Structure),
	bullets("Libraries and Dependencies", category.Libraries),
	bullets("Data Structures", category.DataTypes),
	bullets("Error Handling", category.ErrorHandling),
	bullets("Async Programming", category.Async),
	bullets("Testing", category.Testing),
	bullets("Code Quality", category.Workflow),
	bullets("Documentation", category.Documentation),
	bullets("Performance", category.Performance),
	bullets("Memory Management", category.Memory),
	bullets("Concurrency", category.Concurrency),
}

func cursorLegacySections(*config.Document) []Section {
	return cursorLegacyPlan
}

const (
	modernCoreLimit    = 3
	modernSectionLimit = 8
)

var cursorModernPlan = []Section{
	{Title: "Core Requirements", Sources: []category.Category{category.Core}, Mode: ModeProse, Limit: modernCoreLimit},
	{Title: "Code Style", Sources: codeStyle, Mode: ModeTitledBullets, Limit: modernSectionLimit},
	{Title: "Essential Libraries", Sources: []category.Category{category.Libraries}, Mode: ModeTitledBullets, Limit: modernSectionLimit},
	{Title: "Error Handling", Sources: []category.Category{category.ErrorHandling}, Mode: ModeTitledBullets, Limit: modernSectionLimit},
	{Title: "Quality Assurance", Sources: []category.Category{category.Workflow}, Mode: ModeTitledBullets, Limit: modernSectionLimit},
}

func cursorModernSections(*config.Document) []Section {
	return cursorModernPlan
}

// Security Practices reads the performance category; the source documents
// carry their security guidance there.
var geminiPlan = []Section{
	bullets("Language and Version", category.Core),
	bullets("Tooling and Development Environment", category.Workflow),
	bullets("Code Style Standards", codeStyle...),
	bullets("Project Structure", category.Structure),
	bullets("Required Libraries", category.Libraries),
	bullets("Data Handling", category.DataTypes),
	bullets("Error Handling", category.ErrorHandling),
	bullets("Async Programming", category.Async),
	bullets("Testing Strategy", category.Testing),
	bullets("Quality Assurance Workflow", category.Workflow),
	bullets("Documentation", category.Documentation),
	bullets("Performance Considerations", category.Performance),
	bullets("Security Practices", category.Performance),
}

func geminiSections(*config.Document) []Section {
	return geminiPlan
}

var claudePlan = []Section{
	bullets("Language and Tooling", category.Core),
	bullets("Code Style", codeStyle...),
	bullets("Project Structure", category.Structure),
	bullets("Libraries and Dependencies", category.Libraries),
	bullets("Error Handling", category.ErrorHandling),
	bullets("Async Programming", category.Async),
	bullets("Testing", category.Testing),
	bullets("Quality Assurance", category.Workflow),
	bullets("Documentation", category.Documentation),
	bullets("Performance and Security", category.Performance),
}

// memoryLanguage is the only language whose claude document gets a
// Memory Management section
const memoryLanguage = "Rust"

func claudeSections(doc *config.Document) []Section {
	if doc.Language() != memoryLanguage {
		return claudePlan
	}
	plan := append([]Section(nil), claudePlan...)
	return append(plan, bullets("Memory Management", category.Memory))
}

// Referenced returns every category a provider's plan reads for doc
func Referenced(kind Kind, doc *config.Document) []category.Category {
	d, ok := descriptorFor(kind)
	if !ok {
		return nil
	}

	seen := make(map[category.Category]bool)
	var out []category.Category
	for _, s := range d.layout.sections(doc) {
		for _, c := range s.Sources {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
