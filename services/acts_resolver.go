package services

import "sync"

// Secondary indexes over the static catalog. Built once, on first use, so
// filtered listings do not re-scan the catalog as it grows. Slices hold
// pointers into actosCatalog in insertion order.
var (
	actosIndexOnce    sync.Once
	actosBySlug       map[string]*ActoBundle
	actosByMateria    map[string][]*ActoBundle
	actosByNaturaleza map[string][]*ActoBundle
	actosByEjecutor   map[string][]*ActoBundle
)

func buildActosIndexes() {
	actosBySlug = make(map[string]*ActoBundle, len(actosCatalog))
	actosByMateria = make(map[string][]*ActoBundle)
	actosByNaturaleza = make(map[string][]*ActoBundle)
	actosByEjecutor = make(map[string][]*ActoBundle)

	for i := range actosCatalog {
		acto := &actosCatalog[i]
		actosBySlug[acto.Slug] = acto
		actosByMateria[acto.Materia] = append(actosByMateria[acto.Materia], acto)
		actosByNaturaleza[acto.Naturaleza] = append(actosByNaturaleza[acto.Naturaleza], acto)
		actosByEjecutor[acto.Ejecutor] = append(actosByEjecutor[acto.Ejecutor], acto)
	}
}

// GetAllActos returns the full catalog in insertion order
func GetAllActos() []*ActoBundle {
	actosIndexOnce.Do(buildActosIndexes)

	actos := make([]*ActoBundle, 0, len(actosCatalog))
	for i := range actosCatalog {
		actos = append(actos, &actosCatalog[i])
	}
	return actos
}

// GetActoBySlug returns the bundle for a slug, or nil when absent.
// Unknown slugs never error; callers decide how to surface "not found".
func GetActoBySlug(slug string) *ActoBundle {
	actosIndexOnce.Do(buildActosIndexes)
	return actosBySlug[slug]
}

// GetActosByMateria returns the bundles of a materia in catalog order
func GetActosByMateria(materia string) []*ActoBundle {
	actosIndexOnce.Do(buildActosIndexes)
	return actosByMateria[materia]
}

// GetActosByNaturaleza returns the bundles of a naturaleza in catalog order
func GetActosByNaturaleza(naturaleza string) []*ActoBundle {
	actosIndexOnce.Do(buildActosIndexes)
	return actosByNaturaleza[naturaleza]
}

// GetActosByEjecutor returns the bundles of an ejecutor in catalog order
func GetActosByEjecutor(ejecutor string) []*ActoBundle {
	actosIndexOnce.Do(buildActosIndexes)
	return actosByEjecutor[ejecutor]
}

// GetAllMaterias returns the distinct materia values of the catalog.
// Order is unspecified.
func GetAllMaterias() []string {
	actosIndexOnce.Do(buildActosIndexes)

	materias := make([]string, 0, len(actosByMateria))
	for materia := range actosByMateria {
		materias = append(materias, materia)
	}
	return materias
}

// GetFieldsByActo returns the ordered field descriptors for a slug.
// Absent bundle or bundle without fields yields an empty slice.
func GetFieldsByActo(slug string) []CampoDescriptor {
	acto := GetActoBySlug(slug)
	if acto == nil || acto.Fields == nil {
		return []CampoDescriptor{}
	}
	return acto.Fields
}

// GetActoTemplate returns the template body for a slug, empty when absent
func GetActoTemplate(slug string) string {
	acto := GetActoBySlug(slug)
	if acto == nil {
		return ""
	}
	return acto.Plantilla
}

// ShouldInjectGlobalClauses reports whether rendering the bundle appends the
// shared boilerplate clauses
func ShouldInjectGlobalClauses(slug string) bool {
	acto := GetActoBySlug(slug)
	if acto == nil {
		return false
	}
	return acto.IncluirClausulasGlobales
}

// GetGlobalClausesText returns the shared clause text from the global catalog entry
func GetGlobalClausesText() string {
	return globalClausesText
}
