package ini

import (
	"sort"
	"strings"
)

// =========================
// Data Model
// =========================

// Entry is a single key/value pair. Key and value never contain '=' or
// whitespace; the classifier guarantees both are non-empty.
type Entry struct {
	Key   string
	Value string
}

func (e Entry) String() string {
	return e.Key + " = " + e.Value
}

// -------- Section --------

// Section is an ordered sequence of entries. Insertion order is preserved;
// duplicate keys stay stored, but name lookup always resolves to the first one.
type Section struct {
	Entries []Entry
}

// GetValueByKey returns the value of the first entry whose key matches.
func (s *Section) GetValueByKey(key string) (string, bool) {
	for _, entry := range s.Entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

func (s *Section) String() string {
	var b strings.Builder
	for _, entry := range s.Entries {
		b.WriteString(entry.String())
		b.WriteString("\n")
	}
	return b.String()
}

// -------- File --------

// File is one fully parsed document: an optional global section plus named
// sections. Section names are unique; a later declaration of the same name
// replaces the earlier one entirely.
type File struct {
	globalSection *Section
	sections      map[string]*Section
}

// GetGlobalSection returns the entries that appeared before any section
// header, if there were any.
func (f *File) GetGlobalSection() (*Section, bool) {
	if f.globalSection == nil {
		return nil, false
	}
	return f.globalSection, true
}

func (f *File) GetSectionByName(name string) (*Section, bool) {
	section, ok := f.sections[name]
	return section, ok
}

// SectionNames returns the named sections in sorted order.
func (f *File) SectionNames() []string {
	names := make([]string, 0, len(f.sections))
	for name := range f.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the file back to INI text: global entries first, then each
// named section under its header. Sorted section order keeps the output
// deterministic; re-parsing yields an equivalent File.
func (f *File) String() string {
	var b strings.Builder
	if global, ok := f.GetGlobalSection(); ok {
		b.WriteString(global.String())
		b.WriteString("\n")
	}
	for _, name := range f.SectionNames() {
		b.WriteString("[")
		b.WriteString(name)
		b.WriteString("]\n")
		b.WriteString(f.sections[name].String())
	}
	return b.String()
}
