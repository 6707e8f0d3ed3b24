package ini

import "log/slog"

// =========================
// Section Identity
// =========================

// SectionID tags the section under construction as the implicit global
// prologue or an explicitly headed named section. It only exists while
// building; the finished File does not carry it.
type SectionID struct {
	name  string
	named bool
}

func GlobalSection() SectionID {
	return SectionID{}
}

func NamedSection(name string) SectionID {
	return SectionID{name: name, named: true}
}

func (id SectionID) IsGlobal() bool {
	return !id.named
}

func (id SectionID) Name() string {
	return id.name
}

func (id SectionID) String() string {
	if id.IsGlobal() {
		return "<global>"
	}
	return "[" + id.name + "]"
}

// =========================
// Builders
// =========================

// SectionBuilder accumulates entries for one section. Single owner: the
// parser holds exactly one at a time and Build consumes it.
type SectionBuilder struct {
	id      SectionID
	section Section
}

func NewSectionBuilder(id SectionID) *SectionBuilder {
	return &SectionBuilder{id: id}
}

func (b *SectionBuilder) AddEntry(entry Entry) *SectionBuilder {
	b.section.Entries = append(b.section.Entries, entry)
	return b
}

func (b *SectionBuilder) AddKeyValuePair(key, value string) *SectionBuilder {
	return b.AddEntry(Entry{Key: key, Value: value})
}

func (b *SectionBuilder) Build() (SectionID, *Section) {
	return b.id, &b.section
}

// -------- File Builder --------

// FileBuilder accumulates finished sections into a File.
type FileBuilder struct {
	file File
}

func NewFileBuilder() *FileBuilder {
	return &FileBuilder{file: File{sections: make(map[string]*Section)}}
}

func (b *FileBuilder) SetGlobalSection(section *Section) *FileBuilder {
	b.file.globalSection = section
	return b
}

// NewSection installs section under name. A repeated name replaces the
// earlier body entirely.
func (b *FileBuilder) NewSection(name string, section *Section) *FileBuilder {
	b.file.sections[name] = section
	return b
}

func (b *FileBuilder) Build() *File {
	return &b.file
}

// flushSection finishes the current section builder and hands its section to
// the file builder. An empty global section is discarded: every file starts
// in global scope implicitly, so an empty global accumulator is a parsing
// artifact. An empty named section is kept — its header was explicit.
func flushSection(fb *FileBuilder, sb *SectionBuilder) {
	id, section := sb.Build()

	slog.Debug("adding section", "id", id, "entries", len(section.Entries))

	if id.IsGlobal() {
		if len(section.Entries) > 0 {
			fb.SetGlobalSection(section)
		}
		return
	}
	fb.NewSection(id.Name(), section)
}
