package ini

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func makeDummyIniString() string {
	_, globalSection := NewSectionBuilder(GlobalSection()).
		AddKeyValuePair("g_key1", "g_value11").
		AddKeyValuePair("g_key2", "g_value12").
		AddKeyValuePair("g_key3", "g_value13").
		Build()

	_, section1 := NewSectionBuilder(GlobalSection()).
		AddKeyValuePair("key1", "value21").
		AddKeyValuePair("key2", "value22").
		Build()

	_, section2 := NewSectionBuilder(GlobalSection()).
		AddKeyValuePair("key1", "value31").
		AddKeyValuePair("key2", "value32").
		AddKeyValuePair("key3", "value33").
		Build()

	dummyIni := NewFileBuilder().
		SetGlobalSection(globalSection).
		NewSection("section1", section1).
		NewSection("section2", section2).
		Build()

	return dummyIni.String()
}

func TestBuilderFixture(t *testing.T) {
	convey.Convey("a builder-built file survives render and re-parse", t, func() {
		file, err := Parse(strings.NewReader(makeDummyIniString()))
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("existing section is found", func() {
			_, ok := file.GetSectionByName("section1")
			convey.So(ok, convey.ShouldBeTrue)
		})

		convey.Convey("non-existing section is not found", func() {
			_, ok := file.GetSectionByName("i do not exist")
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("existing key resolves to the right value", func() {
			section1, ok := file.GetSectionByName("section1")
			convey.So(ok, convey.ShouldBeTrue)
			value, found := section1.GetValueByKey("key1")
			convey.So(found, convey.ShouldBeTrue)
			convey.So(value, convey.ShouldEqual, "value21")
		})

		convey.Convey("non-existing key is not found", func() {
			section1, ok := file.GetSectionByName("section1")
			convey.So(ok, convey.ShouldBeTrue)
			_, found := section1.GetValueByKey("i do not exist")
			convey.So(found, convey.ShouldBeFalse)
		})

		convey.Convey("global values resolve", func() {
			global, ok := file.GetGlobalSection()
			convey.So(ok, convey.ShouldBeTrue)
			value, found := global.GetValueByKey("g_key1")
			convey.So(found, convey.ShouldBeTrue)
			convey.So(value, convey.ShouldEqual, "g_value11")
		})
	})
}

func TestFlushRule(t *testing.T) {
	convey.Convey("an empty global accumulator is discarded", t, func() {
		fb := NewFileBuilder()
		flushSection(fb, NewSectionBuilder(GlobalSection()))
		file := fb.Build()
		_, ok := file.GetGlobalSection()
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("an empty named section is installed anyway", t, func() {
		fb := NewFileBuilder()
		flushSection(fb, NewSectionBuilder(NamedSection("explicit")))
		file := fb.Build()
		section, ok := file.GetSectionByName("explicit")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(len(section.Entries), convey.ShouldEqual, 0)
	})

	convey.Convey("a non-empty global accumulator is installed", t, func() {
		fb := NewFileBuilder()
		flushSection(fb, NewSectionBuilder(GlobalSection()).AddKeyValuePair("k", "v"))
		file := fb.Build()
		global, ok := file.GetGlobalSection()
		convey.So(ok, convey.ShouldBeTrue)
		value, found := global.GetValueByKey("k")
		convey.So(found, convey.ShouldBeTrue)
		convey.So(value, convey.ShouldEqual, "v")
	})
}
