package pkg

import (
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestFileOperate(t *testing.T) {
	convey.Convey("write, check and read back a file", t, func() {
		path := filepath.Join(t.TempDir(), "sample.ini")

		exist, err := CheckFileExist(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeFalse)

		convey.So(WriteFileString(path, "key = value\n"), convey.ShouldBeNil)

		exist, err = CheckFileExist(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeTrue)

		content, err := ReadFileString(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(content, convey.ShouldEqual, "key = value\n")
	})
}
