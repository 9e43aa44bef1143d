package fontres_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/traytick/fontres/pkg/fontres"
)

var _ = Describe("FileRef", func() {
	Describe("Base", func() {
		It("should return the last segment of a slash path", func() {
			Expect(fontres.FileRef("mono/Extra.ttf").Base()).To(Equal("Extra.ttf"))
		})

		It("should return the last segment of a backslash path", func() {
			Expect(fontres.FileRef(`mono\deep\Extra.ttf`).Base()).To(Equal("Extra.ttf"))
		})

		It("should return a bare file name unchanged", func() {
			Expect(fontres.FileRef("Extra.ttf").Base()).To(Equal("Extra.ttf"))
		})
	})

	Describe("Stem", func() {
		It("should drop the extension", func() {
			Expect(fontres.FileRef("JetBrainsMono-Regular.ttf").Stem()).To(Equal("JetBrainsMono-Regular"))
		})

		It("should drop only the last extension", func() {
			Expect(fontres.FileRef("fonts/Pack.v2.otf").Stem()).To(Equal("Pack.v2"))
		})

		It("should leave extensionless names alone", func() {
			Expect(fontres.FileRef("sub/README").Stem()).To(Equal("README"))
		})
	})

	Describe("ConfigValue", func() {
		It("should prefix the fonts token", func() {
			Expect(fontres.FileRef("Extra.ttf").ConfigValue()).To(Equal("$FONTS/Extra.ttf"))
		})

		It("should render subdirectories with forward slashes", func() {
			Expect(fontres.FileRef(`mono\Extra.ttf`).ConfigValue()).To(Equal("$FONTS/mono/Extra.ttf"))
		})
	})

	Describe("ParseRef", func() {
		It("should strip the fonts token", func() {
			Expect(fontres.ParseRef("$FONTS/mono/Extra.ttf")).To(Equal(fontres.FileRef("mono/Extra.ttf")))
		})

		It("should accept backslash-separated values", func() {
			Expect(fontres.ParseRef(`$FONTS\mono\Extra.ttf`)).To(Equal(fontres.FileRef("mono/Extra.ttf")))
		})

		It("should accept values written without the token", func() {
			Expect(fontres.ParseRef("mono/Extra.ttf")).To(Equal(fontres.FileRef("mono/Extra.ttf")))
			Expect(fontres.ParseRef(`mono\Extra.ttf`)).To(Equal(fontres.FileRef("mono/Extra.ttf")))
		})

		It("should strip a leading separator from tokenless values", func() {
			Expect(fontres.ParseRef("/Extra.ttf")).To(Equal(fontres.FileRef("Extra.ttf")))
			Expect(fontres.ParseRef(`\Extra.ttf`)).To(Equal(fontres.FileRef("Extra.ttf")))
		})

		It("should tolerate surrounding whitespace", func() {
			Expect(fontres.ParseRef("  $FONTS/Extra.ttf\n")).To(Equal(fontres.FileRef("Extra.ttf")))
		})

		It("should parse an empty value to the empty ref", func() {
			Expect(fontres.ParseRef("")).To(Equal(fontres.FileRef("")))
			Expect(fontres.ParseRef("$FONTS/")).To(Equal(fontres.FileRef("")))
		})

		It("should round-trip a ConfigValue", func() {
			ref := fontres.FileRef("deep/nested/Face.otf")
			Expect(fontres.ParseRef(ref.ConfigValue())).To(Equal(ref))
		})
	})
})
