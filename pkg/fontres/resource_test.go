package fontres_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/traytick/fontres/pkg/fontres"
)

// fakeRegistrar records successful registration calls and can inject
// per-path failures.
type fakeRegistrar struct {
	added       []string
	removed     []string
	addCalls    int
	removeCalls int
	addErr      map[string]error
	removeErr   map[string]error
}

func (f *fakeRegistrar) Add(path string) error {
	f.addCalls++
	if err := f.addErr[path]; err != nil {
		return err
	}
	f.added = append(f.added, path)
	return nil
}

func (f *fakeRegistrar) Remove(path string) error {
	f.removeCalls++
	if err := f.removeErr[path]; err != nil {
		return err
	}
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeRegistrar) failAdd(path string, err error) {
	if f.addErr == nil {
		f.addErr = make(map[string]error)
	}
	f.addErr[path] = err
}

func (f *fakeRegistrar) failRemove(path string, err error) {
	if f.removeErr == nil {
		f.removeErr = make(map[string]error)
	}
	f.removeErr[path] = err
}

var _ = Describe("ResourceManager", func() {
	var (
		reg *fakeRegistrar
		mgr *fontres.ResourceManager
	)

	BeforeEach(func() {
		reg = &fakeRegistrar{}
		mgr = fontres.NewResourceManager(reg, quietLogger())
	})

	Describe("Load", func() {
		It("should register the file and track it", func() {
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())

			path, loaded := mgr.Current()
			Expect(loaded).To(BeTrue())
			Expect(string(path)).To(Equal("/fonts/a.ttf"))
			Expect(reg.added).To(Equal([]string{"/fonts/a.ttf"}))
		})

		It("should not re-register the path already loaded", func() {
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())

			Expect(reg.addCalls).To(Equal(1))
			Expect(reg.removeCalls).To(BeZero())
		})

		It("should unload the previous file before loading another", func() {
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())
			Expect(mgr.Load("/fonts/b.ttf")).To(Succeed())

			Expect(reg.removed).To(Equal([]string{"/fonts/a.ttf"}))
			Expect(reg.added).To(Equal([]string{"/fonts/a.ttf", "/fonts/b.ttf"}))

			path, loaded := mgr.Current()
			Expect(loaded).To(BeTrue())
			Expect(string(path)).To(Equal("/fonts/b.ttf"))
		})

		It("should leave nothing loaded when registration fails", func() {
			reg.failAdd("/fonts/b.ttf", errors.New("gdi rejected the file"))

			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())
			Expect(mgr.Load("/fonts/b.ttf")).NotTo(Succeed())

			_, loaded := mgr.Current()
			Expect(loaded).To(BeFalse())
			Expect(reg.removed).To(Equal([]string{"/fonts/a.ttf"}))
		})

		It("should not unload again when retrying after a failed load", func() {
			reg.failAdd("/fonts/b.ttf", errors.New("gdi rejected the file"))
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())
			Expect(mgr.Load("/fonts/b.ttf")).NotTo(Succeed())

			delete(reg.addErr, "/fonts/b.ttf")
			Expect(mgr.Load("/fonts/b.ttf")).To(Succeed())

			Expect(reg.removeCalls).To(Equal(1))
			Expect(reg.added).To(Equal([]string{"/fonts/a.ttf", "/fonts/b.ttf"}))
		})
	})

	Describe("Unload", func() {
		It("should unregister and clear the slot", func() {
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())
			Expect(mgr.Unload()).To(Succeed())

			_, loaded := mgr.Current()
			Expect(loaded).To(BeFalse())
			Expect(reg.removed).To(Equal([]string{"/fonts/a.ttf"}))
		})

		It("should be a no-op when nothing is loaded", func() {
			Expect(mgr.Unload()).To(Succeed())
			Expect(reg.removeCalls).To(BeZero())
		})

		It("should clear the slot even when the OS call fails", func() {
			reg.failRemove("/fonts/a.ttf", errors.New("handle already gone"))
			Expect(mgr.Load("/fonts/a.ttf")).To(Succeed())

			Expect(mgr.Unload()).NotTo(Succeed())

			_, loaded := mgr.Current()
			Expect(loaded).To(BeFalse())

			// The failed path must not be retried by a later unload.
			Expect(mgr.Unload()).To(Succeed())
			Expect(reg.removeCalls).To(Equal(1))
		})
	})
})
