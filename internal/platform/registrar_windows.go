package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	gdi32                     = windows.NewLazySystemDLL("gdi32.dll")
	procAddFontResourceExW    = gdi32.NewProc("AddFontResourceExW")
	procRemoveFontResourceExW = gdi32.NewProc("RemoveFontResourceExW")
)

// fontResourcePrivate is FR_PRIVATE: the font is visible to this
// process only and is unloaded when the process exits.
const fontResourcePrivate = 0x10

type gdiRegistrar struct{}

// New returns the GDI-backed registrar.
func New() Registrar {
	return gdiRegistrar{}
}

func (gdiRegistrar) Add(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encoding font path: %w", err)
	}
	added, _, callErr := procAddFontResourceExW.Call(uintptr(unsafe.Pointer(p)), fontResourcePrivate, 0)
	if added == 0 {
		return fmt.Errorf("AddFontResourceEx %q: %w", path, callErr)
	}
	return nil
}

func (gdiRegistrar) Remove(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encoding font path: %w", err)
	}
	removed, _, callErr := procRemoveFontResourceExW.Call(uintptr(unsafe.Pointer(p)), fontResourcePrivate, 0)
	if removed == 0 {
		return fmt.Errorf("RemoveFontResourceEx %q: %w", path, callErr)
	}
	return nil
}
