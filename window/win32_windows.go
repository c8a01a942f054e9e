package window

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
	"github.com/ushitora-anqou/handmade/util"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procGetDC            = user32.NewProc("GetDC")
	procReleaseDC        = user32.NewProc("ReleaseDC")
	procBeginPaint       = user32.NewProc("BeginPaint")
	procEndPaint         = user32.NewProc("EndPaint")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procMessageBoxW      = user32.NewProc("MessageBoxW")
	procStretchDIBits    = gdi32.NewProc("StretchDIBits")
	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)

const (
	CS_VREDRAW = 0x0001
	CS_HREDRAW = 0x0002
	CS_OWNDC   = 0x0020

	WS_OVERLAPPEDWINDOW = 0x00CF0000
	WS_VISIBLE          = 0x10000000
	CW_USEDEFAULT       = 0x80000000

	PM_REMOVE = 0x0001

	WM_DESTROY     = 0x0002
	WM_SIZE        = 0x0005
	WM_PAINT       = 0x000F
	WM_CLOSE       = 0x0010
	WM_QUIT        = 0x0012
	WM_ACTIVATEAPP = 0x001C
	WM_KEYDOWN     = 0x0100
	WM_KEYUP       = 0x0101
	WM_SYSKEYDOWN  = 0x0104
	WM_SYSKEYUP    = 0x0105

	VK_BACK   = 0x08
	VK_RETURN = 0x0D
	VK_ESCAPE = 0x1B
	VK_SPACE  = 0x20
	VK_LEFT   = 0x25
	VK_UP     = 0x26
	VK_RIGHT  = 0x27
	VK_DOWN   = 0x28
	VK_F4     = 0x73

	IDC_ARROW = 32512

	BI_RGB         = 0
	DIB_RGB_COLORS = 0
	SRCCOPY        = 0x00CC0020

	MB_OK        = 0x00000000
	MB_ICONERROR = 0x00000010
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd     windows.HWND
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

type paintStruct struct {
	Hdc         windows.Handle
	Erase       int32
	Paint       windows.Rect
	Restore     int32
	IncUpdate   int32
	RGBReserved [32]byte
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

var win32Keys = keymap[uintptr]{
	'W':       joypad.BUTTON_UP,
	VK_UP:     joypad.BUTTON_UP,
	'S':       joypad.BUTTON_DOWN,
	VK_DOWN:   joypad.BUTTON_DOWN,
	'A':       joypad.BUTTON_LEFT,
	VK_LEFT:   joypad.BUTTON_LEFT,
	'D':       joypad.BUTTON_RIGHT,
	VK_RIGHT:  joypad.BUTTON_RIGHT,
	VK_RETURN: joypad.BUTTON_START,
	VK_BACK:   joypad.BUTTON_BACK,
	VK_SPACE:  joypad.BUTTON_A,
}

// The window procedure is a single callback for the whole process, so it
// finds its Win32Window through this table.
var (
	windowsMtx sync.Mutex
	windowsMap = map[windows.HWND]*Win32Window{}
	creating   *Win32Window

	wndProcCallback = windows.NewCallback(wndProc)
)

type Win32Window struct {
	hwnd     windows.HWND
	running  bool
	keyboard joypad.State
	resized  bool
	width    int
	height   int
	info     bitmapInfo
	last     *framebuffer.Buffer
	input    *xinput
	audio    *directSoundBuffer
}

func NewWin32Window() (*Win32Window, error) {
	instance, _, _ := procGetModuleHandleW.Call(0)
	cursor, _, _ := procLoadCursorW.Call(0, IDC_ARROW)
	className, err := windows.UTF16PtrFromString("HandmadeHeroWindowClass")
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(constant.WINDOW_TITLE)
	if err != nil {
		return nil, err
	}

	wc := wndClassEx{
		Style:     CS_OWNDC | CS_HREDRAW | CS_VREDRAW,
		WndProc:   wndProcCallback,
		Instance:  windows.Handle(instance),
		Cursor:    windows.Handle(cursor),
		ClassName: className,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))
	if r, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		return nil, fmt.Errorf("win32: RegisterClassEx: %w", err)
	}

	wind := &Win32Window{running: true}
	wind.info.Header = bitmapInfoHeader{
		Planes:      1,
		BitCount:    8 * constant.BYTES_PER_PIXEL,
		Compression: BI_RGB,
	}
	wind.info.Header.Size = uint32(unsafe.Sizeof(wind.info.Header))

	windowsMtx.Lock()
	creating = wind
	windowsMtx.Unlock()
	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		WS_OVERLAPPEDWINDOW|WS_VISIBLE,
		CW_USEDEFAULT, CW_USEDEFAULT,
		constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT,
		0, 0, instance, 0,
	)
	windowsMtx.Lock()
	creating = nil
	windowsMtx.Unlock()
	if hwnd == 0 {
		return nil, fmt.Errorf("win32: CreateWindowEx: %w", err)
	}
	wind.hwnd = windows.HWND(hwnd)
	windowsMtx.Lock()
	windowsMap[wind.hwnd] = wind
	windowsMtx.Unlock()

	wind.input = loadXInput()
	if wind.input == nil {
		util.Trace("win32: XInput not available")
	}
	audio, err := newDirectSoundBuffer(wind.hwnd, constant.SAMPLES_PER_SECOND, constant.SOUND_BUFFER_SIZE)
	if err != nil {
		util.Trace("win32: no sound: %v", err)
	} else {
		wind.audio = audio
	}

	return wind, nil
}

func lookupWindow(hwnd windows.HWND) *Win32Window {
	windowsMtx.Lock()
	defer windowsMtx.Unlock()
	if w, ok := windowsMap[hwnd]; ok {
		return w
	}
	if creating != nil {
		creating.hwnd = hwnd
		return creating
	}
	return nil
}

func wndProc(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	wind := lookupWindow(hwnd)
	if wind == nil {
		r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
		return r
	}

	switch message {
	case WM_SIZE:
		wind.resized = true
		wind.width = int(lParam & 0xFFFF)
		wind.height = int((lParam >> 16) & 0xFFFF)

	case WM_CLOSE, WM_DESTROY:
		wind.running = false

	case WM_ACTIVATEAPP:

	case WM_PAINT:
		var ps paintStruct
		dc, _, _ := procBeginPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))
		if wind.last != nil {
			wind.blit(windows.Handle(dc), wind.last)
		}
		procEndPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))

	case WM_KEYDOWN, WM_KEYUP, WM_SYSKEYDOWN, WM_SYSKEYUP:
		// Keyboard messages are handled in HandleEvents.

	default:
		r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
		return r
	}
	return 0
}

func (wind *Win32Window) HandleEvents() (bool, *WindowEvent) {
	var m msg
	for {
		r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, PM_REMOVE)
		if r == 0 {
			break
		}
		switch m.Message {
		case WM_QUIT:
			wind.running = false

		case WM_KEYDOWN, WM_KEYUP, WM_SYSKEYDOWN, WM_SYSKEYUP:
			wasDown, isDown := KeyTransition(m.LParam)
			if wasDown == isDown {
				// Auto-repeat.
				break
			}
			altDown := m.LParam&(1<<29) != 0
			if isDown && (m.WParam == VK_ESCAPE || (altDown && m.WParam == VK_F4)) {
				wind.running = false
			}
			win32Keys.apply(&wind.keyboard, m.WParam, isDown)

		default:
			procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
			procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		}
	}

	we := &WindowEvent{Pad: wind.keyboard}
	if wind.input != nil {
		we.Pad.Buttons |= wind.input.buttons()
	}
	if wind.resized {
		we.Resized = true
		we.Width, we.Height = wind.width, wind.height
		wind.resized = false
	}
	return !wind.running, we
}

func (wind *Win32Window) UpdateScreen(buf *framebuffer.Buffer) error {
	wind.last = buf
	dc, _, _ := procGetDC.Call(uintptr(wind.hwnd))
	if dc == 0 {
		return fmt.Errorf("win32: GetDC failed")
	}
	defer procReleaseDC.Call(uintptr(wind.hwnd), dc)
	return wind.blit(windows.Handle(dc), buf)
}

// blit stretches buf over the whole client area. A negative height makes
// the DIB top-down so row 0 is the top of the window.
func (wind *Win32Window) blit(dc windows.Handle, buf *framebuffer.Buffer) error {
	if len(buf.Pix) == 0 {
		return nil
	}
	var rc windows.Rect
	procGetClientRect.Call(uintptr(wind.hwnd), uintptr(unsafe.Pointer(&rc)))
	wind.info.Header.Width = int32(buf.Width)
	wind.info.Header.Height = -int32(buf.Height)

	r, _, _ := procStretchDIBits.Call(
		uintptr(dc),
		0, 0, uintptr(rc.Right-rc.Left), uintptr(rc.Bottom-rc.Top),
		0, 0, uintptr(buf.Width), uintptr(buf.Height),
		uintptr(unsafe.Pointer(&buf.Pix[0])),
		uintptr(unsafe.Pointer(&wind.info)),
		DIB_RGB_COLORS,
		SRCCOPY,
	)
	if r == 0 {
		return fmt.Errorf("win32: StretchDIBits failed")
	}
	return nil
}

func (wind *Win32Window) SoundOutput() sound.Output {
	if wind.audio == nil {
		return nil
	}
	return wind.audio
}

func (wind *Win32Window) Close() error {
	if wind.audio != nil {
		wind.audio.release()
	}
	windowsMtx.Lock()
	delete(windowsMap, wind.hwnd)
	windowsMtx.Unlock()
	if r, _, err := procDestroyWindow.Call(uintptr(wind.hwnd)); r == 0 {
		return fmt.Errorf("win32: DestroyWindow: %w", err)
	}
	return nil
}

// MessageBox shows a modal error box. Windows GUI programs have no console
// to print to.
func MessageBox(title, text string) {
	t, _ := windows.UTF16PtrFromString(title)
	m, _ := windows.UTF16PtrFromString(text)
	procMessageBoxW.Call(0, uintptr(unsafe.Pointer(m)), uintptr(unsafe.Pointer(t)), MB_OK|MB_ICONERROR)
}
