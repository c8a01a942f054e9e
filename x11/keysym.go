package x11

const (
	XK_Escape = 0xff1b
	XK_Left   = 0xff51
	XK_Up     = 0xff52
	XK_Right  = 0xff53
	XK_Down   = 0xff54
	XK_Return = 0xff0d
	XK_space  = 0x0020
	XK_a      = 0x0061
	XK_d      = 0x0064
	XK_s      = 0x0073
	XK_w      = 0x0077
)
